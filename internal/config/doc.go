// Package config provides configuration loading, merging, and validation
// facilities for the sweet shop client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. A .env file (loaded into the process environment, never overriding
//     variables that are already set)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// Fields still empty after the merge receive the built-in defaults.
// The entry point is [GetClientConfig].
package config

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks form input on the client before anything is
// sent to the shop API.
//
// Rules live in `validate` struct tags on the request models and are
// enforced by go-playground/validator. Failures come back as a
// [*ValidationError] carrying one readable message per offending field.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally restricts
	// validation to the named struct fields.
	Validate(ctx context.Context, obj any, fields ...string) error
}

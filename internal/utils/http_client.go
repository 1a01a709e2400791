package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a resty client bound to baseURL. Every call is made
// exactly once: retries are disabled. A zero timeout leaves requests
// unbounded.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8000", 10*time.Second)
//	resp, err := client.R().Get("/api/sweets")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		c.SetTimeout(timeout)
	}

	return &HTTPClient{Client: c}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sweet-shop/internal/adapter"
	"github.com/MKhiriev/go-sweet-shop/internal/validators"
)

// mapAdapterError attaches a service error to the adapter's error. The
// original error stays in the chain so ErrorReason can still reach the
// server's detail.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrSessionExpired, err)
	case errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrForbidden, err)
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrConflict),
		errors.Is(err, adapter.ErrUnprocessable):
		return fmt.Errorf("%w: %w", ErrRejected, err)
	case errors.Is(err, adapter.ErrTransport),
		errors.Is(err, adapter.ErrInternalServerError),
		errors.Is(err, adapter.ErrBadGateway):
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	return err
}

// ErrorReason picks the text shown to the user for err: a local validation
// message, then the server's detail, then its message, then fallback.
func ErrorReason(err error, fallback string) string {
	if err == nil {
		return ""
	}
	if msg, ok := validators.Message(err); ok && msg != "" {
		return msg
	}

	var apiErr *adapter.APIError
	if errors.As(err, &apiErr) {
		if reason := apiErr.Reason(); reason != "" {
			return reason
		}
	}
	return fallback
}

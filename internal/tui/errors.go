// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-sweet-shop/internal/adapter"
	"github.com/MKhiriev/go-sweet-shop/internal/service"
)

const msgServerUnavailable = "Network unavailable or the server is down"

// describeError turns err into the line shown to the user. Network failures
// get a fixed text; everything else follows service.ErrorReason.
func describeError(err error, fallback string) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, adapter.ErrTransport) && isNetworkFailure(err) {
		return msgServerUnavailable
	}
	return service.ErrorReason(err, fallback)
}

func isNetworkFailure(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded")
}

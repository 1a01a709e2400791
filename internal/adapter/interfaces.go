// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client's only boundary to the Sweet Shop REST API.
//
// [ShopAdapter] issues one request per call with no retry. Every non-2xx
// response is turned into an [*APIError] that wraps one of the sentinel
// errors in errors.go, so callers can use [errors.Is] (e.g. [ErrUnauthorized]
// for 401) and [errors.As] to reach the server's detail and message texts.
//
// A 401 from any endpoint is also reported to the handler registered with
// OnUnauthorized, independent of the call site.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-sweet-shop/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/shop_adapter_mock.go -package=mock

// ShopAdapter defines communication with the Sweet Shop API.
type ShopAdapter interface {
	// SetToken stores the bearer credential attached to every subsequent
	// request. An empty token removes the Authorization header.
	SetToken(token string)

	// Token returns the credential currently held, or "".
	Token() string

	// OnUnauthorized registers fn to be called whenever any response carries
	// status 401. A later call replaces the previous handler.
	OnUnauthorized(fn func())

	// Register creates a new account: POST /auth/register.
	Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error)

	// Login exchanges credentials for a token and the user record:
	// POST /auth/login with a form-encoded body. The returned token is NOT
	// stored; the caller decides whether to keep it.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// GetSweets returns the full catalog: GET /sweets.
	GetSweets(ctx context.Context) ([]models.Sweet, error)

	// SearchSweets queries GET /sweets/search with only the parameters set
	// in params.
	SearchSweets(ctx context.Context, params models.SearchParams) ([]models.Sweet, error)

	// CreateSweet adds a product: POST /sweets.
	CreateSweet(ctx context.Context, req models.CreateSweetRequest) (models.Sweet, error)

	// UpdateSweet changes the non-nil fields of a product: PUT /sweets/{id}.
	UpdateSweet(ctx context.Context, id int64, req models.UpdateSweetRequest) (models.Sweet, error)

	// DeleteSweet removes a product: DELETE /sweets/{id}.
	DeleteSweet(ctx context.Context, id int64) (models.MessageResponse, error)

	// RestockSweet adds quantity units: POST /sweets/{id}/restock?quantity=N.
	RestockSweet(ctx context.Context, id int64, quantity int) (models.Sweet, error)

	// PurchaseSweet buys one unit: POST /sweets/{id}/purchase.
	PurchaseSweet(ctx context.Context, id int64) (models.Sweet, error)
}

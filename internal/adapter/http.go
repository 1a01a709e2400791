package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-sweet-shop/internal/config"
	"github.com/MKhiriev/go-sweet-shop/internal/logger"
	"github.com/MKhiriev/go-sweet-shop/internal/utils"
	"github.com/MKhiriev/go-sweet-shop/models"
	"github.com/go-resty/resty/v2"
)

const (
	requestIDHeader = "X-Request-ID"
)

type httpShopAdapter struct {
	client *utils.HTTPClient

	mu             sync.RWMutex
	token          string
	onUnauthorized func()

	logger *logger.Logger
}

// NewHTTPShopAdapter constructs the resty implementation of [ShopAdapter].
// It normalises adapterCfg.HTTPAddress, installs the request id header and
// the global 401 hook.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPShopAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (ShopAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	h := &httpShopAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: log,
	}

	h.client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader(requestIDHeader, utils.RequestIDFromContext(req.Context()))
		return nil
	})
	h.client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		h.logResponse(resp)
		if resp.StatusCode() == http.StatusUnauthorized {
			h.notifyUnauthorized()
		}
		return nil
	})

	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ShopAdapter].
func (h *httpShopAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ShopAdapter].
func (h *httpShopAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// OnUnauthorized implements [ShopAdapter].
func (h *httpShopAdapter) OnUnauthorized(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onUnauthorized = fn
}

// notifyUnauthorized runs the handler outside the lock: it usually calls
// SetToken("").
func (h *httpShopAdapter) notifyUnauthorized() {
	h.mu.RLock()
	fn := h.onUnauthorized
	h.mu.RUnlock()

	if fn != nil {
		fn()
	}
}

// Register implements [ShopAdapter]. It POSTs the account fields as JSON to
// /api/auth/register.
func (h *httpShopAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/auth/register")
	if err != nil {
		return models.RegisterResponse{}, mapTransportError(err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RegisterResponse{}, err
	}

	var out models.RegisterResponse
	if err = decode(resp, &out); err != nil {
		return models.RegisterResponse{}, err
	}
	return out, nil
}

// Login implements [ShopAdapter]. The OAuth2 password form of the API
// requires application/x-www-form-urlencoded.
func (h *httpShopAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username": req.Username,
			"password": req.Password,
		}).
		Post("/auth/login")
	if err != nil {
		return models.LoginResponse{}, mapTransportError(err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	var out models.LoginResponse
	if err = decode(resp, &out); err != nil {
		return models.LoginResponse{}, err
	}
	return out, nil
}

// GetSweets implements [ShopAdapter].
func (h *httpShopAdapter) GetSweets(ctx context.Context) ([]models.Sweet, error) {
	resp, err := h.authedRequest(ctx).Get("/sweets/")
	if err != nil {
		return nil, mapTransportError(err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var sweets []models.Sweet
	if err = decode(resp, &sweets); err != nil {
		return nil, err
	}
	return sweets, nil
}

// SearchSweets implements [ShopAdapter]. Unset parameters are left out of
// the query string entirely.
func (h *httpShopAdapter) SearchSweets(ctx context.Context, params models.SearchParams) ([]models.Sweet, error) {
	req := h.authedRequest(ctx)
	if params.Name != "" {
		req.SetQueryParam("name", params.Name)
	}
	if params.Category != "" {
		req.SetQueryParam("category", params.Category)
	}
	if params.MinPrice != nil {
		req.SetQueryParam("min_price", formatPrice(*params.MinPrice))
	}
	if params.MaxPrice != nil {
		req.SetQueryParam("max_price", formatPrice(*params.MaxPrice))
	}

	resp, err := req.Get("/sweets/search")
	if err != nil {
		return nil, mapTransportError(err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var sweets []models.Sweet
	if err = decode(resp, &sweets); err != nil {
		return nil, err
	}
	return sweets, nil
}

// CreateSweet implements [ShopAdapter].
func (h *httpShopAdapter) CreateSweet(ctx context.Context, req models.CreateSweetRequest) (models.Sweet, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/sweets/")
	if err != nil {
		return models.Sweet{}, mapTransportError(err)
	}
	return decodeSweet(resp)
}

// UpdateSweet implements [ShopAdapter].
func (h *httpShopAdapter) UpdateSweet(ctx context.Context, id int64, req models.UpdateSweetRequest) (models.Sweet, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put(sweetPath(id, ""))
	if err != nil {
		return models.Sweet{}, mapTransportError(err)
	}
	return decodeSweet(resp)
}

// DeleteSweet implements [ShopAdapter].
func (h *httpShopAdapter) DeleteSweet(ctx context.Context, id int64) (models.MessageResponse, error) {
	resp, err := h.authedRequest(ctx).Delete(sweetPath(id, ""))
	if err != nil {
		return models.MessageResponse{}, mapTransportError(err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MessageResponse{}, err
	}

	var out models.MessageResponse
	if err = decode(resp, &out); err != nil {
		return models.MessageResponse{}, err
	}
	return out, nil
}

// RestockSweet implements [ShopAdapter]. The quantity travels in the query
// string; the request has no body.
func (h *httpShopAdapter) RestockSweet(ctx context.Context, id int64, quantity int) (models.Sweet, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("quantity", strconv.Itoa(quantity)).
		Post(sweetPath(id, "/restock"))
	if err != nil {
		return models.Sweet{}, mapTransportError(err)
	}
	return decodeSweet(resp)
}

// PurchaseSweet implements [ShopAdapter].
func (h *httpShopAdapter) PurchaseSweet(ctx context.Context, id int64) (models.Sweet, error) {
	resp, err := h.authedRequest(ctx).Post(sweetPath(id, "/purchase"))
	if err != nil {
		return models.Sweet{}, mapTransportError(err)
	}
	return decodeSweet(resp)
}

func (h *httpShopAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (h *httpShopAdapter) logResponse(resp *resty.Response) {
	if h.logger == nil {
		return
	}
	h.logger.Debug().
		Str("func", "httpShopAdapter.logResponse").
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Str("request_id", resp.Request.Header.Get(requestIDHeader)).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("shop api call")
}

func sweetPath(id int64, suffix string) string {
	return "/sweets/" + strconv.FormatInt(id, 10) + suffix
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func decode(resp *resty.Response, v any) error {
	if err := json.Unmarshal(resp.Body(), v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	return nil
}

func decodeSweet(resp *resty.Response) (models.Sweet, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.Sweet{}, err
	}

	var sweet models.Sweet
	if err := decode(resp, &sweet); err != nil {
		return models.Sweet{}, err
	}
	return sweet, nil
}

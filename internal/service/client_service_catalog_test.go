package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-sweet-shop/internal/adapter"
	"github.com/MKhiriev/go-sweet-shop/internal/logger"
	"github.com/MKhiriev/go-sweet-shop/internal/mock"
	"github.com/MKhiriev/go-sweet-shop/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestCatalogSvc(t *testing.T, ctrl *gomock.Controller) (*clientCatalogService, *mock.MockShopAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockShopAdapter(ctrl)
	svc := NewClientCatalogService(mockAdapter, logger.Nop()).(*clientCatalogService)
	return svc, mockAdapter
}

var (
	choco = models.Sweet{ID: 1, Name: "Choco", Category: "Chocolates", Price: 3.99, Quantity: 12}
	tart  = models.Sweet{ID: 2, Name: "Tart", Category: "Pastries", Price: 5.49, Quantity: 0}
)

func float64Ptr(v float64) *float64 { return &v }

func TestClientCatalogService_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestCatalogSvc(t, ctrl)

	assert.Equal(t, models.DefaultFilterCriteria(), svc.Criteria())
	assert.Equal(t, models.FilterLocal, svc.Mode())
	assert.Empty(t, svc.Visible())
}

func TestClientCatalogService_LocalModeFiltersInMemory(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().GetSweets(ctx).Return([]models.Sweet{choco, tart}, nil)
	require.NoError(t, svc.Refresh(ctx))

	assert.False(t, svc.SetNameQuery("cho"), "local mode needs no fetch")
	assert.Equal(t, []models.Sweet{choco}, svc.Visible())

	assert.False(t, svc.SetNameQuery(""))
	assert.False(t, svc.SetCategory("Pastries"))
	assert.Equal(t, []models.Sweet{tart}, svc.Visible())

	assert.Equal(t, []models.Sweet{choco, tart}, svc.All())
}

func TestClientCatalogService_PriceRangeSwitchesToRemoteForGood(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	assert.True(t, svc.SetPriceRange(2, 50))
	assert.Equal(t, models.FilterRemote, svc.Mode())

	mockAdapter.EXPECT().SearchSweets(ctx, models.SearchParams{
		MinPrice: float64Ptr(2),
		MaxPrice: float64Ptr(50),
	}).Return([]models.Sweet{tart}, nil)
	require.NoError(t, svc.Refresh(ctx))

	// remote results are shown as returned, without re-filtering
	assert.Equal(t, []models.Sweet{tart}, svc.Visible())

	assert.True(t, svc.SetNameQuery("x"))
	assert.True(t, svc.SetCategory("Candies"))

	// back to default bounds does not bring local mode back
	assert.True(t, svc.SetPriceRange(models.DefaultMinPrice, models.DefaultMaxPrice))
	assert.Equal(t, models.FilterRemote, svc.Mode())
}

func TestClientCatalogService_RemoteDefaultsSendNoParams(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	svc.SetPriceRange(0, 100)
	mockAdapter.EXPECT().SearchSweets(ctx, models.SearchParams{}).Return([]models.Sweet{choco, tart}, nil)

	require.NoError(t, svc.Refresh(ctx))
	assert.Len(t, svc.Visible(), 2)
}

func TestClientCatalogService_InvertedBoundsPassThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	svc.SetPriceRange(10, 1)
	assert.Equal(t, 10.0, svc.Criteria().MinPrice)
	assert.Equal(t, 1.0, svc.Criteria().MaxPrice)

	mockAdapter.EXPECT().SearchSweets(ctx, models.SearchParams{
		MinPrice: float64Ptr(10),
		MaxPrice: float64Ptr(1),
	}).Return([]models.Sweet{}, nil)

	require.NoError(t, svc.Refresh(ctx))
	assert.Empty(t, svc.Visible())
}

// A fetch for "a" that resolves after the fetch for "ab" must not win.
func TestClientCatalogService_StaleResultDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	resultA := []models.Sweet{{ID: 10, Name: "a"}}
	resultAB := []models.Sweet{{ID: 11, Name: "ab"}}

	svc.SetPriceRange(0, 100)
	svc.SetNameQuery("a")

	issued := make(chan struct{})
	release := make(chan struct{})
	mockAdapter.EXPECT().SearchSweets(gomock.Any(), models.SearchParams{Name: "a"}).
		DoAndReturn(func(context.Context, models.SearchParams) ([]models.Sweet, error) {
			close(issued)
			<-release
			return resultA, nil
		})
	mockAdapter.EXPECT().SearchSweets(gomock.Any(), models.SearchParams{Name: "ab"}).Return(resultAB, nil)

	firstErr := make(chan error, 1)
	go func() { firstErr <- svc.Refresh(ctx) }()
	<-issued

	svc.SetNameQuery("ab")
	require.NoError(t, svc.Refresh(ctx))
	assert.Equal(t, resultAB, svc.Visible())

	close(release)
	assert.ErrorIs(t, <-firstErr, ErrStaleResult)
	assert.Equal(t, resultAB, svc.Visible())
}

func TestClientCatalogService_SequentialFetchesBothApply(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().GetSweets(ctx).Return([]models.Sweet{choco}, nil),
		mockAdapter.EXPECT().GetSweets(ctx).Return([]models.Sweet{choco, tart}, nil),
	)

	require.NoError(t, svc.Refresh(ctx))
	require.NoError(t, svc.Refresh(ctx))
	assert.Len(t, svc.All(), 2)
}

func TestClientCatalogService_FailedFetchKeepsListAndMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().GetSweets(ctx).Return([]models.Sweet{choco, tart}, nil)
	require.NoError(t, svc.Refresh(ctx))

	svc.SetPriceRange(1, 4)
	mockAdapter.EXPECT().SearchSweets(ctx, gomock.Any()).Return(nil, adapter.NewAPIError(500, "", "db down"))

	err := svc.Refresh(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServerUnavailable)
	assert.Equal(t, "db down", ErrorReason(err, MsgLoadSweetsFailed))
	assert.Equal(t, models.FilterRemote, svc.Mode())
	assert.Equal(t, []models.Sweet{choco, tart}, svc.All())
}

func TestClientCatalogService_ReplaceAndLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().GetSweets(ctx).Return([]models.Sweet{choco, tart}, nil)
	require.NoError(t, svc.Refresh(ctx))

	bought := choco
	bought.Quantity = 11
	svc.Replace(bought)
	svc.Replace(models.Sweet{ID: 99, Name: "unknown"})

	got, ok := svc.Lookup(choco.ID)
	require.True(t, ok)
	assert.Equal(t, 11, got.Quantity)
	assert.Len(t, svc.All(), 2)

	_, ok = svc.Lookup(99)
	assert.False(t, ok)
}

func TestClientCatalogService_AdminVisibleIgnoresPrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().GetSweets(ctx).Return([]models.Sweet{choco, tart}, nil)
	require.NoError(t, svc.Refresh(ctx))
	svc.mu.Lock()
	svc.criteria.MaxPrice = 1
	svc.mu.Unlock()

	assert.Equal(t, []models.Sweet{choco, tart}, svc.AdminVisible("", ""))
	assert.Equal(t, []models.Sweet{tart}, svc.AdminVisible("TA", ""))
	assert.Empty(t, svc.AdminVisible("", "Candies"))
}

func TestClientCatalogService_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().GetSweets(ctx).Return([]models.Sweet{choco, tart}, nil)
	require.NoError(t, svc.Refresh(ctx))

	assert.Equal(t, models.ShopStats{Available: 1, Categories: 2, Total: 2}, svc.Stats())

	stats := svc.AdminStats()
	assert.Equal(t, 2, stats.TotalProducts)
	assert.Equal(t, 1, stats.OutOfStock)
	assert.Equal(t, 0, stats.LowStock)
	assert.InDelta(t, 3.99*12, stats.TotalValue, 1e-9)
}

func TestClientCatalogService_ResetDropsInFlightFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	svc.SetPriceRange(1, 2)

	issued := make(chan struct{})
	release := make(chan struct{})
	mockAdapter.EXPECT().SearchSweets(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.SearchParams) ([]models.Sweet, error) {
			close(issued)
			<-release
			return []models.Sweet{choco}, nil
		})

	done := make(chan error, 1)
	go func() { done <- svc.Refresh(ctx) }()
	<-issued

	svc.Reset()
	close(release)

	assert.ErrorIs(t, <-done, ErrStaleResult)
	assert.Empty(t, svc.All())
	assert.Equal(t, models.FilterLocal, svc.Mode())
	assert.Equal(t, models.DefaultFilterCriteria(), svc.Criteria())
}

func TestClientCatalogService_UnauthorizedMapsToSessionExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().GetSweets(ctx).Return(nil, adapter.NewAPIError(401, "Not authenticated", ""))

	err := svc.Refresh(ctx)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestIconFor(t *testing.T) {
	assert.Equal(t, "🍬", IconFor(0))
	assert.Equal(t, "🍭", IconFor(1))
	assert.Equal(t, "⭐", IconFor(14))
	assert.Equal(t, "🍬", IconFor(15))
	assert.Equal(t, IconFor(3), IconFor(3+int64(len(sweetIcons))*4))
	assert.NotEmpty(t, IconFor(-1))
}

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "401", err: adapter.NewAPIError(401, "", ""), want: ErrSessionExpired},
		{name: "403", err: adapter.NewAPIError(403, "", ""), want: ErrForbidden},
		{name: "404", err: adapter.NewAPIError(404, "Sweet not found", ""), want: ErrNotFound},
		{name: "400", err: adapter.NewAPIError(400, "Sweet is out of stock", ""), want: ErrRejected},
		{name: "409", err: adapter.NewAPIError(409, "", ""), want: ErrRejected},
		{name: "422", err: adapter.NewAPIError(422, "field required", ""), want: ErrRejected},
		{name: "500", err: adapter.NewAPIError(500, "", ""), want: ErrServerUnavailable},
		{name: "502", err: adapter.NewAPIError(502, "", ""), want: ErrServerUnavailable},
		{name: "transport", err: adapter.NewTransportError(errors.New("eof")), want: ErrServerUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.err)
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.err)
		})
	}

	assert.NoError(t, mapAdapterError(nil))
	other := errors.New("other")
	assert.Same(t, other, mapAdapterError(other))
}

func TestErrorReason(t *testing.T) {
	assert.Empty(t, ErrorReason(nil, "fallback"))
	assert.Equal(t, "Sweet is out of stock", ErrorReason(mapAdapterError(adapter.NewAPIError(400, "Sweet is out of stock", "x")), "fallback"))
	assert.Equal(t, "x", ErrorReason(adapter.NewAPIError(400, "", "x"), "fallback"))
	assert.Equal(t, "fallback", ErrorReason(adapter.NewAPIError(400, "", ""), "fallback"))
	assert.Equal(t, "fallback", ErrorReason(ErrOutOfStock, "fallback"))
	assert.Equal(t, "Failed to add sweet", FailedToMessage("add"))
}

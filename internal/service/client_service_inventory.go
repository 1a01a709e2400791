package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sweet-shop/internal/adapter"
	"github.com/MKhiriev/go-sweet-shop/internal/logger"
	"github.com/MKhiriev/go-sweet-shop/internal/validators"
	"github.com/MKhiriev/go-sweet-shop/models"
)

type clientInventoryService struct {
	adapter   adapter.ShopAdapter
	catalog   CatalogService
	validator validators.Validator
	logger    *logger.Logger
}

func NewClientInventoryService(
	shop adapter.ShopAdapter,
	catalog CatalogService,
	validator validators.Validator,
	logger *logger.Logger,
) InventoryService {
	return &clientInventoryService{
		adapter:   shop,
		catalog:   catalog,
		validator: validator,
		logger:    logger,
	}
}

func (s *clientInventoryService) Create(ctx context.Context, req models.CreateSweetRequest) (models.Sweet, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Sweet{}, err
	}

	created, err := s.adapter.CreateSweet(ctx, req)
	if err != nil {
		s.logger.Err(err).Str("func", "clientInventoryService.Create").Str("name", req.Name).Msg("failed to create sweet")
		return models.Sweet{}, mapAdapterError(err)
	}

	return created, s.refreshAfter(ctx, "create")
}

func (s *clientInventoryService) Update(ctx context.Context, id int64, req models.UpdateSweetRequest) (models.Sweet, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Sweet{}, err
	}

	updated, err := s.adapter.UpdateSweet(ctx, id, req)
	if err != nil {
		s.logger.Err(err).Str("func", "clientInventoryService.Update").Int64("sweet_id", id).Msg("failed to update sweet")
		return models.Sweet{}, mapAdapterError(err)
	}

	return updated, s.refreshAfter(ctx, "update")
}

func (s *clientInventoryService) Delete(ctx context.Context, id int64) error {
	if _, err := s.adapter.DeleteSweet(ctx, id); err != nil {
		s.logger.Err(err).Str("func", "clientInventoryService.Delete").Int64("sweet_id", id).Msg("failed to delete sweet")
		return mapAdapterError(err)
	}

	return s.refreshAfter(ctx, "delete")
}

func (s *clientInventoryService) Restock(ctx context.Context, req models.RestockRequest) (models.Sweet, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Sweet{}, err
	}

	restocked, err := s.adapter.RestockSweet(ctx, req.SweetID, req.Quantity)
	if err != nil {
		s.logger.Err(err).
			Str("func", "clientInventoryService.Restock").
			Int64("sweet_id", req.SweetID).
			Int("quantity", req.Quantity).
			Msg("failed to restock sweet")
		return models.Sweet{}, mapAdapterError(err)
	}

	return restocked, s.refreshAfter(ctx, "restock")
}

func (s *clientInventoryService) Purchase(ctx context.Context, id int64) (models.Sweet, error) {
	if cached, ok := s.catalog.Lookup(id); ok && !cached.InStock() {
		return models.Sweet{}, ErrOutOfStock
	}

	purchased, err := s.adapter.PurchaseSweet(ctx, id)
	if err != nil {
		s.logger.Info().Err(err).Str("func", "clientInventoryService.Purchase").Int64("sweet_id", id).Msg("purchase refused")
		return models.Sweet{}, mapAdapterError(err)
	}

	s.catalog.Replace(purchased)
	return purchased, nil
}

// refreshAfter re-fetches the catalog after a confirmed mutation. A refresh
// superseded by a newer one is not a failure.
func (s *clientInventoryService) refreshAfter(ctx context.Context, op string) error {
	err := s.catalog.Refresh(ctx)
	if err == nil || errors.Is(err, ErrStaleResult) {
		return nil
	}

	s.logger.Warn().Err(err).Str("func", "clientInventoryService.refreshAfter").Str("op", op).Msg("catalog refresh failed")
	return fmt.Errorf("%w: %w", ErrCatalogRefresh, err)
}

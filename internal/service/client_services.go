package service

import (
	"github.com/MKhiriev/go-sweet-shop/internal/adapter"
	"github.com/MKhiriev/go-sweet-shop/internal/logger"
	"github.com/MKhiriev/go-sweet-shop/internal/store"
	"github.com/MKhiriev/go-sweet-shop/internal/validators"
)

type ClientServices struct {
	Session    SessionService
	Catalog    CatalogService
	Inventory  InventoryService
	Auth       AuthService
	RefreshJob CatalogRefreshJob
}

func NewClientServices(storages *store.ClientStorages, shop adapter.ShopAdapter, logger *logger.Logger) *ClientServices {
	validator := validators.NewFormValidator()

	sessionSvc := NewClientSessionService(storages.SessionSlots, shop, validator, logger)
	catalogSvc := NewClientCatalogService(shop, logger)

	return &ClientServices{
		Session:    sessionSvc,
		Catalog:    catalogSvc,
		Inventory:  NewClientInventoryService(shop, catalogSvc, validator, logger),
		Auth:       NewClientAuthService(shop, sessionSvc, validator, logger),
		RefreshJob: NewCatalogRefreshJob(catalogSvc, logger),
	}
}

package service

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/go-sweet-shop/internal/adapter"
	"github.com/MKhiriev/go-sweet-shop/internal/logger"
	"github.com/MKhiriev/go-sweet-shop/models"
)

var sweetIcons = []string{"🍬", "🍭", "🧁", "🍰", "🥧", "🍪", "🍩", "🎂", "🍓", "🫐", "🍋", "🍃", "❤️", "🐻", "⭐"}

// IconFor returns the display icon of a sweet. It depends only on id.
func IconFor(id int64) string {
	idx := id % int64(len(sweetIcons))
	if idx < 0 {
		idx += int64(len(sweetIcons))
	}
	return sweetIcons[idx]
}

type clientCatalogService struct {
	adapter adapter.ShopAdapter
	logger  *logger.Logger

	mu       sync.RWMutex
	criteria models.FilterCriteria
	mode     models.FilterMode
	sweets   []models.Sweet

	// generation is bumped by every issued fetch; a result is applied only
	// if it still matches.
	generation uint64
}

func NewClientCatalogService(shop adapter.ShopAdapter, logger *logger.Logger) CatalogService {
	return &clientCatalogService{
		adapter:  shop,
		logger:   logger,
		criteria: models.DefaultFilterCriteria(),
		mode:     models.FilterLocal,
	}
}

func (c *clientCatalogService) Criteria() models.FilterCriteria {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.criteria
}

func (c *clientCatalogService) Mode() models.FilterMode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mode
}

func (c *clientCatalogService) SetNameQuery(query string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria.NameQuery = query
	return c.mode == models.FilterRemote
}

func (c *clientCatalogService) SetCategory(category string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria.Category = category
	return c.mode == models.FilterRemote
}

// SetPriceRange stores the bounds as given, even when minPrice > maxPrice.
func (c *clientCatalogService) SetPriceRange(minPrice, maxPrice float64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria.MinPrice = minPrice
	c.criteria.MaxPrice = maxPrice
	c.mode = models.FilterRemote
	return true
}

func (c *clientCatalogService) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.generation++
	gen := c.generation
	mode, criteria := c.mode, c.criteria
	c.mu.Unlock()

	var (
		result []models.Sweet
		err    error
	)
	if mode == models.FilterRemote {
		result, err = c.adapter.SearchSweets(ctx, criteria.SearchParams())
	} else {
		result, err = c.adapter.GetSweets(ctx)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		c.logger.Debug().
			Str("func", "clientCatalogService.Refresh").
			Uint64("generation", gen).
			Uint64("latest", c.generation).
			Msg("dropping superseded fetch result")
		return ErrStaleResult
	}
	if err != nil {
		c.logger.Err(err).Str("func", "clientCatalogService.Refresh").Str("mode", mode.String()).Msg("failed to fetch sweets")
		return mapAdapterError(err)
	}

	c.sweets = result
	return nil
}

func (c *clientCatalogService) Visible() []models.Sweet {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.mode == models.FilterRemote {
		return slices.Clone(c.sweets)
	}

	visible := make([]models.Sweet, 0, len(c.sweets))
	for _, s := range c.sweets {
		if c.criteria.Matches(s) {
			visible = append(visible, s)
		}
	}
	return visible
}

func (c *clientCatalogService) AdminVisible(nameQuery, category string) []models.Sweet {
	c.mu.RLock()
	defer c.mu.RUnlock()

	filter := models.FilterCriteria{NameQuery: nameQuery, Category: category}
	visible := make([]models.Sweet, 0, len(c.sweets))
	for _, s := range c.sweets {
		if filter.MatchesText(s) {
			visible = append(visible, s)
		}
	}
	return visible
}

func (c *clientCatalogService) All() []models.Sweet {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.sweets)
}

func (c *clientCatalogService) Lookup(id int64) (models.Sweet, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	idx := slices.IndexFunc(c.sweets, func(s models.Sweet) bool { return s.ID == id })
	if idx < 0 {
		return models.Sweet{}, false
	}
	return c.sweets[idx], true
}

func (c *clientCatalogService) Replace(sweet models.Sweet) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.sweets {
		if c.sweets[i].ID == sweet.ID {
			c.sweets[i] = sweet
			return
		}
	}
}

func (c *clientCatalogService) Stats() models.ShopStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return models.NewShopStats(c.sweets)
}

func (c *clientCatalogService) AdminStats() models.InventoryStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return models.NewInventoryStats(c.sweets)
}

// Reset also invalidates fetches still in flight.
func (c *clientCatalogService) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria = models.DefaultFilterCriteria()
	c.mode = models.FilterLocal
	c.sweets = nil
	c.generation++
}

package models

// ShopStats is the summary shown above the shopper's catalog.
type ShopStats struct {
	Available  int
	Categories int
	Total      int
}

// InventoryStats is the summary shown above the admin's inventory.
type InventoryStats struct {
	TotalProducts int
	TotalValue    float64
	OutOfStock    int
	LowStock      int
}

// LowStockThreshold is the quantity below which an in-stock item counts as
// low.
const LowStockThreshold = 10

// NewShopStats summarises sweets.
func NewShopStats(sweets []Sweet) ShopStats {
	categories := make(map[string]struct{})
	stats := ShopStats{Total: len(sweets)}
	for _, s := range sweets {
		if s.InStock() {
			stats.Available++
		}
		categories[s.Category] = struct{}{}
	}
	stats.Categories = len(categories)
	return stats
}

// NewInventoryStats summarises sweets for the admin.
func NewInventoryStats(sweets []Sweet) InventoryStats {
	stats := InventoryStats{TotalProducts: len(sweets)}
	for _, s := range sweets {
		stats.TotalValue += s.Price * float64(s.Quantity)
		switch {
		case s.Quantity == 0:
			stats.OutOfStock++
		case s.Quantity < LowStockThreshold:
			stats.LowStock++
		}
	}
	return stats
}

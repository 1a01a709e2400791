package models

import "strings"

const (
	DefaultMinPrice float64 = 0
	DefaultMaxPrice float64 = 100
)

// FilterMode selects where filtering happens.
type FilterMode int

const (
	// FilterLocal filters the last unfiltered fetch in memory.
	FilterLocal FilterMode = iota
	// FilterRemote delegates filtering to GET /sweets/search.
	FilterRemote
)

func (m FilterMode) String() string {
	if m == FilterRemote {
		return "remote"
	}
	return "local"
}

// FilterCriteria is the raw state of the filter inputs. MinPrice > MaxPrice is
// allowed and simply matches nothing.
type FilterCriteria struct {
	NameQuery string
	Category  string
	MinPrice  float64
	MaxPrice  float64
}

// DefaultFilterCriteria returns criteria that match every product.
func DefaultFilterCriteria() FilterCriteria {
	return FilterCriteria{MinPrice: DefaultMinPrice, MaxPrice: DefaultMaxPrice}
}

// SearchParams keeps only the fields that differ from their defaults.
func (c FilterCriteria) SearchParams() SearchParams {
	var p SearchParams
	if c.NameQuery != "" {
		p.Name = c.NameQuery
	}
	if c.Category != "" {
		p.Category = c.Category
	}
	if c.MinPrice > DefaultMinPrice {
		v := c.MinPrice
		p.MinPrice = &v
	}
	if c.MaxPrice < DefaultMaxPrice {
		v := c.MaxPrice
		p.MaxPrice = &v
	}
	return p
}

// Matches is the in-memory predicate: name contains NameQuery ignoring case,
// Category is empty or equal, and the price lies in [MinPrice, MaxPrice].
func (c FilterCriteria) Matches(s Sweet) bool {
	return c.MatchesText(s) && s.Price >= c.MinPrice && s.Price <= c.MaxPrice
}

// MatchesText applies only the name and category parts of the predicate.
func (c FilterCriteria) MatchesText(s Sweet) bool {
	if !strings.Contains(strings.ToLower(s.Name), strings.ToLower(c.NameQuery)) {
		return false
	}
	return c.Category == "" || c.Category == s.Category
}

package models

// Sweet is a product of the shop as returned by the API.
// Quantity and Price are never negative; the server enforces it.
type Sweet struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Categories are the catalog categories offered by the category filter.
var Categories = []string{"Chocolates", "Macarons", "Cupcakes", "Candies", "Pastries"}

// InStock reports whether at least one unit can be purchased.
func (s Sweet) InStock() bool {
	return s.Quantity > 0
}

// CreateSweetRequest is the body of POST /sweets.
type CreateSweetRequest struct {
	Name     string  `json:"name" validate:"required,notblank"`
	Category string  `json:"category"`
	Price    float64 `json:"price" validate:"gt=0"`
	Quantity int     `json:"quantity" validate:"gte=0"`
}

// UpdateSweetRequest is the body of PUT /sweets/{id}. Only non-nil fields are
// sent, so a partial update never overwrites the other columns.
type UpdateSweetRequest struct {
	Name     *string  `json:"name,omitempty" validate:"omitempty,notblank"`
	Category *string  `json:"category,omitempty"`
	Price    *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
}

// RestockRequest carries the amount added by POST /sweets/{id}/restock.
type RestockRequest struct {
	SweetID  int64 `validate:"gt=0"`
	Quantity int   `validate:"gt=0"`
}

// SearchParams is the query of GET /sweets/search. Empty strings and nil
// bounds are omitted from the request.
type SearchParams struct {
	Name     string
	Category string
	MinPrice *float64
	MaxPrice *float64
}

// IsEmpty reports whether no filter parameter would be sent.
func (p SearchParams) IsEmpty() bool {
	return p.Name == "" && p.Category == "" && p.MinPrice == nil && p.MaxPrice == nil
}

// MessageResponse is the generic {"message": "..."} body.
type MessageResponse struct {
	Message string `json:"message"`
}

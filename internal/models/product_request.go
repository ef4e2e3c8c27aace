package models

// CreateProductRequest represents the request body for creating a product
type CreateProductRequest struct {
	Title       string  `json:"title" binding:"required,min=3"`
	Description string  `json:"description" binding:"required,min=10"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	ImageURL    string  `json:"imageUrl" binding:"required,min=1"`
	IsFeatured  bool    `json:"isFeatured"` // Defaults to false when omitted
}

// UpdateProductRequest represents a partial product update. Nil fields are
// left untouched.
type UpdateProductRequest struct {
	Title       *string  `json:"title" binding:"omitempty,min=3"`
	Description *string  `json:"description" binding:"omitempty,min=10"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	ImageURL    *string  `json:"imageUrl" binding:"omitempty,min=1"`
	IsFeatured  *bool    `json:"isFeatured"`
}

package dto

import "github.com/shopspring/decimal"

type CreateProductRequest struct {
	Name        string          `json:"name"        validate:"required"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"       validate:"min=0"`
	CategoryID  string          `json:"category_id" validate:"required,uuid"`
	ImageURL    *string         `json:"image_url"`
}

type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"       validate:"omitempty,min=0"`
	CategoryID  *string          `json:"category_id" validate:"omitempty,uuid"`
	ImageURL    *string          `json:"image_url"`
	Active      *bool            `json:"active"`
}

type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  string          `json:"category_id"`
	ImageURL    *string         `json:"image_url,omitempty"`
	Active      bool            `json:"active"`
	CreatedAt   string          `json:"created_at"`
}

type CreateCategoryRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Active      *bool   `json:"active"`
}

type CategoryResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Active      bool    `json:"active"`
	CreatedAt   string  `json:"created_at"`
}

type CreateAddOnRequest struct {
	Name  string          `json:"name"  validate:"required"`
	Price decimal.Decimal `json:"price" validate:"min=0"`
	// CategoryType is required for açaí add-ons, ignored for generic ones.
	CategoryType string `json:"category_type" validate:"omitempty,oneof=caldas complementos adicionais"`
}

type UpdateAddOnRequest struct {
	Name         *string          `json:"name"`
	Price        *decimal.Decimal `json:"price"         validate:"omitempty,min=0"`
	CategoryType *string          `json:"category_type" validate:"omitempty,oneof=caldas complementos adicionais"`
	Active       *bool            `json:"active"`
}

type AddOnResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	CategoryType string          `json:"category_type,omitempty"`
	Active       bool            `json:"active"`
}

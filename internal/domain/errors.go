package domain

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrProductExists   = errors.New("product already exists")
	ErrEmptyName       = errors.New("product name cannot be empty")
	ErrNegativePrice   = errors.New("product price cannot be negative")
	ErrNegativeStock   = errors.New("product stock cannot be negative")
	ErrInvalidID       = errors.New("invalid product id")
)

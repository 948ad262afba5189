package domain

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is the catalog aggregate. Price is kept as NUMERIC in the database
// to avoid floating point rounding, stock is never allowed below zero.
type Product struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	Stock       int64           `gorm:"not null;default:0" json:"stock"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (Product) TableName() string { return "products" }

// NewProduct validates the input and builds a product ready to be persisted.
// The identifier is assigned by the database on create.
func NewProduct(name, description string, price decimal.Decimal, stock int64) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}
	if stock < 0 {
		return nil, ErrNegativeStock
	}
	return &Product{
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
	}, nil
}

// UpdateStock replaces the stock level. Negative values are rejected and the
// product is left untouched.
func (p *Product) UpdateStock(stock int64) error {
	if stock < 0 {
		return ErrNegativeStock
	}
	p.Stock = stock
	return nil
}

// Rename changes the product name, rejecting blank names.
func (p *Product) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	p.Name = name
	return nil
}

// ChangePrice replaces the price, rejecting negative amounts.
func (p *Product) ChangePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return ErrNegativePrice
	}
	p.Price = price
	return nil
}

// ProductRepository is the persistence port used by the application layer.
// Implementations translate storage errors to the domain sentinels.
type ProductRepository interface {
	// Create persists a new product and fills in its generated ID.
	Create(ctx context.Context, product *Product) error

	// FindByID returns a single product or ErrProductNotFound.
	FindByID(ctx context.Context, id int64) (*Product, error)

	// FindAll lists products ordered by ID with limit/offset pagination.
	FindAll(ctx context.Context, limit, offset int) ([]Product, error)

	// Update saves the current state of an existing product.
	// Returns ErrProductNotFound when the product no longer exists.
	Update(ctx context.Context, product *Product) error

	// Delete removes a product by ID, ErrProductNotFound when absent.
	Delete(ctx context.Context, id int64) error
}

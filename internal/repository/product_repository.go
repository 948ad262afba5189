package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/atarek872/Clean-Architecture/internal/domain"
)

type postgresProductRepository struct {
	db  *gorm.DB
	log *logrus.Logger
}

// NewPostgresProductRepository builds the GORM-backed implementation of the
// product persistence port. The *gorm.DB must be opened with TranslateError
// so duplicate keys surface as gorm.ErrDuplicatedKey.
func NewPostgresProductRepository(db *gorm.DB, logger *logrus.Logger) domain.ProductRepository {
	return &postgresProductRepository{
		db:  db,
		log: logger,
	}
}

func (r *postgresProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			r.log.Warnf("Repository: Product '%s' already exists", product.Name)
			return fmt.Errorf("product '%s': %w", product.Name, domain.ErrProductExists)
		}
		r.log.Errorf("Repository: Failed to create product '%s': %v", product.Name, err)
		return fmt.Errorf("could not create product: %w", err)
	}

	r.log.Infof("Repository: Product created with ID %d, Name '%s'", product.ID, product.Name)
	return nil
}

func (r *postgresProductRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	var product domain.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Warnf("Repository: Product with ID %d not found", id)
			return nil, fmt.Errorf("product with id %d: %w", id, domain.ErrProductNotFound)
		}
		r.log.Errorf("Repository: Failed to get product by ID %d: %v", id, err)
		return nil, fmt.Errorf("could not get product by id: %w", err)
	}

	return &product, nil
}

func (r *postgresProductRepository) FindAll(ctx context.Context, limit, offset int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	products := []domain.Product{}
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&products).Error
	if err != nil {
		r.log.Errorf("Repository: Failed to list products (limit: %d, offset: %d): %v", limit, offset, err)
		return nil, fmt.Errorf("could not list products: %w", err)
	}

	r.log.Infof("Repository: Retrieved %d products (limit: %d, offset: %d)", len(products), limit, offset)
	return products, nil
}

func (r *postgresProductRepository) Update(ctx context.Context, product *domain.Product) error {
	tx := r.db.WithContext(ctx).Save(product)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrDuplicatedKey) {
			r.log.Warnf("Repository: Product name '%s' already taken", product.Name)
			return fmt.Errorf("product '%s': %w", product.Name, domain.ErrProductExists)
		}
		r.log.Errorf("Repository: Failed to update product ID %d: %v", product.ID, tx.Error)
		return fmt.Errorf("could not update product: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		r.log.Warnf("Repository: Product with ID %d not found for update", product.ID)
		return fmt.Errorf("product with id %d: %w", product.ID, domain.ErrProductNotFound)
	}

	r.log.Infof("Repository: Product ID %d updated", product.ID)
	return nil
}

func (r *postgresProductRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Product{}, id)
	if tx.Error != nil {
		r.log.Errorf("Repository: Failed to delete product ID %d: %v", id, tx.Error)
		return fmt.Errorf("could not delete product: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		r.log.Warnf("Repository: Product with ID %d not found for deletion", id)
		return fmt.Errorf("product with id %d: %w", id, domain.ErrProductNotFound)
	}

	r.log.Infof("Repository: Product ID %d deleted", id)
	return nil
}

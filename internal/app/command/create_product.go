package command

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/atarek872/Clean-Architecture/internal/domain"
)

// CreateProduct is the write request for adding a product to the catalog.
type CreateProduct struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int64
}

type CreateProductHandler struct {
	repo domain.ProductRepository
	log  *logrus.Logger
}

func NewCreateProductHandler(repo domain.ProductRepository, logger *logrus.Logger) *CreateProductHandler {
	return &CreateProductHandler{repo: repo, log: logger}
}

// Handle constructs the product, persists it and returns the generated ID.
func (h *CreateProductHandler) Handle(ctx context.Context, cmd CreateProduct) (int64, error) {
	product, err := domain.NewProduct(cmd.Name, cmd.Description, cmd.Price, cmd.Stock)
	if err != nil {
		h.log.Warnf("Command: Rejected create product '%s': %v", cmd.Name, err)
		return 0, err
	}

	if err := h.repo.Create(ctx, product); err != nil {
		h.log.Errorf("Command: Repository failed to create product '%s': %v", cmd.Name, err)
		return 0, err
	}

	h.log.Infof("Command: Product created with ID %d, Name '%s'", product.ID, product.Name)
	return product.ID, nil
}

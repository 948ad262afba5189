package command

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/atarek872/Clean-Architecture/internal/domain"
)

// ErrNoUpdateFields is returned when an update command carries no fields.
var ErrNoUpdateFields = errors.New("no fields provided for update")

// UpdateProduct partially updates a product. Nil fields are left unchanged.
type UpdateProduct struct {
	ID          int64
	Name        *string
	Description *string
	Price       *decimal.Decimal
}

type UpdateProductHandler struct {
	repo domain.ProductRepository
	log  *logrus.Logger
}

func NewUpdateProductHandler(repo domain.ProductRepository, logger *logrus.Logger) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo, log: logger}
}

func (h *UpdateProductHandler) Handle(ctx context.Context, cmd UpdateProduct) (*domain.Product, error) {
	if cmd.ID <= 0 {
		return nil, domain.ErrInvalidID
	}
	if cmd.Name == nil && cmd.Description == nil && cmd.Price == nil {
		h.log.Warnf("Command: Update for product ID %d carried no fields", cmd.ID)
		return nil, ErrNoUpdateFields
	}

	product, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		h.log.Warnf("Command: Product ID %d not found for update: %v", cmd.ID, err)
		return nil, err
	}

	if cmd.Name != nil {
		if err := product.Rename(*cmd.Name); err != nil {
			h.log.Warnf("Command: Rejected rename of product ID %d: %v", cmd.ID, err)
			return nil, err
		}
	}
	if cmd.Description != nil {
		product.Description = *cmd.Description
	}
	if cmd.Price != nil {
		if err := product.ChangePrice(*cmd.Price); err != nil {
			h.log.Warnf("Command: Rejected price change of product ID %d: %v", cmd.ID, err)
			return nil, err
		}
	}

	if err := h.repo.Update(ctx, product); err != nil {
		h.log.Errorf("Command: Repository failed to update product ID %d: %v", cmd.ID, err)
		return nil, err
	}

	h.log.Infof("Command: Product ID %d updated", product.ID)
	return product, nil
}

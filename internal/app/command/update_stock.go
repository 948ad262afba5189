package command

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/atarek872/Clean-Architecture/internal/domain"
)

// UpdateProductStock sets the stock level of a product. This is the only
// mutation the stock field goes through, negative levels are rejected.
type UpdateProductStock struct {
	ID    int64
	Stock int64
}

type UpdateProductStockHandler struct {
	repo domain.ProductRepository
	log  *logrus.Logger
}

func NewUpdateProductStockHandler(repo domain.ProductRepository, logger *logrus.Logger) *UpdateProductStockHandler {
	return &UpdateProductStockHandler{repo: repo, log: logger}
}

func (h *UpdateProductStockHandler) Handle(ctx context.Context, cmd UpdateProductStock) (*domain.Product, error) {
	if cmd.ID <= 0 {
		return nil, domain.ErrInvalidID
	}

	product, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		h.log.Warnf("Command: Product ID %d not found for stock update: %v", cmd.ID, err)
		return nil, err
	}

	if err := product.UpdateStock(cmd.Stock); err != nil {
		h.log.Warnf("Command: Rejected stock update for product ID %d to %d: %v", cmd.ID, cmd.Stock, err)
		return nil, err
	}

	if err := h.repo.Update(ctx, product); err != nil {
		h.log.Errorf("Command: Repository failed to update stock for product ID %d: %v", cmd.ID, err)
		return nil, err
	}

	h.log.Infof("Command: Product ID %d stock set to %d", product.ID, product.Stock)
	return product, nil
}

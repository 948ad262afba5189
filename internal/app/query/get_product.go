package query

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/atarek872/Clean-Architecture/internal/domain"
)

type GetProduct struct {
	ID int64
}

type GetProductHandler struct {
	repo domain.ProductRepository
	log  *logrus.Logger
}

func NewGetProductHandler(repo domain.ProductRepository, logger *logrus.Logger) *GetProductHandler {
	return &GetProductHandler{repo: repo, log: logger}
}

func (h *GetProductHandler) Handle(ctx context.Context, q GetProduct) (*domain.Product, error) {
	if q.ID <= 0 {
		h.log.Warnf("Query: Invalid product ID %d", q.ID)
		return nil, domain.ErrInvalidID
	}

	product, err := h.repo.FindByID(ctx, q.ID)
	if err != nil {
		h.log.Warnf("Query: Failed to get product ID %d: %v", q.ID, err)
		return nil, err
	}

	return product, nil
}

package query

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/atarek872/Clean-Architecture/internal/domain"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// ListProducts pages through the catalog ordered by ID.
type ListProducts struct {
	Limit  int
	Offset int
}

type ListProductsHandler struct {
	repo domain.ProductRepository
	log  *logrus.Logger
}

func NewListProductsHandler(repo domain.ProductRepository, logger *logrus.Logger) *ListProductsHandler {
	return &ListProductsHandler{repo: repo, log: logger}
}

func (h *ListProductsHandler) Handle(ctx context.Context, q ListProducts) ([]domain.Product, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	offset := q.Offset
	if offset < 0 {
		offset = 0
	}

	products, err := h.repo.FindAll(ctx, limit, offset)
	if err != nil {
		h.log.Errorf("Query: Repository failed to list products (limit: %d, offset: %d): %v", limit, offset, err)
		return nil, err
	}

	h.log.Infof("Query: Retrieved %d products (limit: %d, offset: %d)", len(products), limit, offset)
	return products, nil
}

package command

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/atarek872/Clean-Architecture/internal/domain"
)

type DeleteProduct struct {
	ID int64
}

type DeleteProductHandler struct {
	repo domain.ProductRepository
	log  *logrus.Logger
}

func NewDeleteProductHandler(repo domain.ProductRepository, logger *logrus.Logger) *DeleteProductHandler {
	return &DeleteProductHandler{repo: repo, log: logger}
}

func (h *DeleteProductHandler) Handle(ctx context.Context, cmd DeleteProduct) error {
	if cmd.ID <= 0 {
		return domain.ErrInvalidID
	}

	if err := h.repo.Delete(ctx, cmd.ID); err != nil {
		h.log.Warnf("Command: Failed to delete product ID %d: %v", cmd.ID, err)
		return err
	}

	h.log.Infof("Command: Product ID %d deleted", cmd.ID)
	return nil
}

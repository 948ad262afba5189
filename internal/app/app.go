// Package app wires the command and query handlers of the service together.
// Controllers dispatch through Application instead of talking to repositories
// directly, keeping writes and reads in separate handler types.
package app

import (
	"github.com/sirupsen/logrus"

	"github.com/atarek872/Clean-Architecture/internal/app/command"
	"github.com/atarek872/Clean-Architecture/internal/app/query"
	"github.com/atarek872/Clean-Architecture/internal/domain"
)

type Application struct {
	Commands Commands
	Queries  Queries
}

type Commands struct {
	CreateProduct      *command.CreateProductHandler
	UpdateProduct      *command.UpdateProductHandler
	UpdateProductStock *command.UpdateProductStockHandler
	DeleteProduct      *command.DeleteProductHandler
}

type Queries struct {
	GetProduct   *query.GetProductHandler
	ListProducts *query.ListProductsHandler
}

func New(repo domain.ProductRepository, logger *logrus.Logger) *Application {
	return &Application{
		Commands: Commands{
			CreateProduct:      command.NewCreateProductHandler(repo, logger),
			UpdateProduct:      command.NewUpdateProductHandler(repo, logger),
			UpdateProductStock: command.NewUpdateProductStockHandler(repo, logger),
			DeleteProduct:      command.NewDeleteProductHandler(repo, logger),
		},
		Queries: Queries{
			GetProduct:   query.NewGetProductHandler(repo, logger),
			ListProducts: query.NewListProductsHandler(repo, logger),
		},
	}
}

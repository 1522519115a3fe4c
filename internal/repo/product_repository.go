package repo

import (
	"context"
	"errors"

	"github.com/rogerio-castellano/inventory-rest/internal/models"
)

// ErrProductNotFound is returned when a product is not found in the inventory.
var ErrProductNotFound = errors.New("product not found")

// ProductFilter narrows a product listing. An empty Types matches every product.
type ProductFilter struct {
	Types []models.ProductType
}

func (f ProductFilter) matches(p models.Product) bool {
	if len(f.Types) == 0 {
		return true
	}
	for _, t := range f.Types {
		if p.Type == t {
			return true
		}
	}
	return false
}

// ProductInventory defines the operations on the product collection.
// List never returns a nil slice.
type ProductInventory interface {
	List(ctx context.Context, filter ProductFilter) ([]models.Product, error)
	Get(ctx context.Context, id int) (models.Product, error)
	Add(ctx context.Context, product models.Product) (models.Product, error)
	Update(ctx context.Context, id int, product models.Product) (models.Product, error)
	Delete(ctx context.Context, id int) error
}

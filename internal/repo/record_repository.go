package repo

import (
	"context"
	"errors"

	"github.com/rogerio-castellano/inventory-rest/internal/models"
)

// ErrRecordNotFound is returned when a record is not found in the inventory.
var ErrRecordNotFound = errors.New("record not found")

// RecordInventory defines the operations on the record collection.
// List never returns a nil slice.
type RecordInventory interface {
	List(ctx context.Context) ([]models.Record, error)
	Get(ctx context.Context, id int) (models.Record, error)
	Add(ctx context.Context, record models.Record) (models.Record, error)
	Update(ctx context.Context, id int, record models.Record) (models.Record, error)
	Delete(ctx context.Context, id int) error
}

package repo

import (
	"context"
	"sync"
	"testing"

	"github.com/rogerio-castellano/inventory-rest/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryProductInventory_AddAssignsIncreasingIDs(t *testing.T) {
	inv := NewInMemoryProductInventory()
	ctx := context.Background()

	first, err := inv.Add(ctx, models.Product{Name: "Laptop", Type: models.ProductStandard})
	require.NoError(t, err)
	second, err := inv.Add(ctx, models.Product{Name: "Mouse", Type: models.ProductPremium})
	require.NoError(t, err)

	require.NotNil(t, first.ID)
	require.NotNil(t, second.ID)
	assert.Equal(t, 1, *first.ID)
	assert.Equal(t, 2, *second.ID)

	got, err := inv.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Mouse", got.Name)
}

func TestInMemoryProductInventory_ListEmptyIsNotNil(t *testing.T) {
	inv := NewInMemoryProductInventory()

	products, err := inv.List(context.Background(), ProductFilter{})
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestInMemoryProductInventory_ListByType(t *testing.T) {
	inv := NewInMemoryProductInventory()
	ctx := context.Background()
	inv.Add(ctx, models.Product{Name: "A", Type: models.ProductStandard})
	inv.Add(ctx, models.Product{Name: "B", Type: models.ProductPremium})
	inv.Add(ctx, models.Product{Name: "C", Type: models.ProductSecondHand})

	products, err := inv.List(ctx, ProductFilter{Types: []models.ProductType{models.ProductPremium, models.ProductSecondHand}})
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "B", products[0].Name)
	assert.Equal(t, "C", products[1].Name)

	none, err := inv.List(ctx, ProductFilter{Types: []models.ProductType{"UNKNOWN"}})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestInMemoryProductInventory_UpdateKeepsID(t *testing.T) {
	inv := NewInMemoryProductInventory()
	ctx := context.Background()
	created, _ := inv.Add(ctx, models.Product{Name: "Old"})

	updated, err := inv.Update(ctx, *created.ID, models.Product{Name: "New", Type: models.ProductPremium})
	require.NoError(t, err)
	assert.Equal(t, *created.ID, *updated.ID)

	got, _ := inv.Get(ctx, *created.ID)
	assert.Equal(t, "New", got.Name)
	assert.Equal(t, models.ProductPremium, got.Type)
}

func TestInMemoryProductInventory_UnknownID(t *testing.T) {
	inv := NewInMemoryProductInventory()
	ctx := context.Background()
	inv.Add(ctx, models.Product{Name: "Only"})

	_, err := inv.Get(ctx, 42)
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = inv.Update(ctx, 42, models.Product{Name: "X"})
	assert.ErrorIs(t, err, ErrProductNotFound)

	assert.ErrorIs(t, inv.Delete(ctx, 42), ErrProductNotFound)

	products, _ := inv.List(ctx, ProductFilter{})
	require.Len(t, products, 1)
	assert.Equal(t, "Only", products[0].Name)
}

func TestInMemoryProductInventory_DeleteTwice(t *testing.T) {
	inv := NewInMemoryProductInventory()
	ctx := context.Background()
	created, _ := inv.Add(ctx, models.Product{Name: "Gone"})

	require.NoError(t, inv.Delete(ctx, *created.ID))
	assert.ErrorIs(t, inv.Delete(ctx, *created.ID), ErrProductNotFound)
}

func TestInMemoryProductInventory_IDsNotReusedAfterClear(t *testing.T) {
	inv := NewInMemoryProductInventory()
	ctx := context.Background()
	inv.Add(ctx, models.Product{Name: "A"})
	inv.Clear()

	created, err := inv.Add(ctx, models.Product{Name: "B"})
	require.NoError(t, err)
	assert.Equal(t, 2, *created.ID)
}

func TestInMemoryProductInventory_ConcurrentAdd(t *testing.T) {
	inv := NewInMemoryProductInventory()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			inv.Add(ctx, models.Product{Name: "p"})
		}()
	}
	wg.Wait()

	products, _ := inv.List(ctx, ProductFilter{})
	require.Len(t, products, 50)
	seen := map[int]bool{}
	for _, p := range products {
		assert.False(t, seen[*p.ID], "duplicate id %d", *p.ID)
		seen[*p.ID] = true
	}
}

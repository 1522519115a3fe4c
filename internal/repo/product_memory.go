package repo

import (
	"context"
	"sync"

	"github.com/rogerio-castellano/inventory-rest/internal/models"
)

// InMemoryProductInventory is an in-memory implementation of ProductInventory.
type InMemoryProductInventory struct {
	mu       sync.RWMutex
	products []models.Product
	nextID   int
}

// NewInMemoryProductInventory creates a new instance of InMemoryProductInventory.
func NewInMemoryProductInventory() *InMemoryProductInventory {
	return &InMemoryProductInventory{
		products: []models.Product{},
		nextID:   1,
	}
}

// List returns the products matching filter in id order.
func (r *InMemoryProductInventory) List(_ context.Context, filter ProductFilter) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filtered := []models.Product{}
	for _, p := range r.products {
		if filter.matches(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// Get retrieves a product by its ID.
func (r *InMemoryProductInventory) Get(_ context.Context, id int) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.products[i], nil
	}
	return models.Product{}, ErrProductNotFound
}

// Add stores product under a freshly assigned ID.
func (r *InMemoryProductInventory) Add(_ context.Context, product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = models.IntPtr(r.nextID)
	r.nextID++
	r.products = append(r.products, product)
	return product, nil
}

// Update replaces the product stored under id.
func (r *InMemoryProductInventory) Update(_ context.Context, id int, product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return models.Product{}, ErrProductNotFound
	}
	product.ID = models.IntPtr(id)
	r.products[i] = product
	return product, nil
}

// Delete removes a product from the inventory by its ID.
func (r *InMemoryProductInventory) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrProductNotFound
	}
	r.products = append(r.products[:i], r.products[i+1:]...)
	return nil
}

// Clear drops every product. IDs keep increasing afterwards.
func (r *InMemoryProductInventory) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = []models.Product{}
}

// indexOf must be called with r.mu held.
func (r *InMemoryProductInventory) indexOf(id int) int {
	for i, p := range r.products {
		if p.ID != nil && *p.ID == id {
			return i
		}
	}
	return -1
}

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rogerio-castellano/inventory-rest/internal/models"
)

const (
	productsPath = "/products"
	mediaJSON    = "application/json"
)

// ProductService talks to the /products resource.
type ProductService struct {
	*base
}

func NewProductService(baseURL string, opts ...Option) (*ProductService, error) {
	b, err := newBase(baseURL, opts...)
	if err != nil {
		return nil, err
	}
	return &ProductService{base: b}, nil
}

// ListAll returns every product known to the server, never nil.
func (s *ProductService) ListAll(ctx context.Context) ([]models.Product, error) {
	return s.list(ctx, nil)
}

// ListByTypes returns the products of any of the given types, never nil.
func (s *ProductService) ListByTypes(ctx context.Context, types ...models.ProductType) ([]models.Product, error) {
	q := url.Values{}
	for _, t := range types {
		q.Add("type", string(t))
	}
	return s.list(ctx, q)
}

func (s *ProductService) list(ctx context.Context, q url.Values) ([]models.Product, error) {
	resp, err := s.do(ctx, request{method: http.MethodGet, path: productsPath, query: q, accept: mediaJSON})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	products := []models.Product{}
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("client: decode products: %w", err)
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// Get returns the product with the given id or ErrNotFound.
func (s *ProductService) Get(ctx context.Context, id int) (models.Product, error) {
	resp, err := s.do(ctx, request{method: http.MethodGet, path: itemPath(productsPath, id), accept: mediaJSON})
	if err != nil {
		return models.Product{}, err
	}
	defer resp.Body.Close()

	var product models.Product
	if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
		return models.Product{}, fmt.Errorf("client: decode product: %w", err)
	}
	return product, nil
}

// Create stores a new product and returns the ID assigned by the server.
// The product must not carry an ID.
func (s *ProductService) Create(ctx context.Context, product models.Product) (int, error) {
	if product.ID != nil {
		return 0, fmt.Errorf("%w: new product must not have an ID", ErrBadRequest)
	}
	body, err := json.Marshal(product)
	if err != nil {
		return 0, err
	}

	header, err := s.send(ctx, request{method: http.MethodPost, path: productsPath, body: body, contentType: mediaJSON})
	if err != nil {
		return 0, err
	}
	return IDFromLocation(header.Get("Location"))
}

// Update replaces the stored product identified by product.ID.
func (s *ProductService) Update(ctx context.Context, product models.Product) error {
	if product.ID == nil {
		return fmt.Errorf("%w: product has no ID", ErrBadRequest)
	}
	body, err := json.Marshal(product)
	if err != nil {
		return err
	}

	_, err = s.send(ctx, request{method: http.MethodPut, path: itemPath(productsPath, *product.ID), body: body, contentType: mediaJSON})
	return err
}

// Delete removes the stored product identified by product.ID.
func (s *ProductService) Delete(ctx context.Context, product models.Product) error {
	if product.ID == nil {
		return fmt.Errorf("%w: product has no ID", ErrBadRequest)
	}
	_, err := s.send(ctx, request{method: http.MethodDelete, path: itemPath(productsPath, *product.ID)})
	return err
}

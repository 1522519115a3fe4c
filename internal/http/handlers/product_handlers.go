package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rogerio-castellano/inventory-rest/internal/models"
	"github.com/rogerio-castellano/inventory-rest/internal/repo"
	"go.uber.org/zap"
)

// ProductResource serves /products as JSON.
type ProductResource struct {
	inventory repo.ProductInventory
	log       *zap.Logger
}

func NewProductResource(inventory repo.ProductInventory, log *zap.Logger) *ProductResource {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProductResource{inventory: inventory, log: log}
}

// parseTypes accepts repeated and comma separated type parameters.
func parseTypes(values []string) ([]models.ProductType, error) {
	var types []models.ProductType
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			t, err := models.ParseProductType(part)
			if err != nil {
				return nil, err
			}
			types = append(types, t)
		}
	}
	return types, nil
}

// List godoc
// @Summary List products
// @Description Lists every product, or only those of the given types
// @Tags products
// @Produce json
// @Param type query []string false "Product types" collectionFormat(multi)
// @Success 200 {array} models.Product
// @Failure 400 {string} string "Unknown product type"
// @Failure 500 {string} string "Internal error"
// @Router /products [get]
func (h *ProductResource) List(w http.ResponseWriter, r *http.Request) {
	types, err := parseTypes(r.URL.Query()["type"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	products, err := h.inventory.List(r.Context(), repo.ProductFilter{Types: types})
	if err != nil {
		h.log.Error("could not list products", zap.Error(err))
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	if err := writeJSON(w, http.StatusOK, products); err != nil {
		h.log.Warn("failed to write response", zap.Error(err))
	}
}

// Get godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Product
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id} [get]
func (h *ProductResource) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	product, err := h.inventory.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		h.log.Error("could not fetch product", zap.Int("id", id), zap.Error(err))
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, product); err != nil {
		h.log.Warn("failed to write response", zap.Error(err))
	}
}

// Create godoc
// @Summary Create a new product
// @Description Adds a product to the inventory. The submitted ID must be null.
// @Tags products
// @Accept json
// @Security BearerAuth
// @Param product body models.Product true "Product to add"
// @Success 201 "Created, Location header points to the new product"
// @Failure 400 {array} ValidationError
// @Failure 500 {string} string "Internal error"
// @Router /products [post]
func (h *ProductResource) Create(w http.ResponseWriter, r *http.Request) {
	var product models.Product
	if err := readJSON(w, r, &product); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if product.ID != nil {
		http.Error(w, "product ID must not be set", http.StatusBadRequest)
		return
	}
	if errs := validateProduct(product); len(errs) > 0 {
		if err := writeJSON(w, http.StatusBadRequest, errs); err != nil {
			h.log.Warn("failed to write response", zap.Error(err))
		}
		return
	}

	created, err := h.inventory.Add(r.Context(), product)
	if err != nil {
		h.log.Error("could not create product", zap.Error(err))
		http.Error(w, "could not create product", http.StatusInternalServerError)
		return
	}

	h.log.Debug("product created", zap.Int("id", *created.ID))
	w.Header().Set("Location", locationFor(r, *created.ID))
	w.WriteHeader(http.StatusCreated)
}

// Update godoc
// @Summary Replace a product
// @Description The submitted ID must be null or equal to the path ID.
// @Tags products
// @Accept json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param product body models.Product true "Updated product"
// @Success 204 "Updated"
// @Failure 400 {array} ValidationError
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id} [put]
func (h *ProductResource) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	var product models.Product
	if err := readJSON(w, r, &product); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if product.ID != nil && *product.ID != id {
		http.Error(w, "product ID is different in request path and message body", http.StatusBadRequest)
		return
	}
	if errs := validateProduct(product); len(errs) > 0 {
		if err := writeJSON(w, http.StatusBadRequest, errs); err != nil {
			h.log.Warn("failed to write response", zap.Error(err))
		}
		return
	}

	if _, err := h.inventory.Update(r.Context(), id, product); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		h.log.Error("could not update product", zap.Int("id", id), zap.Error(err))
		http.Error(w, "could not update product", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete godoc
// @Summary Delete a product
// @Tags products
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id} [delete]
func (h *ProductResource) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}
	if err := h.inventory.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		h.log.Error("could not delete product", zap.Int("id", id), zap.Error(err))
		http.Error(w, "could not delete product", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

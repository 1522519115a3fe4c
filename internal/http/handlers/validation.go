package handlers

import (
	"github.com/rogerio-castellano/inventory-rest/internal/models"
)

// validateProduct rejects a type that is set but not one of models.ProductTypes.
// Accepted products are stored exactly as submitted, so an empty type stays empty.
func validateProduct(p models.Product) []ValidationError {
	errs := []ValidationError{}
	if p.Type != "" && !p.Type.Valid() {
		errs = append(errs, ValidationError{Field: "type", Description: "unknown product type " + string(p.Type)})
	}
	return errs
}

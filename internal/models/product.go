package models

import (
	"errors"
	"strings"
)

// ProductType classifies a product.
type ProductType string

const (
	ProductStandard   ProductType = "STANDARD"
	ProductPremium    ProductType = "PREMIUM"
	ProductSecondHand ProductType = "SECONDHAND"
)

var ErrUnknownProductType = errors.New("unknown product type")

// ProductTypes lists every known product type.
var ProductTypes = []ProductType{ProductStandard, ProductPremium, ProductSecondHand}

// Valid reports whether t is exactly one of ProductTypes.
func (t ProductType) Valid() bool {
	for _, known := range ProductTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ParseProductType converts a case-insensitive name into a ProductType.
func ParseProductType(s string) (ProductType, error) {
	t := ProductType(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range ProductTypes {
		if t == known {
			return t, nil
		}
	}
	return "", ErrUnknownProductType
}

// Product represents a product entity in the inventory system.
// ID is nil until the product has been stored.
type Product struct {
	ID   *int        `json:"id"`
	Name string      `json:"name"`
	Type ProductType `json:"type,omitempty"`
}

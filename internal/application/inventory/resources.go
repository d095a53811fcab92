// Package inventory exposes product categories, products and stock movements.
package inventory

import (
	"github.com/erp/erpapi/internal/application/resource"
	"github.com/erp/erpapi/internal/domain/shared"
)

// Module is the URL segment of the inventory API.
const Module = "inventory"

var (
	Categories = resource.Definition{
		Module: Module, Path: "categories", Name: "Category",
		Search:          []string{"name"},
		DefaultOrdering: []string{"name"},
		Unique:          []string{"name"},
	}

	Products = resource.Definition{
		Module: Module, Path: "products", Name: "Product",
		Filters:         []string{"category"},
		Search:          []string{"name", "product_code"},
		DefaultOrdering: []string{"name"},
		Unique:          []string{"product_code"},
		References:      []resource.Reference{resource.Ref("category", "inventory_category", shared.Protect)},
	}

	StockMovements = resource.Definition{
		Module: Module, Path: "stock-movements", Name: "StockMovement",
		Filters:         []string{"product", "movement_type"},
		DefaultOrdering: []string{"-created_at"},
		References:      []resource.Reference{resource.Ref("product", "inventory_product", shared.Cascade)},
	}
)

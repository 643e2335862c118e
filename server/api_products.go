package storefrontserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	productmapper "github.com/pickbotics/storefront/internal/domains/catalog/adapters/http/mapper"
	catalogports "github.com/pickbotics/storefront/internal/domains/catalog/ports"
	apierrors "github.com/pickbotics/storefront/internal/shared/errors"
)

// ProductsAPI wires HTTP transport with the catalog bounded context.
type ProductsAPI struct {
	service catalogports.Service
}

// NewProductsAPI creates a ProductsAPI backed by the provided service.
func NewProductsAPI(service catalogports.Service) ProductsAPI {
	return ProductsAPI{service: service}
}

// Get /products
// List the full catalog
func (api *ProductsAPI) GetProducts(c *gin.Context) {
	products, err := api.service.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, productmapper.FromDomainList(products))
}

// Post /products
// Add a product to the catalog
func (api *ProductsAPI) CreateProduct(c *gin.Context) {
	var payload productmapper.MutationProduct
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	saved, err := api.service.Create(c.Request.Context(), productmapper.ToDomain(payload))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, productmapper.FromDomain(saved))
}

// Put /products/:productId
// Update an existing product
func (api *ProductsAPI) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}
	var payload productmapper.MutationProduct
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	updated, err := api.service.Update(c.Request.Context(), id, productmapper.ToDomain(payload))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, productmapper.FromDomain(updated))
}

// Delete /products/:productId
// Remove a product not referenced by any order
func (api *ProductsAPI) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}
	if err := api.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// parseIDParam reads a numeric path parameter, responding 400 on garbage.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		apierrors.Respond(c, apierrors.Single(apierrors.FieldInvalid, "Invalid "+name))
		return 0, false
	}
	return id, true
}

package handlers

import (
	"log"
	"net/http"

	request "alu_portal/internal/adapter/http/dto/request"
	response "alu_portal/internal/adapter/http/dto/response"
	"alu_portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	usecase usecase.IProductUseCase
}

func NewProductHandler(uc usecase.IProductUseCase) *ProductHandler {
	return &ProductHandler{usecase: uc}
}

// ListProducts godoc
// @Summary      Catalog, ordered by SKU
// @Tags         products
// @Produce      json
// @Param        q  query  string  false  "SKU, name or category substring"
// @Success      200  {array}  response.ProductResponse
// @Router       /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.usecase.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		appErr := mapPortalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProducts(products))
}

// GetProduct godoc
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id  path  string  true  "Product id"
// @Success      200  {object}  response.ProductResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPortalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(p))
}

// QuotePrice godoc
// @Summary      Live price of a cut
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "Product id"
// @Param        body  body  request.PriceQuoteRequest  true  "Length and quantity"
// @Success      200  {object}  response.PriceQuoteResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /products/{id}/price [post]
func (h *ProductHandler) QuotePrice(c *gin.Context) {
	var payload request.PriceQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	q, err := h.usecase.QuotePrice(c.Request.Context(), c.Param("id"), payload.CustomLengthMM, payload.Quantity)
	if err != nil {
		appErr := mapPortalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPriceQuote(q))
}

// UpdateInventory godoc
// @Summary      Edit stock and unit price
// @Description  Existing cart lines and order items keep their prices.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string                          true  "Product id"
// @Param        body  body  request.UpdateInventoryRequest  true  "Fields to change"
// @Success      200  {object}  response.ProductResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /products/{id}/inventory [patch]
func (h *ProductHandler) UpdateInventory(c *gin.Context) {
	var payload request.UpdateInventoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.IsEmpty() {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	id := c.Param("id")
	p, err := h.usecase.UpdateInventory(c.Request.Context(), id, usecase.InventoryUpdate{
		StockQuantity: payload.StockQuantity,
		UnitPrice:     payload.UnitPrice,
	})
	if err != nil {
		log.Printf("[product][handler] inventory update failed product_id=%s err=%v", id, err)
		appErr := mapPortalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(p))
}

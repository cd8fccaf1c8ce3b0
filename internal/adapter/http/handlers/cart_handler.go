package handlers

import (
	"log"
	"net/http"
	"strconv"

	request "alu_portal/internal/adapter/http/dto/request"
	response "alu_portal/internal/adapter/http/dto/response"
	"alu_portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CartHandler exposes the session cart. The session is taken from the
// X-Session-ID header.
type CartHandler struct {
	usecase usecase.ICartUseCase
}

func NewCartHandler(uc usecase.ICartUseCase) *CartHandler {
	return &CartHandler{usecase: uc}
}

// GetCart godoc
// @Summary      Current cart
// @Tags         cart
// @Produce      json
// @Param        X-Session-ID  header  string  false  "Session id"
// @Success      200  {object}  response.CartResponse
// @Router       /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	view, err := h.usecase.GetCart(c.Request.Context(), c.GetHeader(HeaderSessionID))
	if err != nil {
		appErr := mapPortalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCartView(view))
}

// AddItem godoc
// @Summary      Price a cut and append it to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        X-Session-ID  header  string                      false  "Session id"
// @Param        body          body    request.AddCartItemRequest  true   "Cut to add"
// @Success      201  {object}  response.CartResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var payload request.AddCartItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	session := c.GetHeader(HeaderSessionID)
	view, err := h.usecase.AddItem(c.Request.Context(), session, usecase.AddToCartInput{
		ProductID:      payload.ProductID,
		CustomLengthMM: payload.CustomLengthMM,
		Quantity:       payload.Quantity,
	})
	if err != nil {
		log.Printf("[cart][handler] add failed session=%s product_id=%s err=%v", session, payload.ProductID, err)
		appErr := mapPortalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromCartView(view))
}

// RemoveItem godoc
// @Summary      Remove a cart line by position
// @Description  Out-of-range positions leave the cart unchanged.
// @Tags         cart
// @Produce      json
// @Param        X-Session-ID  header  string  false  "Session id"
// @Param        index         path    int     true   "Zero-based line position"
// @Success      200  {object}  response.CartResponse
// @Router       /cart/items/{index} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(errInvalidIndex.HTTPStatus, errInvalidIndex.ToHTTPError())
		return
	}

	view, err := h.usecase.RemoveItem(c.Request.Context(), c.GetHeader(HeaderSessionID), index)
	if err != nil {
		appErr := mapPortalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCartView(view))
}

// Clear godoc
// @Summary      Empty the cart
// @Tags         cart
// @Produce      json
// @Param        X-Session-ID  header  string  false  "Session id"
// @Success      200  {object}  response.CartResponse
// @Router       /cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	view, err := h.usecase.Clear(c.Request.Context(), c.GetHeader(HeaderSessionID))
	if err != nil {
		appErr := mapPortalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCartView(view))
}

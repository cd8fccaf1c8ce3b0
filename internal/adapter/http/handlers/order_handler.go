package handlers

import (
	"log"
	"net/http"
	"strconv"

	request "alu_portal/internal/adapter/http/dto/request"
	response "alu_portal/internal/adapter/http/dto/response"
	"alu_portal/internal/domain/entities"
	"alu_portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

// OrderHandler places orders from the session cart and administers them.
type OrderHandler struct {
	orders usecase.IOrderUseCase
	status usecase.IOrderStatusUseCase
}

func NewOrderHandler(orders usecase.IOrderUseCase, status usecase.IOrderStatusUseCase) *OrderHandler {
	return &OrderHandler{orders: orders, status: status}
}

// PlaceOrder godoc
// @Summary      Place an order from the session cart
// @Description  The cart is cleared only when the header and every item were stored.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        X-Session-ID  header  string                     false  "Session id"
// @Param        body          body    request.PlaceOrderRequest  false  "Customer"
// @Success      201  {object}  response.PlaceOrderResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /orders [post]
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var payload request.PlaceOrderRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
			return
		}
	}

	session := c.GetHeader(HeaderSessionID)
	res, err := h.orders.PlaceOrder(c.Request.Context(), session, payload.CustomerName)
	if err != nil {
		log.Printf("[order][handler] place failed session=%s err=%v", session, err)
		appErr := mapPortalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[order][handler] placed session=%s order_id=%s ref=%s", session, res.Order.ID, res.Order.RefNumber)
	setETag(c, res.Order)
	c.JSON(http.StatusCreated, response.FromPlaceOrderResult(res))
}

// ListOrders godoc
// @Summary      List orders, newest first
// @Tags         orders
// @Produce      json
// @Param        q         query  string  false  "Ref number or customer substring"
// @Param        status    query  string  false  "all|pending|processing|delivered|cancelled"
// @Param        customer  query  string  false  "Exact customer name (order history)"
// @Success      200  {array}  response.OrderResponse
// @Router       /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.status.ListOrders(c.Request.Context(), usecase.OrderFilter{
		Query:    c.Query("q"),
		Status:   c.Query("status"),
		Customer: c.Query("customer"),
	})
	if err != nil {
		appErr := mapPortalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// GetOrder godoc
// @Summary      Get an order with its items
// @Tags         orders
// @Produce      json
// @Param        id  path  string  true  "Order id"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	o, err := h.orders.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPortalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	setETag(c, o)
	c.JSON(http.StatusOK, response.FromOrder(o))
}

// Metrics godoc
// @Summary      Dashboard aggregates
// @Tags         orders
// @Produce      json
// @Success      200  {object}  response.DashboardResponse
// @Router       /orders/metrics [get]
func (h *OrderHandler) Metrics(c *gin.Context) {
	m, err := h.status.Metrics(c.Request.Context())
	if err != nil {
		appErr := mapPortalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(m))
}

// UpdateStatus godoc
// @Summary      Change an order status
// @Description  The change is applied immediately and stored in the background (202).
// @Description  With wait=true the response is sent once the store confirmed it (200).
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id        path    string                            true   "Order id"
// @Param        If-Match  header  string                            false  "Expected order version"
// @Param        wait      query   bool                              false  "Wait for the durable write"
// @Param        body      body    request.UpdateOrderStatusRequest  true   "New status"
// @Success      200  {object}  response.OrderStatusResponse
// @Success      202  {object}  response.OrderStatusResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	expected, err := payload.ResolveExpectedVersion(c.GetHeader(HeaderIfMatch))
	if err != nil {
		c.JSON(errInvalidVersion.HTTPStatus, errInvalidVersion.ToHTTPError())
		return
	}

	orderID := c.Param("id")
	optimistic, write, err := h.status.UpdateStatus(c.Request.Context(), orderID, entities.OrderStatus(payload.Status), expected)
	if err != nil {
		log.Printf("[order-status][handler] update rejected order_id=%s status=%s err=%v", orderID, payload.Status, err)
		appErr := mapPortalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	wait, _ := strconv.ParseBool(c.Query("wait"))
	if !wait {
		c.JSON(http.StatusAccepted, response.OrderStatusResponse{Order: response.FromOrder(optimistic), WritePending: true})
		return
	}

	if err := write.Wait(c.Request.Context()); err != nil {
		log.Printf("[order-status][handler] durable write failed order_id=%s err=%v", orderID, err)
		appErr := mapPortalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	confirmed, err := h.orders.GetByID(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[order-status][handler] reload after write failed order_id=%s err=%v", orderID, err)
		confirmed = optimistic
	}
	setETag(c, confirmed)
	c.JSON(http.StatusOK, response.OrderStatusResponse{Order: response.FromOrder(confirmed)})
}

func setETag(c *gin.Context, o entities.Order) {
	if o.Version > 0 {
		c.Header(HeaderETag, strconv.Quote(strconv.FormatInt(o.Version, 10)))
	}
}

package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"alu_portal/internal/domain/documents"
	"alu_portal/internal/infrastructure/render"
	"alu_portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

const formatText = "txt"

// DocumentHandler serves generated documents as JSON or as a text attachment.
type DocumentHandler struct {
	usecase usecase.IDocumentUseCase
}

func NewDocumentHandler(uc usecase.IDocumentUseCase) *DocumentHandler {
	return &DocumentHandler{usecase: uc}
}

// Quotation godoc
// @Summary      Quotation for the session cart
// @Tags         documents
// @Produce      json
// @Produce      plain
// @Param        X-Session-ID  header  string  false  "Session id"
// @Param        customer      query   string  false  "Bill-to name"
// @Param        format        query   string  false  "txt for a text attachment"
// @Success      200  {object}  documents.Document
// @Router       /cart/quotation [get]
func (h *DocumentHandler) Quotation(c *gin.Context) {
	doc, err := h.usecase.Quotation(c.Request.Context(), c.GetHeader(HeaderSessionID), c.Query("customer"))
	h.respond(c, doc, err)
}

// Receipt godoc
// @Summary      Receipt / tax invoice for an order
// @Tags         documents
// @Produce      json
// @Produce      plain
// @Param        id      path   string  true   "Order id"
// @Param        format  query  string  false  "txt for a text attachment"
// @Success      200  {object}  documents.Document
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{id}/receipt [get]
func (h *DocumentHandler) Receipt(c *gin.Context) {
	doc, err := h.usecase.Receipt(c.Request.Context(), c.Param("id"))
	h.respond(c, doc, err)
}

// DeliveryNote godoc
// @Summary      Delivery note for an order
// @Tags         documents
// @Produce      json
// @Produce      plain
// @Param        id      path   string  true   "Order id"
// @Param        format  query  string  false  "txt for a text attachment"
// @Success      200  {object}  documents.Document
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{id}/delivery-note [get]
func (h *DocumentHandler) DeliveryNote(c *gin.Context) {
	doc, err := h.usecase.DeliveryNote(c.Request.Context(), c.Param("id"))
	h.respond(c, doc, err)
}

func (h *DocumentHandler) respond(c *gin.Context, doc documents.Document, err error) {
	if err != nil {
		appErr := mapPortalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if c.Query("format") != formatText {
		c.JSON(http.StatusOK, doc)
		return
	}

	var buf bytes.Buffer
	if err := render.Text(&buf, doc); err != nil {
		appErr := mapPortalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", render.TextFilename(doc)))
	c.Data(http.StatusOK, render.ContentTypeText, buf.Bytes())
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/qdryclean/qadmin/internal/domain/errors"
	"github.com/qdryclean/qadmin/internal/server/http/dto"
)

// OrderHandler exposes the order list controller over the shell routes.
// Fetch failures other than session expiry do not fail the response: the
// controller keeps the previous page visible and reports the error inside
// the snapshot.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler creates OrderHandler instance.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// List handles GET /orders.
func (h *OrderHandler) List(c *gin.Context) {
	h.respond(c, h.facade.EnsureOrdersLoaded(c.Request.Context()))
}

// Draft handles POST /orders/draft.
func (h *OrderHandler) Draft(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid input"})
		return
	}
	h.facade.SetDraftSearch(req.Search)
	h.respond(c, nil)
}

// Search handles POST /orders/search.
func (h *OrderHandler) Search(c *gin.Context) {
	h.respond(c, h.facade.ApplyOrderSearch(c.Request.Context()))
}

// Page handles POST /orders/page.
func (h *OrderHandler) Page(c *gin.Context) {
	var req dto.PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid input"})
		return
	}
	h.respond(c, h.facade.GoToOrderPage(c.Request.Context(), req.Page))
}

// Refresh handles POST /orders/refresh.
func (h *OrderHandler) Refresh(c *gin.Context) {
	h.respond(c, h.facade.RefreshOrders(c.Request.Context()))
}

// OpenForm handles POST /orders/form/open.
func (h *OrderHandler) OpenForm(c *gin.Context) {
	h.facade.OpenOrderForm()
	h.respond(c, nil)
}

// CloseForm handles POST /orders/form/close.
func (h *OrderHandler) CloseForm(c *gin.Context) {
	h.facade.CloseOrderForm()
	h.respond(c, nil)
}

// Create handles POST /orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.OrderFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid input"})
		return
	}
	h.respond(c, h.facade.CreateOrder(c.Request.Context(), req.Draft()))
}

func (h *OrderHandler) respond(c *gin.Context, err error) {
	if errors.Is(err, domainErrors.ErrSessionExpired) {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	c.JSON(http.StatusOK, h.facade.OrdersView())
}

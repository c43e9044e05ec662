package api

import (
	"net/http"

	"seckill-service/internal/domain/order"
	resdto "seckill-service/internal/handler/dto/response"
	"seckill-service/internal/handler/httperr"
	"seckill-service/internal/handler/middleware"
	"seckill-service/internal/pkg/errs"
	"seckill-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	q queries.OrderQueries
}

func NewOrderHandler(q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{q: q}
}

// @Summary Get order
// @Description Get a persisted voucher order. Orders still queued return 404.
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user"), "Unauthorized", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)

	id, err := order.ParseID(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order id", nil)
		return
	}

	view, err := h.q.GetOrder(c.Request.Context(), id, actorID, role)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrOrderNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
		case errs.Is(err, queries.ErrOrderAccess):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Forbidden", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load order", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

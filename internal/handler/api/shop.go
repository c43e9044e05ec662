package api

import (
	"net/http"

	reqdto "seckill-service/internal/handler/dto/request"
	resdto "seckill-service/internal/handler/dto/response"
	"seckill-service/internal/handler/httperr"
	"seckill-service/internal/pkg/errs"
	"seckill-service/internal/usecase/commands"
	"seckill-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ShopHandler struct {
	cmds commands.ShopCommands
	q    queries.ShopQueries
}

func NewShopHandler(cmds commands.ShopCommands, q queries.ShopQueries) *ShopHandler {
	return &ShopHandler{cmds: cmds, q: q}
}

// @Summary Get shop
// @Description Get a shop through the cache
// @Tags shops
// @Produce json
// @Param id path int true "Shop ID"
// @Success 200 {object} resdto.ShopResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/shops/{id} [get]
func (h *ShopHandler) Get(c *gin.Context) {
	id, err := parseInt64Param(c, "id")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid shop id", nil)
		return
	}
	view, err := h.q.GetShop(c.Request.Context(), id)
	if err != nil {
		abortShopError(c, err, "Failed to load shop")
		return
	}
	c.JSON(http.StatusOK, resdto.FromShopView(view))
}

// @Summary Update shop
// @Description Update a shop and drop its cached copy
// @Tags shops
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Shop ID"
// @Param request body reqdto.UpdateShopRequest true "Update shop request"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/shops/{id} [put]
func (h *ShopHandler) Update(c *gin.Context) {
	id, err := parseInt64Param(c, "id")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid shop id", nil)
		return
	}
	var req reqdto.UpdateShopRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	if err := h.cmds.UpdateShop(c.Request.Context(), req.ToCommand(id)); err != nil {
		abortShopError(c, err, "Update failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Warm shop cache
// @Description Load a shop into the cache ahead of expected traffic
// @Tags shops
// @Security BearerAuth
// @Param id path int true "Shop ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/shops/{id}/warm [post]
func (h *ShopHandler) Warm(c *gin.Context) {
	id, err := parseInt64Param(c, "id")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid shop id", nil)
		return
	}
	if err := h.cmds.WarmShop(c.Request.Context(), id); err != nil {
		abortShopError(c, err, "Warm failed")
		return
	}
	c.Status(http.StatusNoContent)
}

func abortShopError(c *gin.Context, err error, fallback string) {
	switch {
	case errs.Is(err, queries.ErrShopNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Shop not found", nil)
	case errs.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid shop", nil)
	case errs.Is(err, errs.ErrStoreUnavailable):
		httperr.AbortWithRetry(c, http.StatusServiceUnavailable, err, "Service temporarily unavailable", retryAfter, nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, fallback, nil)
	}
}

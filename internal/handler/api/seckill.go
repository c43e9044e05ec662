package api

import (
	"net/http"
	"strconv"
	"time"

	"seckill-service/internal/domain/voucher"
	reqdto "seckill-service/internal/handler/dto/request"
	resdto "seckill-service/internal/handler/dto/response"
	"seckill-service/internal/handler/httperr"
	"seckill-service/internal/handler/middleware"
	"seckill-service/internal/pkg/errs"
	"seckill-service/internal/usecase/commands"
	"seckill-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errAdmissionRejected = errs.New("admission rejected")

// Retry-After hint for 503 answers
const retryAfter = time.Second

type SeckillHandler struct {
	seckill  commands.SeckillCommands
	vouchers commands.VoucherCommands
	q        queries.VoucherQueries
}

func NewSeckillHandler(seckill commands.SeckillCommands, vouchers commands.VoucherCommands, q queries.VoucherQueries) *SeckillHandler {
	return &SeckillHandler{seckill: seckill, vouchers: vouchers, q: q}
}

// @Summary Purchase seckill voucher
// @Description Admit the caller to a flash sale and queue the order for persistence
// @Tags seckill
// @Produce json
// @Security BearerAuth
// @Param id path int true "Voucher ID"
// @Success 202 {object} resdto.AdmissionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/seckill/vouchers/{id}/orders [post]
func (h *SeckillHandler) Purchase(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user"), "Unauthorized", nil)
		return
	}
	voucherID, err := parseInt64Param(c, "id")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid voucher id", nil)
		return
	}

	result, err := h.seckill.AdmitAndEnqueue(c.Request.Context(), voucherID, userID)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrVoucherNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Voucher not found", nil)
		case errs.Is(err, commands.ErrInvalidAdmission):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		case errs.Is(err, commands.ErrQueueFull), errs.Is(err, commands.ErrQueueClosed):
			httperr.AbortWithRetry(c, http.StatusServiceUnavailable, err, "Too many orders, try again later", retryAfter, nil)
		case errs.Is(err, errs.ErrStoreUnavailable):
			httperr.AbortWithRetry(c, http.StatusServiceUnavailable, err, "Service temporarily unavailable", retryAfter, nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Purchase failed", nil)
		}
		return
	}

	if !result.Admitted() {
		status, msg := rejectionStatus(result.Rejection)
		httperr.AbortWithError(c, status, errAdmissionRejected, msg, resdto.RejectionDetail{Reason: result.Rejection.String()})
		return
	}

	c.JSON(http.StatusAccepted, resdto.FromAdmission(result.OrderID))
}

// @Summary Publish seckill voucher
// @Description Create a flash-sale voucher and load its stock into the admission gate
// @Tags seckill
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PublishVoucherRequest true "Publish voucher request"
// @Success 201 {object} resdto.PublishVoucherResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/seckill/vouchers [post]
func (h *SeckillHandler) Publish(c *gin.Context) {
	var req reqdto.PublishVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.vouchers.PublishSeckillVoucher(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid voucher", nil)
		case errs.Is(err, commands.ErrVoucherShopNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Shop not found", nil)
		case errs.Is(err, errs.ErrStoreUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Voucher saved but not loaded for sale", resdto.PublishVoucherResponse{ID: id})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Publish failed", nil)
		}
		return
	}

	c.Header("Location", "/api/seckill/vouchers/"+strconv.FormatInt(id, 10))
	c.JSON(http.StatusCreated, resdto.PublishVoucherResponse{ID: id})
}

// @Summary Preload seckill voucher
// @Description Load a stored voucher into the admission gate if it is not loaded yet. Safe to repeat.
// @Tags seckill
// @Produce json
// @Security BearerAuth
// @Param id path int true "Voucher ID"
// @Success 200 {object} resdto.PreloadVoucherResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/seckill/vouchers/{id}/preload [post]
func (h *SeckillHandler) Preload(c *gin.Context) {
	id, err := parseInt64Param(c, "id")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid voucher id", nil)
		return
	}

	loaded, err := h.vouchers.PreloadVoucher(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrVoucherNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Voucher not found", nil)
		case errs.Is(err, errs.ErrStoreUnavailable):
			httperr.AbortWithRetry(c, http.StatusServiceUnavailable, err, "Service temporarily unavailable", retryAfter, nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Preload failed", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.PreloadVoucherResponse{ID: id, Loaded: loaded})
}

// @Summary Get seckill voucher
// @Description Get a flash-sale voucher with its current sale state
// @Tags seckill
// @Produce json
// @Param id path int true "Voucher ID"
// @Success 200 {object} resdto.VoucherResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/seckill/vouchers/{id} [get]
func (h *SeckillHandler) GetVoucher(c *gin.Context) {
	id, err := parseInt64Param(c, "id")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid voucher id", nil)
		return
	}
	view, err := h.q.GetVoucher(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, queries.ErrVoucherNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Voucher not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load voucher", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVoucherView(view))
}

func rejectionStatus(r voucher.Rejection) (int, string) {
	switch r {
	case voucher.RejectionWindowClosed:
		return http.StatusBadRequest, "Sale is not open"
	case voucher.RejectionDuplicateOrder:
		return http.StatusConflict, "Already purchased"
	default:
		return http.StatusConflict, "Sold out"
	}
}

var errInvalidID = errs.New("id must be a positive integer")

func parseInt64Param(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

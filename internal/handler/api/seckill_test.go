//go:build unit

package api_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"seckill-service/internal/domain/auth"
	"seckill-service/internal/domain/order"
	"seckill-service/internal/domain/voucher"
	"seckill-service/internal/handler/api"
	resdto "seckill-service/internal/handler/dto/response"
	"seckill-service/internal/pkg/errs"
	"seckill-service/internal/usecase/commands"
	"seckill-service/internal/usecase/queries"
	"seckill-service/tests/common/builder"
	"seckill-service/tests/common/httptest"
	"seckill-service/tests/common/testutil"
	commandsmock "seckill-service/tests/mock/commands"
	queriesmock "seckill-service/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SeckillHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockSeckill  *commandsmock.MockSeckillCommands
	mockVouchers *commandsmock.MockVoucherCommands
	mockQueries  *queriesmock.MockVoucherQueries
	userID       uuid.UUID
	handler      *api.SeckillHandler
}

func (s *SeckillHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockSeckill = commandsmock.NewMockSeckillCommands(s.mockCtrl)
	s.mockVouchers = commandsmock.NewMockVoucherCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockVoucherQueries(s.mockCtrl)
	s.handler = api.NewSeckillHandler(s.mockSeckill, s.mockVouchers, s.mockQueries)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", auth.RoleAdmin)
		c.Next()
	}

	s.router.POST("/api/seckill/vouchers", authMiddleware, s.handler.Publish)
	s.router.GET("/api/seckill/vouchers/:id", s.handler.GetVoucher)
	s.router.POST("/api/seckill/vouchers/:id/orders", authMiddleware, s.handler.Purchase)
	s.router.POST("/api/seckill/vouchers/:id/preload", authMiddleware, s.handler.Preload)
}

func (s *SeckillHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSeckillHandlerSuite(t *testing.T) {
	suite.Run(t, new(SeckillHandlerTestSuite))
}

type testCaseSeckill struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestPurchase
// ================================================================================

func (s *SeckillHandlerTestSuite) TestPurchase() {
	url := "/api/seckill/vouchers/7/orders"

	s.Run("success: returns 202 Accepted with the order id as a string", func() {
		s.mockSeckill.EXPECT().AdmitAndEnqueue(gomock.Any(), int64(7), s.userID).
			Return(&commands.AdmissionResult{OrderID: order.ID(1<<63 + 1)}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body resdto.AdmissionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusAccepted, &body)
		s.Equal("9223372036854775809", body.OrderID)
		s.Equal("queued", body.Status)
	})

	rejections := []struct {
		rejection  voucher.Rejection
		expectCode int
		expectMsg  string
	}{
		{voucher.RejectionStockInsufficient, http.StatusConflict, "Sold out"},
		{voucher.RejectionDuplicateOrder, http.StatusConflict, "Already purchased"},
		{voucher.RejectionWindowClosed, http.StatusBadRequest, "Sale is not open"},
	}
	for _, tc := range rejections {
		s.Run("rejection: "+tc.rejection.String(), func() {
			s.mockSeckill.EXPECT().AdmitAndEnqueue(gomock.Any(), int64(7), s.userID).
				Return(&commands.AdmissionResult{Rejection: tc.rejection}, nil)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			httptest.AssertRejection(s.T(), rec, tc.expectCode, tc.rejection.String())
		})
	}

	errorCases := []struct {
		name       string
		err        error
		expectCode int
	}{
		{"unknown voucher", commands.ErrVoucherNotFound, http.StatusNotFound},
		{"queue full", errs.Wrap(commands.ErrQueueFull, "enqueue order"), http.StatusServiceUnavailable},
		{"queue closed", commands.ErrQueueClosed, http.StatusServiceUnavailable},
		{"store down", errs.Mark(errors.New("dial tcp"), errs.ErrStoreUnavailable), http.StatusServiceUnavailable},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range errorCases {
		s.Run("error: "+tc.name, func() {
			s.mockSeckill.EXPECT().AdmitAndEnqueue(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			if tc.expectCode == http.StatusServiceUnavailable {
				httptest.AssertHeaders(s.T(), rec, map[string]string{"Retry-After": "1"})
			}
		})
	}

	s.Run("error: 400 Bad Request for a malformed voucher id", func() {
		for _, id := range []string{"0", "-1", "abc"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/seckill/vouchers/"+id+"/orders", nil, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid voucher id")
		}
	})

	s.Run("error: 401 Unauthorized without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestPublish
// ================================================================================

func (s *SeckillHandlerTestSuite) TestPublish() {
	url := "/api/seckill/vouchers"
	b := builder.NewVoucherBuilder()
	reqBody := b.BuildPublishRequestDTO()

	bound := []testCaseSeckill{
		{name: "stock boundary OK (1)", mutate: testutil.Field("stock", 1), expectCode: http.StatusCreated},
		{name: "stock boundary invalid (0)", mutate: testutil.Field("stock", 0), expectCode: http.StatusBadRequest},
		{name: "stock boundary OK (2147483647)", mutate: testutil.Field("stock", 2147483647), expectCode: http.StatusCreated},
		{name: "stock boundary invalid (2147483648)", mutate: testutil.Field("stock", 2147483648), expectCode: http.StatusBadRequest},
		{name: "title length OK (255 chars)", mutate: testutil.Field("title", strings.Repeat("a", 255)), expectCode: http.StatusCreated},
		{name: "title length invalid (256 chars)", mutate: testutil.Field("title", strings.Repeat("a", 256)), expectCode: http.StatusBadRequest},
		{name: "window ends when it begins", mutate: testutil.Field("end_at", b.BeginAt.Format(time.RFC3339)), expectCode: http.StatusBadRequest},
		{name: "shop id invalid (0)", mutate: testutil.Field("shop_id", 0), expectCode: http.StatusBadRequest},
	}

	missing := []testCaseSeckill{
		{name: "missing field: shop_id (required)", mutate: testutil.Field("shop_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: title (required)", mutate: testutil.Field("title", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: stock (required)", mutate: testutil.Field("stock", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: begin_at (required)", mutate: testutil.Field("begin_at", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: end_at (required)", mutate: testutil.Field("end_at", nil), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 Created with Location", func() {
		s.mockVouchers.EXPECT().PublishSeckillVoucher(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.PublishVoucherRequest) (int64, error) {
				s.Equal(reqBody.Stock, req.Stock)
				s.True(reqBody.BeginAt.Equal(req.BeginAt))
				return 12, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.PublishVoucherResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(int64(12), body.ID)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/seckill/vouchers/12"})
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, group := range [][]testCaseSeckill{bound, missing} {
			for _, tc := range group {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
					if tc.expectCode == http.StatusCreated {
						s.mockVouchers.EXPECT().PublishSeckillVoucher(gomock.Any(), gomock.Any()).Return(int64(1), nil)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
					s.Equal(tc.expectCode, rec.Code, rec.Body.String())
				})
			}
		}
	})

	errorCases := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{"domain validation", errs.Mark(voucher.ErrInvalidWindow, errs.ErrDomainValidation), http.StatusBadRequest, "Invalid voucher"},
		{"unknown shop", commands.ErrVoucherShopNotFound, http.StatusNotFound, "Shop not found"},
		{"gate preload failed", errs.Mark(errors.New("redis down"), errs.ErrStoreUnavailable), http.StatusServiceUnavailable, "not loaded for sale"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "Publish failed"},
	}
	for _, tc := range errorCases {
		s.Run("error: "+tc.name, func() {
			s.mockVouchers.EXPECT().PublishSeckillVoucher(gomock.Any(), gomock.Any()).Return(int64(0), tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
		})
	}
}

// ================================================================================
// TestPreload
// ================================================================================

func (s *SeckillHandlerTestSuite) TestPreload() {
	url := "/api/seckill/vouchers/7/preload"

	for _, loaded := range []bool{true, false} {
		s.Run(fmt.Sprintf("success: returns 200 with loaded=%t", loaded), func() {
			s.mockVouchers.EXPECT().PreloadVoucher(gomock.Any(), int64(7)).Return(loaded, nil)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

			var body resdto.PreloadVoucherResponse
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
			s.Equal(int64(7), body.ID)
			s.Equal(loaded, body.Loaded)
		})
	}

	errorCases := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{"unknown voucher", commands.ErrVoucherNotFound, http.StatusNotFound, "Voucher not found"},
		{"gate down", errs.Mark(errors.New("redis down"), errs.ErrStoreUnavailable), http.StatusServiceUnavailable, "temporarily unavailable"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "Preload failed"},
	}
	for _, tc := range errorCases {
		s.Run("error: "+tc.name, func() {
			s.mockVouchers.EXPECT().PreloadVoucher(gomock.Any(), int64(7)).Return(false, tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
		})
	}

	s.Run("error: 400 Bad Request for a malformed voucher id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/seckill/vouchers/abc/preload", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid voucher id")
	})
}

// ================================================================================
// TestGetVoucher
// ================================================================================

func (s *SeckillHandlerTestSuite) TestGetVoucher() {
	b := builder.NewVoucherBuilder()

	s.Run("success: returns 200 with state and unix timestamps", func() {
		s.mockQueries.EXPECT().GetVoucher(gomock.Any(), int64(1)).Return(b.BuildView(voucher.StateOpen), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/seckill/vouchers/1", nil, "")

		var body resdto.VoucherResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("open", body.State)
		s.Equal(b.BeginAt.Unix(), body.BeginAt)
		s.Equal(b.EndAt.Unix(), body.EndAt)
	})

	s.Run("error: 404 Not Found", func() {
		s.mockQueries.EXPECT().GetVoucher(gomock.Any(), int64(2)).Return(nil, queries.ErrVoucherNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/seckill/vouchers/2", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Voucher not found")
	})
}

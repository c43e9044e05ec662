//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"seckill-service/internal/domain/auth"
	"seckill-service/internal/domain/order"
	"seckill-service/internal/handler/api"
	resdto "seckill-service/internal/handler/dto/response"
	"seckill-service/internal/usecase/queries"
	"seckill-service/tests/common/httptest"
	queriesmock "seckill-service/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockOrderQueries
	userID      uuid.UUID
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.userID = uuid.New()
	handler := api.NewOrderHandler(s.mockQueries)

	authMiddleware := func(c *gin.Context) {
		c.Set("user_id", s.userID)
		c.Set("user_role", auth.RoleCustomer)
		c.Next()
	}
	s.router.GET("/api/orders/:id", authMiddleware, handler.Get)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) TestGet() {
	s.Run("success: returns the order with string id", func() {
		view := &queries.OrderView{ID: 1<<40 + 3, UserID: s.userID, VoucherID: 7, CreatedAt: time.Unix(1731283200, 0)}
		s.mockQueries.EXPECT().GetOrder(gomock.Any(), order.ID(1<<40+3), s.userID, auth.RoleCustomer).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/orders/1099511627779", nil, "")

		var body resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("1099511627779", body.ID)
		s.Equal(s.userID.String(), body.UserID)
		s.Equal(int64(1731283200), body.CreatedAt)
	})

	errorCases := []struct {
		name       string
		err        error
		expectCode int
	}{
		{"not persisted yet", queries.ErrOrderNotFound, http.StatusNotFound},
		{"someone else's order", queries.ErrOrderAccess, http.StatusForbidden},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range errorCases {
		s.Run("error: "+tc.name, func() {
			s.mockQueries.EXPECT().GetOrder(gomock.Any(), order.ID(5), s.userID, auth.RoleCustomer).Return(nil, tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/orders/5", nil, "")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
		})
	}

	s.Run("error: 400 Bad Request for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/orders/0", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid order id")
	})
}

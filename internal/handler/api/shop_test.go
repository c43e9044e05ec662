//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"seckill-service/internal/domain/auth"
	"seckill-service/internal/domain/shop"
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

type ShopHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockShopCommands
	mockQueries  *queriesmock.MockShopQueries
	handler      *api.ShopHandler
}

func (s *ShopHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockShopCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockShopQueries(s.mockCtrl)
	s.handler = api.NewShopHandler(s.mockCommands, s.mockQueries)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", auth.RoleAdmin)
		c.Next()
	}

	s.router.GET("/api/shops/:id", s.handler.Get)
	s.router.PUT("/api/shops/:id", authMiddleware, s.handler.Update)
	s.router.POST("/api/shops/:id/warm", authMiddleware, s.handler.Warm)
}

func (s *ShopHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestShopHandlerSuite(t *testing.T) {
	suite.Run(t, new(ShopHandlerTestSuite))
}

func (s *ShopHandlerTestSuite) TestGet() {
	view := builder.NewShopBuilder().BuildView()

	s.Run("success: returns 200 with score on a five point scale", func() {
		s.mockQueries.EXPECT().GetShop(gomock.Any(), int64(1)).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/shops/1", nil, "")

		var body resdto.ShopResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.Name, body.Name)
		s.InDelta(4.5, body.Score, 0.0001)
		s.Equal(view.UpdatedAt.Unix(), body.UpdatedAt)
	})

	errorCases := []struct {
		name       string
		err        error
		expectCode int
	}{
		{"not found", queries.ErrShopNotFound, http.StatusNotFound},
		{"store down", errs.Mark(errors.New("redis down"), errs.ErrStoreUnavailable), http.StatusServiceUnavailable},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range errorCases {
		s.Run("error: "+tc.name, func() {
			s.mockQueries.EXPECT().GetShop(gomock.Any(), int64(1)).Return(nil, tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/shops/1", nil, "")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
		})
	}

	s.Run("error: 400 Bad Request for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/shops/x", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid shop id")
	})
}

func (s *ShopHandlerTestSuite) TestUpdate() {
	url := "/api/shops/1"
	reqBody := builder.NewShopBuilder().BuildUpdateRequestDTO()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().UpdateShop(gomock.Any(), builder.NewShopBuilder().BuildUpdateCommand()).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	validation := []struct {
		name   string
		mutate func(m map[string]any)
	}{
		{"missing name", testutil.Field("name", nil)},
		{"score above 50", testutil.Field("score", 51)},
		{"negative price", testutil.Field("avg_price", -1)},
	}
	for _, tc := range validation {
		s.Run("error: 400 Bad Request for "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "bearer-token")
			s.Equal(http.StatusBadRequest, rec.Code)
		})
	}

	s.Run("error: 404 Not Found", func() {
		s.mockCommands.EXPECT().UpdateShop(gomock.Any(), gomock.Any()).Return(commands.ErrShopNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Shop not found")
	})

	s.Run("error: 400 Bad Request on domain validation", func() {
		s.mockCommands.EXPECT().UpdateShop(gomock.Any(), gomock.Any()).Return(errs.Mark(shop.ErrEmptyName, errs.ErrDomainValidation))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid shop")
	})

	s.Run("error: 401 Unauthorized without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *ShopHandlerTestSuite) TestWarm() {
	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().WarmShop(gomock.Any(), int64(3)).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/shops/3/warm", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found", func() {
		s.mockCommands.EXPECT().WarmShop(gomock.Any(), int64(4)).Return(commands.ErrShopNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/shops/4/warm", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Shop not found")
	})
}

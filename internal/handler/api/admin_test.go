//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"seat-hold-ticketing/internal/domain/payment"
	"seat-hold-ticketing/internal/handler/api"
	reqdto "seat-hold-ticketing/internal/handler/dto/request"
	resdto "seat-hold-ticketing/internal/handler/dto/response"
	"seat-hold-ticketing/internal/handler/middleware"
	"seat-hold-ticketing/internal/pkg/errs"
	"seat-hold-ticketing/internal/usecase/commands"
	"seat-hold-ticketing/tests/common/httptest"
	"seat-hold-ticketing/tests/common/testutil"
	commandsmock "seat-hold-ticketing/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockSweep    *commandsmock.MockSweepCommands
	mockPayments *commandsmock.MockPaymentCommands
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockSweep = commandsmock.NewMockSweepCommands(s.mockCtrl)
	s.mockPayments = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	h := api.NewAdminHandler(s.mockSweep, s.mockPayments)

	s.router.POST("/admin/holds/sweep-expired", h.SweepExpired)
	s.router.POST("/admin/payments", h.DecidePayment)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

var sweptAt = time.Date(2025, 6, 1, 12, 1, 30, 0, time.UTC)

func (s *AdminHandlerTestSuite) TestSweepExpired() {
	s.Run("success: returns the sweep counts", func() {
		s.mockSweep.EXPECT().SweepExpired(gomock.Any()).Return(&commands.SweepResult{
			ReclaimedCount: 3,
			GroupsDeleted:  2,
			PendingKeys:    1,
			SweptAt:        sweptAt,
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/holds/sweep-expired", nil, "admin-token")

		var body resdto.SweepResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(resdto.SweepResponse{ReclaimedCount: 3, GroupsDeleted: 2, PendingKeys: 1, SweptAt: sweptAt}, body)
	})

	s.Run("error: 500 when the sweep fails", func() {
		s.mockSweep.EXPECT().SweepExpired(gomock.Any()).Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/holds/sweep-expired", nil, "admin-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusInternalServerError, "INTERNAL_ERROR")
	})
}

func (s *AdminHandlerTestSuite) TestDecidePayment() {
	url := "/admin/payments"
	reqBody := reqdto.DecidePaymentRequest{PaymentTxID: "P-1", UserID: 7, Amount: 1000, Status: "APPROVED"}
	wantCmd := commands.DecidePaymentRequest{PaymentTxID: "P-1", UserID: 7, Amount: 1000, Status: payment.StatusApproved}
	tx := payment.Tx{ID: "P-1", UserID: 7, Amount: 1000, Status: payment.StatusApproved, DecidedAt: sweptAt}

	s.Run("success: returns 201 Created for a new decision", func() {
		s.mockPayments.EXPECT().Decide(gomock.Any(), wantCmd).Return(&commands.DecidePaymentResult{Tx: tx}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "admin-token")

		var body resdto.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(resdto.PaymentResponse{PaymentTxID: "P-1", UserID: 7, Amount: 1000, Status: "APPROVED", DecidedAt: sweptAt}, body)
	})

	s.Run("success: same decision returns 200 with the replay header", func() {
		s.mockPayments.EXPECT().Decide(gomock.Any(), wantCmd).Return(&commands.DecidePaymentResult{Tx: tx, Replayed: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "admin-token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Idempotent-Replayed": "true"})
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{"missing field: paymentTxId (required)", testutil.Field("paymentTxId", nil)},
			{"paymentTxId too long (65 chars)", testutil.Field("paymentTxId", strings.Repeat("p", 65))},
			{"missing field: userId (required)", testutil.Field("userId", nil)},
			{"userId not positive", testutil.Field("userId", -3)},
			{"negative amount", testutil.Field("amount", -1)},
			{"unknown status", testutil.Field("status", "PENDING")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.BodyMap(s.T(), reqBody, tc.mutate), "admin-token")
				httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "VALIDATION_FAILED")
			})
		}
	})

	s.Run("error: 409 when a different decision was recorded", func() {
		s.mockPayments.EXPECT().Decide(gomock.Any(), wantCmd).Return(nil, errs.ErrPaymentIdempotencyConflict).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "admin-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "PAYMENT_IDEMPOTENCY_CONFLICT")
	})
}

package api

import (
	"net/http"

	reqdto "seat-hold-ticketing/internal/handler/dto/request"
	resdto "seat-hold-ticketing/internal/handler/dto/response"
	"seat-hold-ticketing/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	sweep    commands.SweepCommands
	payments commands.PaymentCommands
}

func NewAdminHandler(sweep commands.SweepCommands, payments commands.PaymentCommands) *AdminHandler {
	return &AdminHandler{sweep: sweep, payments: payments}
}

// @Summary Sweep expired holds
// @Description Delete expired hold rows and the groups they leave empty
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SweepResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/holds/sweep-expired [post]
func (h *AdminHandler) SweepExpired(c *gin.Context) {
	result, err := h.sweep.SweepExpired(c.Request.Context())
	if err != nil {
		writeBusinessError(c, err)
		return
	}
	res, err := resdto.FromSweepResult(result)
	if err != nil {
		writeBusinessError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Record payment decision
// @Description Record the decision of the payment gateway for a payment transaction
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.DecidePaymentRequest true "Payment decision"
// @Success 201 {object} resdto.PaymentResponse
// @Success 200 {object} resdto.PaymentResponse "Same decision recorded earlier"
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/payments [post]
func (h *AdminHandler) DecidePayment(c *gin.Context) {
	var req reqdto.DecidePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortValidation(c, err, "Invalid request")
		return
	}

	result, err := h.payments.Decide(c.Request.Context(), req.ToCommand())
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	status := http.StatusCreated
	if result.Replayed {
		c.Header(headerIdempotentReplayed, "true")
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromPaymentResult(result))
}

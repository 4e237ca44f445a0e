package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acadex/registry/internal/app/models/dto"
	"github.com/acadex/registry/internal/app/services"
	"github.com/acadex/registry/internal/middleware"
)

// PaymentController handles payment endpoints
type PaymentController struct {
	paymentService services.PaymentService
}

// NewPaymentController creates a new PaymentController
func NewPaymentController(paymentService services.PaymentService) *PaymentController {
	return &PaymentController{paymentService: paymentService}
}

// RecordPayment handles POST /payments
func (c *PaymentController) RecordPayment(ctx *gin.Context) {
	var req dto.RecordPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid payment data", err.Error())
		return
	}

	id, err := c.paymentService.RecordPayment(ctx.Request.Context(), services.RecordPaymentInput{
		StudentID: req.StudentID,
		Amount:    req.Amount,
		Mode:      req.Mode,
		Reference: req.Reference,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.IDResponse{ID: id}))
}

// ListStudentPayments handles GET /students/:id/payments
func (c *PaymentController) ListStudentPayments(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	payments, err := c.paymentService.ListPayments(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(payments))
}

// TotalStudentPayments handles GET /students/:id/payments/total
func (c *PaymentController) TotalStudentPayments(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	total, err := c.paymentService.TotalPayments(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.TotalPaymentsResponse{
		StudentID: id,
		Total:     total,
	}))
}

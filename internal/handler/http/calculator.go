// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-calculator/internal/app"
	"github.com/MKhiriev/go-calculator/internal/logger"
	"github.com/MKhiriev/go-calculator/internal/utils"
	"github.com/MKhiriev/go-calculator/models"
)

type binaryOperation func(ctx context.Context, req models.BinaryOperationRequest) (float64, error)

type unaryOperation func(ctx context.Context, req models.UnaryOperationRequest) (float64, error)

// greet handles GET /.
func (h *Handler) greet(w http.ResponseWriter, r *http.Request) {
	utils.WriteText(w, app.MsgGreeting, http.StatusOK)
}

// add handles GET /add?num1=&num2=.
func (h *Handler) add(w http.ResponseWriter, r *http.Request) {
	h.serveBinary(w, r, models.OperationAdd, h.services.CalculatorService.Add)
}

// subtract handles GET /subtract?num1=&num2=.
func (h *Handler) subtract(w http.ResponseWriter, r *http.Request) {
	h.serveBinary(w, r, models.OperationSubtract, h.services.CalculatorService.Subtract)
}

// multiply handles GET /multiply?num1=&num2=.
func (h *Handler) multiply(w http.ResponseWriter, r *http.Request) {
	h.serveBinary(w, r, models.OperationMultiply, h.services.CalculatorService.Multiply)
}

// divide handles GET /divide?num1=&num2=. A zero divisor is answered with 400.
func (h *Handler) divide(w http.ResponseWriter, r *http.Request) {
	h.serveBinary(w, r, models.OperationDivide, h.services.CalculatorService.Divide)
}

// exponent handles GET /exponent?base=&exponent=.
func (h *Handler) exponent(w http.ResponseWriter, r *http.Request) {
	h.serveBinary(w, r, models.OperationExponent, h.services.CalculatorService.Exponent)
}

// modulo handles GET /modulo?num1=&num2=. A zero divisor is answered with 400.
func (h *Handler) modulo(w http.ResponseWriter, r *http.Request) {
	h.serveBinary(w, r, models.OperationModulo, h.services.CalculatorService.Modulo)
}

// sqrt handles GET /sqrt?num=. A negative operand is answered with 400.
func (h *Handler) sqrt(w http.ResponseWriter, r *http.Request) {
	h.serveUnary(w, r, models.OperationSqrt, h.services.CalculatorService.Sqrt)
}

func (h *Handler) serveBinary(w http.ResponseWriter, r *http.Request, op models.Operation, fn binaryOperation) {
	names, _ := op.OperandNames()
	query := r.URL.Query()

	req := models.BinaryOperationRequest{
		A: models.ParseOperand(query.Get(names[0])),
		B: models.ParseOperand(query.Get(names[1])),
	}

	result, err := fn(r.Context(), req)
	h.writeResult(w, r, op, result, err)
}

func (h *Handler) serveUnary(w http.ResponseWriter, r *http.Request, op models.Operation, fn unaryOperation) {
	names, _ := op.OperandNames()

	req := models.UnaryOperationRequest{
		A: models.ParseOperand(r.URL.Query().Get(names[0])),
	}

	result, err := fn(r.Context(), req)
	h.writeResult(w, r, op, result, err)
}

func (h *Handler) writeResult(w http.ResponseWriter, r *http.Request, op models.Operation, result float64, err error) {
	log := logger.FromContextOr(r.Context(), h.logger)

	if err != nil {
		status := statusFromError(err)
		if status == http.StatusInternalServerError {
			log.Error().Err(err).Str("operation", string(op)).Msg("unexpected calculator error")
		}
		utils.WriteJSON(w, models.ErrorResponse{Error: messageFromError(err)}, status)
		return
	}

	if _, err = utils.WriteJSON(w, models.OperationResult{Result: models.Number(result)}, http.StatusOK); err != nil {
		log.Error().Err(err).Str("operation", string(op)).Msg("error writing operation result")
	}
}

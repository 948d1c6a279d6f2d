package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/validation"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/pkg/logger"
)

// Códigos de error expuestos en dto.ErrorResponse.Code.
const (
	CodeInvalidBody       = "INVALID_BODY"
	CodeInvalidID         = "INVALID_ID"
	CodeValidation        = "VALIDATION"
	CodeInsufficientStock = "INSUFFICIENT_STOCK"
	CodeProductNotFound   = "PRODUCT_NOT_FOUND"
	CodeSaleNotFound      = "SALE_NOT_FOUND"
	CodeBidNotFound       = "BID_NOT_FOUND"
	CodeNotFound          = "NOT_FOUND"
	CodeInternal          = "INTERNAL"
)

// errorStatus traduce un error de dominio a status HTTP y código.
// Cualquier error no reconocido es un fallo de almacenamiento (500).
func errorStatus(err error) (int, string) {
	var verrs validation.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return fiber.StatusBadRequest, CodeValidation
	case errors.Is(err, domain.ErrInsufficientStock):
		return fiber.StatusBadRequest, CodeInsufficientStock
	case errors.Is(err, domain.ErrProductNotFound):
		return fiber.StatusNotFound, CodeProductNotFound
	case errors.Is(err, domain.ErrSaleNotFound):
		return fiber.StatusNotFound, CodeSaleNotFound
	case errors.Is(err, domain.ErrBidNotFound):
		return fiber.StatusNotFound, CodeBidNotFound
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, CodeNotFound
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, CodeValidation
	}
	return fiber.StatusInternalServerError, CodeInternal
}

// writeError responde con dto.ErrorResponse. Los 500 se registran y no exponen detalles.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	status, code := errorStatus(err)
	return writeErrorStatus(c, log, status, code, err)
}

func writeErrorStatus(c *fiber.Ctx, log *logger.Logger, status int, code string, err error) error {
	if status >= fiber.StatusInternalServerError {
		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Interface("request_id", c.Locals(requestIDKey)).
			Msg("error interno")
		return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: "error interno"})
	}
	body := dto.ErrorResponse{Code: code, Message: err.Error()}
	var verrs validation.ValidationErrors
	if errors.As(err, &verrs) {
		body.Message = "datos inválidos"
		body.Fields = verrs
	}
	return c.Status(status).JSON(body)
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeInvalidBody, Message: "cuerpo inválido"})
}

// paramID lee :id como entero positivo.
func paramID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func badID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeInvalidID, Message: "id inválido"})
}

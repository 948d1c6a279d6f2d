package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/usecase"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/infrastructure/metrics"
	"github.com/jhoicas/Ventas-api/pkg/logger"
)

// SaleHandler maneja las ventas. Toda mutación pasa por el coordinador transaccional.
type SaleHandler struct {
	uc  *usecase.SaleUseCase
	log *logger.Logger
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *usecase.SaleUseCase, log *logger.Logger) *SaleHandler {
	return &SaleHandler{uc: uc, log: log}
}

// saleError: un producto inexistente en el cuerpo es un 400 (referencia inválida), no un 404.
func (h *SaleHandler) saleError(c *fiber.Ctx, operation string, err error) error {
	status, code := errorStatus(err)
	if errors.Is(err, domain.ErrProductNotFound) {
		status = fiber.StatusBadRequest
	}
	metrics.SalesOperationsTotal.WithLabelValues(operation, outcome(err)).Inc()
	return writeErrorStatus(c, h.log, status, code, err)
}

func outcome(err error) string {
	switch status, code := errorStatus(err); {
	case code == CodeInsufficientStock:
		return metrics.OutcomeInsufficientStock
	case status == fiber.StatusNotFound:
		return metrics.OutcomeNotFound
	case status == fiber.StatusBadRequest:
		return metrics.OutcomeInvalid
	}
	return metrics.OutcomeError
}

// Create godoc
// @Summary      Registrar venta (descuenta stock)
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaleRequest  true  "Datos de la venta"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.SaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.saleError(c, "create", err)
	}
	metrics.SalesOperationsTotal.WithLabelValues("create", metrics.OutcomeOK).Inc()
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener venta por ID
// @Tags         sales
// @Produce      json
// @Param        id   path  int  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar ventas con nombre de producto
// @Tags         sales
// @Produce      json
// @Success      200  {array}  dto.SaleResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Modificar venta (reajusta stock)
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la venta"
// @Param        body  body  dto.SaleRequest  true  "Datos de la venta"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [put]
func (h *SaleHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	var in dto.SaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if _, err := h.uc.Update(c.UserContext(), id, in); err != nil {
		return h.saleError(c, "update", err)
	}
	metrics.SalesOperationsTotal.WithLabelValues("update", metrics.OutcomeOK).Inc()
	return c.JSON(dto.MessageResponse{Message: "venta actualizada"})
}

// Delete godoc
// @Summary      Eliminar venta (devuelve stock)
// @Tags         sales
// @Produce      json
// @Param        id   path  int  true  "ID de la venta"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [delete]
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return h.saleError(c, "delete", err)
	}
	metrics.SalesOperationsTotal.WithLabelValues("delete", metrics.OutcomeOK).Inc()
	return c.JSON(dto.MessageResponse{Message: "venta eliminada"})
}

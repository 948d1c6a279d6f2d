package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/usecase"
	"github.com/jhoicas/Ventas-api/pkg/logger"
)

// BidHandler CRUD de licitaciones.
type BidHandler struct {
	uc  *usecase.BidUseCase
	log *logger.Logger
}

// NewBidHandler construye el handler.
func NewBidHandler(uc *usecase.BidUseCase, log *logger.Logger) *BidHandler {
	return &BidHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Registrar licitación
// @Tags         bids
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BidRequest  true  "Datos de la licitación"
// @Success      201   {object}  dto.BidResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/bids [post]
func (h *BidHandler) Create(c *fiber.Ctx) error {
	var in dto.BidRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener licitación
// @Tags         bids
// @Produce      json
// @Param        id   path  int  true  "ID de la licitación"
// @Success      200  {object}  dto.BidResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bids/{id} [get]
func (h *BidHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar licitaciones
// @Tags         bids
// @Produce      json
// @Success      200  {array}  dto.BidResponse
// @Router       /api/bids [get]
func (h *BidHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Modificar licitación
// @Tags         bids
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la licitación"
// @Param        body  body  dto.BidRequest  true  "Datos de la licitación"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/bids/{id} [put]
func (h *BidHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	var in dto.BidRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if _, err := h.uc.Update(c.UserContext(), id, in); err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: "licitación actualizada"})
}

// Delete godoc
// @Summary      Eliminar licitación
// @Tags         bids
// @Produce      json
// @Param        id   path  int  true  "ID de la licitación"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bids/{id} [delete]
func (h *BidHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: "licitación eliminada"})
}

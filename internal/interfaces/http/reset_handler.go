package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/usecase"
	"github.com/jhoicas/Ventas-api/pkg/logger"
)

// ResetHandler vacía el registro completo. Solo se monta con RESET_ENABLED.
type ResetHandler struct {
	uc  *usecase.LedgerUseCase
	log *logger.Logger
}

// NewResetHandler construye el handler.
func NewResetHandler(uc *usecase.LedgerUseCase, log *logger.Logger) *ResetHandler {
	return &ResetHandler{uc: uc, log: log}
}

// Reset godoc
// @Summary      Vaciar productos, ventas y licitaciones (demo/pruebas)
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reset [post]
func (h *ResetHandler) Reset(c *fiber.Ctx) error {
	if err := h.uc.Reset(c.UserContext()); err != nil {
		return writeError(c, h.log, err)
	}
	h.log.Warn().Interface("request_id", c.Locals(requestIDKey)).Msg("registro vaciado vía /api/reset")
	return c.JSON(dto.MessageResponse{Message: "datos eliminados"})
}

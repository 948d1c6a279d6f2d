package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ventas-api/internal/application/report"
	"github.com/jhoicas/Ventas-api/pkg/logger"
)

// ReportHandler descarga de reportes.
type ReportHandler struct {
	uc  *report.SalesReportUseCase
	log *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.SalesReportUseCase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, log: log}
}

// SalesPDF godoc
// @Summary      Reporte de ventas en PDF
// @Tags         reports
// @Produce      application/pdf
// @Success      200
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/sales.pdf [get]
func (h *ReportHandler) SalesPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.uc.Download(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdfBytes)
}

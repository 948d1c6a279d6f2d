package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Ventas-api/internal/application/analytics"
	"github.com/jhoicas/Ventas-api/pkg/logger"
)

// DashboardHandler maneja los endpoints del Dashboard.
type DashboardHandler struct {
	uc  *appanalytics.DashboardUseCase
	log *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log}
}

// GetSummary devuelve los KPIs del dashboard.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO (product_count, stock_value, sale_count, revenue,
// active_bids, revenue_by_month, products_by_category, recent_sales).
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(summary)
}

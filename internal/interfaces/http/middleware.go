package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/jhoicas/Ventas-api/internal/infrastructure/metrics"
	"github.com/jhoicas/Ventas-api/pkg/logger"
)

const requestIDKey = "requestid"

// RequestID asigna X-Request-ID (UUID v4) si el cliente no envía uno.
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: requestIDKey,
	})
}

// RequestLogger registra método, ruta, status, latencia e id de cada request.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error().Err(err)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Interface("request_id", c.Locals(requestIDKey)).
			Msg("request")
		return err
	}
}

// Metrics alimenta http_requests_total y http_request_duration_seconds.
// La etiqueta path usa la plantilla de la ruta (/api/sales/:id) para acotar cardinalidad.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		path := c.Route().Path
		if path == "" || path == "/" {
			path = "unmatched"
		}
		labels := []string{c.Method(), path, strconv.Itoa(status)}
		metrics.HTTPRequestsTotal.WithLabelValues(labels...).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		return err
	}
}

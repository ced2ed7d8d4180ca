package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/jacentio/moviecast/catalog"
)

// NewServer returns an echo instance serving the catalog routes with request
// ids, request logging, panic recovery and open CORS.
func NewServer(h *Handler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"requestId", v.RequestID,
			}
			if v.Error != nil {
				h.logger.Error("request failed", append(attrs, "error", v.Error)...)
				return nil
			}
			h.logger.Info("request", attrs...)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
	}))

	h.Register(e)
	return e
}

// Register adds the catalog routes to e.
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", health)
	e.GET("/movies", h.echoListMovies)
	e.GET("/movies/:id", h.echoGetMovie)
	e.GET("/cast", h.echoGetCast)
}

func health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func (h *Handler) echoListMovies(c echo.Context) error {
	return writeEcho(c, h.listMovies(c.Request().Context(), h.echoLogger(c)))
}

func (h *Handler) echoGetMovie(c echo.Context) error {
	params := flattenQuery(c.QueryParams())
	params[catalog.ParamID] = c.Param("id")
	return writeEcho(c, h.getMovie(c.Request().Context(), h.echoLogger(c), params))
}

func (h *Handler) echoGetCast(c echo.Context) error {
	params := flattenQuery(c.QueryParams())
	return writeEcho(c, h.getCast(c.Request().Context(), h.echoLogger(c), params))
}

func (h *Handler) echoLogger(c echo.Context) *slog.Logger {
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return h.logger.With("requestId", id)
	}
	return h.logger
}

func writeEcho(c echo.Context, r response) error {
	return c.Blob(r.status, contentTypeJSON, r.body)
}

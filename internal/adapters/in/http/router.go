package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	gommonlog "github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	_ "storefront/internal/generated/docs"
	"storefront/internal/generated/servers"
)

const APIBasePath = "/api/v1"

// NewRouter builds the echo instance: health and docs are public, everything
// under /api/v1 requires a bearer token.
func NewRouter(server *Server, auth AuthConfig, log *zap.Logger, echoLogLevel gommonlog.Lvl) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(echoLogLevel)
	e.HTTPErrorHandler = ErrorHandler
	e.Validator = NewRequestValidator()

	e.Use(middleware.RequestID())
	e.Use(RequestLogger(log))
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/api/openapi.json", openAPIDocument)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group(APIBasePath, JWTAuth(auth))
	servers.RegisterHandlers(api, server)

	return e
}

func openAPIDocument(c echo.Context) error {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, swagger)
}

// EchoLogLevel maps a zap level name onto echo's own logger.
func EchoLogLevel(level string) gommonlog.Lvl {
	switch level {
	case "debug":
		return gommonlog.DEBUG
	case "warn":
		return gommonlog.WARN
	case "error":
		return gommonlog.ERROR
	default:
		return gommonlog.INFO
	}
}

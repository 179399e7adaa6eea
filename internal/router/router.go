package router

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"moneyman/internal/auth"
	"moneyman/internal/config"
	"moneyman/internal/errors"
	"moneyman/internal/handler"

	"github.com/golang-jwt/jwt/v4"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	txnHandler *handler.TransactionHandler,
	reportHandler *handler.ReportHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	e.Validator = &CustomValidator{validator: validator.New()}
	e.Binder = &StrictBinder{}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout)

	// Secured routes (require the session cookie)
	secured := e.Group("", sessionMiddleware(cfg))

	secured.GET("/transaction", txnHandler.List)
	secured.POST("/transaction", txnHandler.Create)
	secured.PUT("/transaction/:id", txnHandler.Update)
	secured.DELETE("/transaction/:id", txnHandler.Delete)
	secured.DELETE("/transactions/clear", txnHandler.Clear)
	secured.GET("/generate-pdf", reportHandler.GeneratePDF)

	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, errors.ErrorResponse{
			Error: fmt.Sprintf("Route %s not found", c.Request().URL.Path),
		})
	})
}

// sessionMiddleware verifies the session cookie. An invalid or expired token
// clears the cookie as part of the 401, so a stale client stops resending it.
func sessionMiddleware(cfg *config.Config) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "cookie:" + auth.CookieName,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if stderrors.Is(err, echojwt.ErrJWTMissing) {
				return c.JSON(http.StatusUnauthorized, errors.ErrorResponse{
					Error: "Unauthorized, No Token",
					Code:  "NO_TOKEN",
				})
			}
			auth.ClearSessionCookie(c, cfg.IsProduction())
			return c.JSON(http.StatusUnauthorized, errors.ErrorResponse{
				Error: "Unauthorized, Invalid Token",
				Code:  "INVALID_TOKEN",
			})
		},
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// StrictBinder binds JSON bodies rejecting unknown fields, so malformed
// requests fail at the boundary instead of silently dropping data. Non-JSON
// requests fall through to echo's default binder.
type StrictBinder struct {
	fallback echo.DefaultBinder
}

// Bind implements echo.Binder.
func (b *StrictBinder) Bind(i interface{}, c echo.Context) error {
	req := c.Request()
	ctype := req.Header.Get(echo.HeaderContentType)
	if req.ContentLength != 0 && strings.HasPrefix(ctype, echo.MIMEApplicationJSON) {
		dec := json.NewDecoder(req.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(i); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return nil
	}
	return b.fallback.Bind(i, c)
}

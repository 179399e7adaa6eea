package handler

import (
	stderrors "errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"

	"moneyman/internal/auth"
	"moneyman/internal/errors"
)

// sessionClaims extracts the verified session claims the JWT middleware
// stored on the context.
func sessionClaims(c echo.Context) (*auth.Claims, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	return claims, nil
}

// validationMessage turns a validator failure into the API's human-readable
// message.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "oneof" {
				return "type must be Income or Expenses"
			}
		}
	}
	return errors.ErrMissingFields.Error()
}

// errorJSON writes a domain error as the standard error response.
func errorJSON(c echo.Context, err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
}

package auth

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// CookieName is the session cookie carrying the signed token.
const CookieName = "jwt_token"

// SetSessionCookie attaches the session token to the response as an http-only
// cookie. SameSite=None lets the browser send it on cross-origin requests
// from the frontend; that requires Secure, which is only set in production so
// local plain-http development keeps working.
func SetSessionCookie(c echo.Context, token string, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteNoneMode,
	})
}

// ClearSessionCookie instructs the client to forget the session cookie by
// expiring it in the past. No server-side state changes.
func ClearSessionCookie(c echo.Context, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteNoneMode,
		Expires:  time.Unix(0, 0),
	})
}

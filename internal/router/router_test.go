package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bindTarget struct {
	Title  string   `json:"title"`
	Amount *float64 `json:"amount"`
}

func TestStrictBinder_RejectsUnknownFields(t *testing.T) {
	e := echo.New()
	e.Binder = &StrictBinder{}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"Rent","bogus":true}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	var target bindTarget
	err := c.Bind(&target)
	require.Error(t, err)

	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestStrictBinder_BindsKnownFields(t *testing.T) {
	e := echo.New()
	e.Binder = &StrictBinder{}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"Rent","amount":1200.5}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	var target bindTarget
	require.NoError(t, c.Bind(&target))
	assert.Equal(t, "Rent", target.Title)
	require.NotNil(t, target.Amount)
	assert.Equal(t, 1200.5, *target.Amount)
}

func TestStrictBinder_EmptyBodyIsNoOp(t *testing.T) {
	e := echo.New()
	e.Binder = &StrictBinder{}

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	var target bindTarget
	assert.NoError(t, c.Bind(&target))
	assert.Empty(t, target.Title)
	assert.Nil(t, target.Amount)
}

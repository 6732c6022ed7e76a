package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestCurrentUserID(t *testing.T) {
	e := echo.New()

	newCtx := func() echo.Context {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		return e.NewContext(req, httptest.NewRecorder())
	}

	c := newCtx()
	assert.Equal(t, uint(0), currentUserID(c))

	c = newCtx()
	c.Set("user_id", uint(7))
	assert.Equal(t, uint(7), currentUserID(c))

	c = newCtx()
	c.Set("user_id", 3)
	assert.Equal(t, uint(3), currentUserID(c))

	c = newCtx()
	c.Set("user_id", "bogus")
	assert.Equal(t, uint(0), currentUserID(c))
}

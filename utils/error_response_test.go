package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func failResponse(t *testing.T, status int, err error) (int, ErrorResponse) {
	t.Helper()
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return Fail(c, status, "Something went wrong", err)
	})

	resp, reqErr := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, reqErr)
	defer resp.Body.Close()

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestFail_ServerErrorsKeepDetailOffTheWire(t *testing.T) {
	status, body := failResponse(t, fiber.StatusInternalServerError,
		errors.New("dial tcp 10.0.0.5:5432: connect: connection refused"))

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Something went wrong", body.Message)
	assert.Empty(t, body.Error)
}

func TestFail_ClientErrorsEchoDetail(t *testing.T) {
	status, body := failResponse(t, fiber.StatusNotFound, errors.New("record not found"))

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "record not found", body.Error)
}

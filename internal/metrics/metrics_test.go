package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPMiddleware(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	RegisterMetrics(logger)
	RegisterMetrics(logger)

	app := fiber.New()
	app.Use(HTTPMiddleware())
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusTeapot)
	})
	app.Get("/metrics", Handler())

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/ping", "418"))

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/ping", "418"))
	assert.Equal(t, before+1, after)

	RecordAirdrop("SOL", ResultSuccess)
	resp, err = app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `faucet_airdrops_total{coin="SOL",result="success"}`)
}

func TestHTTPMiddleware_ErrorStatus(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	RegisterMetrics(logger)

	app := fiber.New()
	app.Use(HTTPMiddleware())
	app.Use(recover.New())
	app.Get("/missing", func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})
	app.Get("/broken", func(c *fiber.Ctx) error {
		return errors.New("boom")
	})
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("boom")
	})

	cases := []struct {
		path   string
		status string
	}{
		{"/missing", "404"},
		{"/broken", "500"},
		{"/panic", "500"},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			counter := httpRequestsTotal.WithLabelValues("GET", tc.path, tc.status)
			before := testutil.ToFloat64(counter)

			resp, err := app.Test(httptest.NewRequest("GET", tc.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tc.status, strconv.Itoa(resp.StatusCode))

			assert.Equal(t, before+1, testutil.ToFloat64(counter))
		})
	}
}

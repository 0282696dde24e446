package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"seedshare/config"
	domainerrors "seedshare/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(m *Metrics) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if !c.Response().Committed {
			_ = c.NoContent(statusOf(err))
		}
	}
	e.Use(m.Middleware)
	e.GET("/offers/:id", func(c echo.Context) error {
		if c.Param("id") == "404" {
			return errors.Wrap(domainerrors.ErrOfferNotFound, "offer 404")
		}

		return c.NoContent(http.StatusOK)
	})
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	return e
}

// counterValue returns the value of the request counter with the given labels.
func counterValue(t *testing.T, m *Metrics, name string, labels map[string]string) float64 {
	t.Helper()

	families, err := m.Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			if matchLabels(metric, labels) {
				return metric.GetCounter().GetValue()
			}
		}
	}

	return 0
}

func matchLabels(metric *dto.Metric, labels map[string]string) bool {
	matched := 0
	for _, pair := range metric.GetLabel() {
		if want, ok := labels[pair.GetName()]; ok && want == pair.GetValue() {
			matched++
		}
	}

	return matched == len(labels)
}

func TestMiddleware_RecordsRouteAndStatus(t *testing.T) {
	m := New(&config.Config{})
	e := newTestEcho(m)

	for _, target := range []string{"/offers/1", "/offers/2", "/offers/404"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	}

	assert.Equal(t, float64(2), counterValue(t, m, "seedshare_http_requests_total", map[string]string{
		"method": "GET", "route": "/offers/:id", "status": "200",
	}))
	assert.Equal(t, float64(1), counterValue(t, m, "seedshare_http_requests_total", map[string]string{
		"method": "GET", "route": "/offers/:id", "status": "404",
	}))
}

func TestHandler_ExposesRegistry(t *testing.T) {
	m := New(&config.Config{})
	e := newTestEcho(m)

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/offers/1", nil))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "seedshare_http_request_duration_seconds"))
	assert.True(t, strings.Contains(rec.Body.String(), "go_goroutines"))
}

func TestNamespaceFor(t *testing.T) {
	assert.Equal(t, "seedshare", namespaceFor(""))
	assert.Equal(t, "seed_share_api", namespaceFor("seed-share.api"))
}

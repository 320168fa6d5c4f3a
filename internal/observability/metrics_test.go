package observability

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorsAreIndependent(t *testing.T) {
	a := NewCollector("mingle")
	b := NewCollector("mingle")

	a.ObserveHTTP("GET", "GET /api/profiles", 200, 10*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(a.HTTPRequests.WithLabelValues("GET", "GET /api/profiles", "200")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.HTTPRequests.WithLabelValues("GET", "GET /api/profiles", "200")))
}

func TestObserveUpstreamLabelsTransportFailures(t *testing.T) {
	c := NewCollector("mingle")

	c.ObserveUpstream("/ai/rank-contacts", 0, time.Second)
	c.ObserveUpstream("/ai/rank-contacts", 422, time.Second)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.UpstreamRequests.WithLabelValues("/ai/rank-contacts", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.UpstreamRequests.WithLabelValues("/ai/rank-contacts", "422")))
}

func TestHandlerServesTextFormat(t *testing.T) {
	c := NewCollector("mingle")
	c.ObserveUpstream("/ai/draft-outreach", 200, 50*time.Millisecond)

	srv := httptest.NewServer(c.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `mingle_ai_requests_total{endpoint="/ai/draft-outreach",status="200"} 1`)
}

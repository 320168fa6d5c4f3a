package outreach

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mingle-backend/internal/apperr"
)

type recordingObserver struct {
	mu    sync.Mutex
	calls []int
}

func (o *recordingObserver) ObserveUpstream(_ string, status int, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls = append(o.calls, status)
}

const rankBody = `{"query_looking_for":"Co-founder","query_domain":"AI/ML","query_help_type":"Introductions","urgency":"high","candidates":[{"id":"id1","name":"Ada"}]}`

func TestRankForwardsVerbatim(t *testing.T) {
	var gotPath, gotBody, gotType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotType = r.Header.Get("Content-Type")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"rankings":[{"contact_id":"id1","match_score":0.91,"match_reason":"AI founder","outreach_angle":"shared domain","source":"cloud","extra":true}]}`))
	}))
	defer srv.Close()

	obs := &recordingObserver{}
	p := NewProxy(srv.URL+"/", time.Second, WithObserver(obs))
	out, err := p.Rank(context.Background(), []byte(rankBody))
	require.NoError(t, err)

	assert.Equal(t, RankPath, gotPath)
	assert.Equal(t, "application/json", gotType)
	assert.Equal(t, rankBody, gotBody)
	assert.JSONEq(t, `{"rankings":[{"contact_id":"id1","match_score":0.91,"match_reason":"AI founder","outreach_angle":"shared domain","source":"cloud","extra":true}]}`, string(out))
	assert.Equal(t, []int{http.StatusOK}, obs.calls)
}

func TestDraftUsesDraftPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DraftPath, r.URL.Path)
		_, _ = w.Write([]byte(`{"message":"Hi Ada","source":"on-device"}`))
	}))
	defer srv.Close()

	out, err := NewProxy(srv.URL, time.Second).Draft(context.Background(), []byte(`{"sender":{},"recipient":{},"context":""}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"Hi Ada","source":"on-device"}`, string(out))
}

func TestUpstreamStatusAndDetailAreRelayed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"detail":"model not loaded"}`))
	}))
	defer srv.Close()

	_, err := NewProxy(srv.URL, time.Second).Rank(context.Background(), []byte(`{}`))
	ae := apperr.From(err)
	assert.Equal(t, apperr.KindUpstream, ae.Kind)
	assert.Equal(t, http.StatusServiceUnavailable, ae.Status)
	assert.Equal(t, "model not loaded", ae.PublicMessage())
}

func TestUpstreamStructuredDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"detail":[{"loc":["body","candidates"],"msg":"field required"}]}`))
	}))
	defer srv.Close()

	_, err := NewProxy(srv.URL, time.Second).Rank(context.Background(), []byte(`{}`))
	ae := apperr.From(err)
	assert.Equal(t, http.StatusUnprocessableEntity, ae.Status)
	assert.JSONEq(t, `[{"loc":["body","candidates"],"msg":"field required"}]`, ae.PublicMessage())
}

func TestUpstreamWithoutDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewProxy(srv.URL, time.Second).Draft(context.Background(), []byte(`{}`))
	ae := apperr.From(err)
	assert.Equal(t, http.StatusInternalServerError, ae.Status)
	assert.Equal(t, "Request failed with status code 500", ae.PublicMessage())
}

func TestTimeoutMapsToBadGatewayWithoutRetry(t *testing.T) {
	var hits atomic.Int32
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	obs := &recordingObserver{}
	_, err := NewProxy(srv.URL, 50*time.Millisecond, WithObserver(obs)).Rank(context.Background(), []byte(rankBody))
	ae := apperr.From(err)
	assert.Equal(t, apperr.KindUpstream, ae.Kind)
	assert.Equal(t, http.StatusBadGateway, ae.Status)
	assert.Equal(t, "timeout of 50ms exceeded", ae.PublicMessage())
	assert.Equal(t, int32(1), hits.Load())
	assert.Equal(t, []int{0}, obs.calls)
}

func TestUnreachableService(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewProxy(url, time.Second).Rank(context.Background(), []byte(`{}`))
	ae := apperr.From(err)
	assert.Equal(t, http.StatusBadGateway, ae.Status)
	assert.NotEmpty(t, ae.PublicMessage())
}

func TestInvalidJSONIsRejectedLocally(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("upstream must not be called")
	}))
	defer srv.Close()

	_, err := NewProxy(srv.URL, time.Second).Rank(context.Background(), []byte(`{not json`))
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

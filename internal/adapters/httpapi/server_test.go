package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bnema/pixeloracle/internal/application"
	"github.com/bnema/pixeloracle/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type stubStatus struct{}

func (stubStatus) Health() application.HealthReport {
	return application.HealthReport{Status: "running", TotalCompleted: 4, Uptime: "2h 5m"}
}

func (stubStatus) Status() application.StatusReport {
	return application.StatusReport{
		Status:         "running",
		State:          domain.StageIdle,
		AgentID:        "agent-1",
		Network:        domain.NetworkBase,
		TotalCompleted: 4,
		RecentErrors:   []application.ErrorReport{{Cycle: 3, Message: "render image: boom"}},
	}
}

func (stubStatus) Proof() application.ProofReport {
	next := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return application.ProofReport{Alive: true, LastRecordReference: "0xtx", NextScheduledTime: &next}
}

func serve(t *testing.T, method, path string, metrics http.Handler) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	NewServer(stubStatus{}, metrics, nil).Handler().ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealthOnRootAndHealth(t *testing.T) {
	for _, path := range []string{"/", "/health"} {
		rec := serve(t, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

		body := decode(t, rec)
		assert.Equal(t, "running", body["status"])
		assert.EqualValues(t, 4, body["totalCompleted"])
		assert.Equal(t, "2h 5m", body["uptime"])
		assert.Contains(t, body, "lastCycle")
	}
}

func TestStatusAndProof(t *testing.T) {
	body := decode(t, serve(t, http.MethodGet, "/status", nil))
	assert.Equal(t, "agent-1", body["agentId"])
	assert.Equal(t, "base", body["network"])
	recent := body["recentErrors"].([]any)
	require.Len(t, recent, 1)
	assert.Equal(t, "render image: boom", recent[0].(map[string]any)["message"])

	proof := decode(t, serve(t, http.MethodGet, "/proof", nil))
	assert.Equal(t, true, proof["alive"])
	assert.Equal(t, "0xtx", proof["lastRecordReference"])
	assert.Equal(t, "2026-03-01T12:00:00Z", proof["nextScheduledTime"])
}

func TestUnknownPathListsEndpoints(t *testing.T) {
	rec := serve(t, http.MethodGet, "/nope", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	body := decode(t, rec)
	assert.Equal(t, "Not found", body["error"])
	assert.Equal(t, []any{"/", "/health", "/status", "/proof", "/metrics"}, body["endpoints"])

	rec = serve(t, http.MethodPost, "/status", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPreflightReturnsNoContent(t *testing.T) {
	rec := serve(t, http.MethodOptions, "/status", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "GET")
	assert.Empty(t, rec.Body.String())
}

func TestMetricsMountedWhenProvided(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "pixeloracle_cycles_total 1\n")
	})

	rec := serve(t, http.MethodGet, "/metrics", metrics)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pixeloracle_cycles_total 1\n", rec.Body.String())

	rec = serve(t, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServeShutsDownOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- NewServer(stubStatus{}, nil, nil).Serve(ctx, listener) }()

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	require.Eventually(t, func() bool {
		resp, err := client.Get("http://" + listener.Addr().String() + "/health")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}

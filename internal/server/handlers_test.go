package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eunah0807-bit/csm17-meeting-assistant/config"
	"github.com/eunah0807-bit/csm17-meeting-assistant/internal/app"
	"github.com/eunah0807-bit/csm17-meeting-assistant/internal/audio"
	"github.com/eunah0807-bit/csm17-meeting-assistant/internal/domain/meeting"
	"github.com/eunah0807-bit/csm17-meeting-assistant/internal/domain/meeting/usecases"
	"github.com/eunah0807-bit/csm17-meeting-assistant/internal/metrics"
	"github.com/eunah0807-bit/csm17-meeting-assistant/internal/session"
	"github.com/eunah0807-bit/csm17-meeting-assistant/internal/slack"
)

type fakeGenerator struct {
	response string
	err      error
	calls    int
}

func (f *fakeGenerator) GenerateFromAudio(_ context.Context, _, _ string, _ []byte, _ string) (string, error) {
	f.calls++
	return f.response, f.err
}

type fakeSlack struct {
	result *slack.PostResult
	calls  int
}

func (f *fakeSlack) PostMessage(_ context.Context, _, _ string) (*slack.PostResult, error) {
	f.calls++
	return f.result, nil
}

func newTestServer(t *testing.T, gen *fakeGenerator, sl *fakeSlack) *Server {
	t.Helper()

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	cfg := &config.Config{
		RecordingsDir: filepath.Join(t.TempDir(), "recordings"),
		ListenAddr:    "localhost:0",
		Models:        []string{"M1"},
		Prompt:        "prompt",
		Channels:      []string{"회의록"},
	}

	application := &app.App{
		Analyze: &usecases.Analyze{
			Generator: gen,
			Models:    cfg.Models,
			Prompt:    cfg.Prompt,
			Logger:    zerolog.Nop(),
			Metrics:   m,
		},
		Notify: &usecases.Notify{
			Slack:   sl,
			Logger:  zerolog.Nop(),
			Metrics: m,
		},
		Session:  session.New(),
		Metrics:  m,
		Registry: registry,
	}

	return New(cfg, application, zerolog.Nop())
}

func doRequest(s *Server, method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	w := httptest.NewRecorder()
	s.server.Handler.ServeHTTP(w, req)
	return w
}

func loudWAV(t *testing.T) []byte {
	t.Helper()
	samples := make([]int16, 1600)
	for i := range samples {
		samples[i] = 100
	}
	data, err := audio.EncodeWAV(samples, 16000)
	require.NoError(t, err)
	return data
}

func silentWAV(t *testing.T) []byte {
	t.Helper()
	data, err := audio.EncodeWAV(make([]int16, 1600), 16000)
	require.NoError(t, err)
	return data
}

func TestVolumeEndpoint(t *testing.T) {
	s := newTestServer(t, &fakeGenerator{}, &fakeSlack{})

	w := doRequest(s, http.MethodPost, "/api/volume", loudWAV(t))
	require.Equal(t, http.StatusOK, w.Code)

	var resp volumeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 100, resp.RMS, 1e-6)
	assert.Equal(t, audio.LevelOK, resp.Level)
}

func TestAnalyzeBlocksSilentRecording(t *testing.T) {
	gen := &fakeGenerator{response: "[3-Line Summary]\nfoo"}
	s := newTestServer(t, gen, &fakeSlack{})

	w := doRequest(s, http.MethodPost, "/api/analyze", silentWAV(t))
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "무음")

	// The gate must stop the request before any network call.
	assert.Zero(t, gen.calls)
}

func TestAnalyzeSuccess(t *testing.T) {
	gen := &fakeGenerator{response: "[3-Line Summary]\nfoo\n[To-do List]\nbar\n[Detailed Summary]\nbaz"}
	s := newTestServer(t, gen, &fakeSlack{})

	w := doRequest(s, http.MethodPost, "/api/analyze", loudWAV(t))
	require.Equal(t, http.StatusOK, w.Code)

	var resp analyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "foo", resp.Sections.ThreeLine)
	assert.Equal(t, "bar", resp.Sections.Todo)
	assert.Equal(t, "baz", resp.Sections.Detailed)
	assert.NotEmpty(t, resp.SavedPath)
	assert.FileExists(t, resp.SavedPath)

	// The session keeps the latest result for the notify step.
	result, ok := s.app.Session.Result()
	require.True(t, ok)
	assert.Equal(t, "foo", result.ThreeLine)
}

func TestAnalyzeExhaustionSurfacesLastError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("quota exceeded")}
	s := newTestServer(t, gen, &fakeSlack{})

	w := doRequest(s, http.MethodPost, "/api/analyze", loudWAV(t))
	require.Equal(t, http.StatusBadGateway, w.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "quota exceeded")

	// No partial result may be stored.
	_, ok := s.app.Session.Result()
	assert.False(t, ok)
}

func TestNotifyWithoutResult(t *testing.T) {
	sl := &fakeSlack{result: &slack.PostResult{OK: true}}
	s := newTestServer(t, &fakeGenerator{}, sl)

	body, _ := json.Marshal(notifyRequest{Channel: "회의록"})
	w := doRequest(s, http.MethodPost, "/api/notify", body)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Zero(t, sl.calls)
}

func TestNotifyFlow(t *testing.T) {
	sl := &fakeSlack{result: &slack.PostResult{OK: true}}
	s := newTestServer(t, &fakeGenerator{}, sl)
	s.app.Session.SetResult(meeting.AnalysisResult{ThreeLine: "foo"})

	body, _ := json.Marshal(notifyRequest{Channel: "회의록", Attendees: "홍길동"})
	w := doRequest(s, http.MethodPost, "/api/notify", body)
	require.Equal(t, http.StatusOK, w.Code)

	var outcome usecases.NotifyOutcome
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &outcome))
	assert.True(t, outcome.OK)
	assert.Equal(t, "#회의록", outcome.Channel)
	assert.Equal(t, 1, sl.calls)
}

func TestNotifyAPIFailureIsDataWithHint(t *testing.T) {
	sl := &fakeSlack{result: &slack.PostResult{OK: false, Error: slack.ErrChannelNotFound}}
	s := newTestServer(t, &fakeGenerator{}, sl)
	s.app.Session.SetResult(meeting.AnalysisResult{ThreeLine: "foo"})

	body, _ := json.Marshal(notifyRequest{Channel: "nope"})
	w := doRequest(s, http.MethodPost, "/api/notify", body)
	require.Equal(t, http.StatusOK, w.Code)

	var outcome usecases.NotifyOutcome
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &outcome))
	assert.False(t, outcome.OK)
	assert.Equal(t, slack.ErrChannelNotFound, outcome.Error)
	assert.NotEmpty(t, outcome.Hint)
}

func TestNotifyRequiresChannel(t *testing.T) {
	s := newTestServer(t, &fakeGenerator{}, &fakeSlack{})
	s.app.Session.SetResult(meeting.AnalysisResult{ThreeLine: "foo"})

	w := doRequest(s, http.MethodPost, "/api/notify", []byte(`{}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSessionEndpoint(t *testing.T) {
	s := newTestServer(t, &fakeGenerator{}, &fakeSlack{})

	w := doRequest(s, http.MethodGet, "/api/session", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["id"])
	assert.Equal(t, []any{"회의록"}, resp["channels"])
	assert.NotContains(t, resp, "sections")
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t, &fakeGenerator{}, &fakeSlack{})

	w := doRequest(s, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestIndexServesUI(t *testing.T) {
	s := newTestServer(t, &fakeGenerator{}, &fakeSlack{})

	w := doRequest(s, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "씨에스엠17 회의 비서")
}

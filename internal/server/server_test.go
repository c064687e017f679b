package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/mazetrace/pkg/buildinfo"
	errs "github.com/matzehuels/mazetrace/pkg/errors"
	"github.com/matzehuels/mazetrace/pkg/grid"
	"github.com/matzehuels/mazetrace/pkg/maze"
	"github.com/matzehuels/mazetrace/pkg/observability"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := New(Config{}, nil, log.New(io.Discard))
	require.NoError(t, err)
	return s
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/healthz", "")

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[HealthResponse](t, rec)
	require.Equal(t, HealthResponse{Status: "ok", Version: buildinfo.Version}, got)
}

func TestListMazes(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/mazes", "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	got := decodeBody[maze.ListResponse](t, rec)
	require.Equal(t, []string{"corridors", "detour", "open_field", "sealed_vault", "spiral"}, got.Mazes)
}

func TestGetMaze(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/mazes/open_field", "")

	require.Equal(t, http.StatusOK, rec.Code)
	info := decodeBody[maze.Info](t, rec)
	require.Equal(t, "open_field", info.Name)
	require.Equal(t, 8, info.Rows)
	require.Equal(t, 8, info.Cols)
	require.Len(t, info.Grid, 8)
	require.Equal(t, grid.C(0, 0), info.Start)
	require.Equal(t, grid.C(7, 7), info.End)
}

func TestGetMazeNotFound(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/mazes/missing", "/mazes/Bad%20Name"} {
		rec := do(t, s, http.MethodGet, path, "")

		require.Equal(t, http.StatusNotFound, rec.Code, path)
		got := decodeBody[ErrorResponse](t, rec)
		require.Equal(t, errs.ErrCodeNotFound, got.Error.Code, path)
		require.NotEmpty(t, got.Error.Message, path)
	}
}

func TestPresetRoutes(t *testing.T) {
	s := newTestServer(t)

	for _, algo := range []string{"bfs", "dfs", "greedy", "astar"} {
		t.Run(algo, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, "/"+algo, `{"maze_name": "open_field", "start": [0, 0], "end": [7, 7]}`)

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			got := decodeBody[maze.RunResponse](t, rec)
			require.Equal(t, algo, got.Algorithm)
			require.Equal(t, "open_field", got.Maze)
			require.True(t, got.Found)
			require.Equal(t, grid.C(0, 0), got.Path[0])
			require.Equal(t, grid.C(7, 7), got.Path[len(got.Path)-1])
			require.Equal(t, len(got.Path)-1, got.Length)
			require.Len(t, got.Steps, len(got.Visited))
			if algo == "bfs" || algo == "astar" {
				require.Equal(t, 14, got.Length)
			}
		})
	}
}

func TestPresetDefaultsEndpoints(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/bfs", `{"maze_name": "sealed_vault"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := decodeBody[maze.RunResponse](t, rec)
	require.False(t, got.Found)
	require.Empty(t, got.Path)
	require.Equal(t, 0, got.Length)
	require.Len(t, got.Visited, 39)
}

func TestRunCustom(t *testing.T) {
	s := newTestServer(t)
	body := `{
		"algorithm": "astar",
		"maze_custom": {
			"rows": 3,
			"cols": 3,
			"walls": [[1, 1]],
			"start": [0, 0],
			"end": [2, 2]
		}
	}`

	rec := do(t, s, http.MethodPost, "/run", body)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := decodeBody[maze.RunResponse](t, rec)
	require.Equal(t, "astar", got.Algorithm)
	require.Empty(t, got.Maze)
	require.True(t, got.Found)
	require.Equal(t, 4, got.Length)
	require.NotContains(t, got.Visited, grid.C(1, 1))
}

func TestRequestErrors(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		body   string
		status int
		code   errs.Code
	}{
		{
			name:   "bad json",
			path:   "/run",
			body:   `{"algorithm":`,
			status: http.StatusBadRequest,
			code:   errs.ErrCodeInvalidInput,
		},
		{
			name:   "missing custom maze",
			path:   "/run",
			body:   `{"algorithm": "bfs"}`,
			status: http.StatusBadRequest,
			code:   errs.ErrCodeInvalidInput,
		},
		{
			name:   "unknown algorithm",
			path:   "/run",
			body:   `{"algorithm": "dijkstra", "maze_custom": {"rows": 1, "cols": 1, "walls": [], "start": [0, 0], "end": [0, 0]}}`,
			status: http.StatusBadRequest,
			code:   errs.ErrCodeUnknownAlgorithm,
		},
		{
			name:   "blocked start",
			path:   "/run",
			body:   `{"algorithm": "bfs", "maze_custom": {"rows": 2, "cols": 2, "walls": [[0, 0]], "start": [0, 0], "end": [1, 1]}}`,
			status: http.StatusBadRequest,
			code:   errs.ErrCodeInvalidEndpoint,
		},
		{
			name:   "dimensions overflow",
			path:   "/run",
			body:   `{"algorithm": "bfs", "maze_custom": {"rows": 4294967296, "cols": 4294967296, "walls": [], "start": [0, 0], "end": [0, 1]}}`,
			status: http.StatusBadRequest,
			code:   errs.ErrCodeMalformedGrid,
		},
		{
			name:   "too many cells",
			path:   "/run",
			body:   `{"algorithm": "astar", "maze_custom": {"rows": 100000, "cols": 100000, "walls": [], "start": [0, 0], "end": [1, 1]}}`,
			status: http.StatusBadRequest,
			code:   errs.ErrCodeMalformedGrid,
		},
		{
			name:   "start outside grid",
			path:   "/dfs",
			body:   `{"maze_name": "open_field", "start": [9, 9], "end": [0, 0]}`,
			status: http.StatusBadRequest,
			code:   errs.ErrCodeInvalidEndpoint,
		},
		{
			name:   "missing maze name",
			path:   "/greedy",
			body:   `{}`,
			status: http.StatusBadRequest,
			code:   errs.ErrCodeInvalidInput,
		},
		{
			name:   "unknown preset",
			path:   "/astar",
			body:   `{"maze_name": "nowhere", "start": [0, 0], "end": [1, 1]}`,
			status: http.StatusNotFound,
			code:   errs.ErrCodeNotFound,
		},
		{
			name:   "unknown route",
			path:   "/dijkstra",
			body:   `{"maze_name": "open_field"}`,
			status: http.StatusNotFound,
			code:   errs.ErrCodeNotFound,
		},
	}

	s := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, tt.path, tt.body)

			require.Equal(t, tt.status, rec.Code, rec.Body.String())
			got := decodeBody[ErrorResponse](t, rec)
			require.Equal(t, tt.code, got.Error.Code)
		})
	}
}

func TestBodyLimit(t *testing.T) {
	s, err := New(Config{MaxBodyBytes: 64}, nil, log.New(io.Discard))
	require.NoError(t, err)

	body := `{"maze_name": "` + strings.Repeat("a", 100) + `"}`
	rec := do(t, s, http.MethodPost, "/bfs", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, errs.ErrCodeInvalidInput, decodeBody[ErrorResponse](t, rec).Error.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/bfs", "")

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRequestID(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/healthz", "")
	generated := rec.Header().Get(headerRequestID)
	require.Len(t, generated, 36)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	const incoming = "0b7e6f0a-3c5d-4a8e-9f1b-2d4c6e8a0b1c"
	req.Header.Set(headerRequestID, incoming)
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	require.Equal(t, incoming, rec.Header().Get(headerRequestID))

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(headerRequestID, "not-a-uuid")
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	require.NotEqual(t, "not-a-uuid", rec.Header().Get(headerRequestID))
}

func TestCORS(t *testing.T) {
	s, err := New(Config{AllowedOrigins: []string{"http://app.example"}}, nil, log.New(io.Discard))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodOptions, "/run", nil)
	req.Header.Set("Origin", "http://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, "http://app.example", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/mazes", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

type httpRecorder struct {
	observability.NoopHTTPHooks
	requests  []string
	responses []int
}

func (h *httpRecorder) OnRequest(_ context.Context, method, path string) {
	h.requests = append(h.requests, method+" "+path)
}

func (h *httpRecorder) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	h.responses = append(h.responses, status)
}

func TestHTTPHooks(t *testing.T) {
	rec := &httpRecorder{}
	observability.SetHTTPHooks(rec)
	t.Cleanup(observability.Reset)
	s := newTestServer(t)

	do(t, s, http.MethodGet, "/mazes", "")
	do(t, s, http.MethodGet, "/mazes/missing", "")

	require.Equal(t, []string{"GET /mazes", "GET /mazes/missing"}, rec.requests)
	require.Equal(t, []int{http.StatusOK, http.StatusNotFound}, rec.responses)
}

func TestConcurrentRequests(t *testing.T) {
	s := newTestServer(t)
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	errCh := make(chan error, 16)
	for i := 0; i < cap(errCh); i++ {
		go func() {
			resp, err := http.Post(srv.URL+"/astar", "application/json",
				bytes.NewBufferString(`{"maze_name": "spiral"}`))
			if err != nil {
				errCh <- err
				return
			}
			defer resp.Body.Close()
			var got maze.RunResponse
			if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
				errCh <- err
				return
			}
			if got.Length != 44 {
				errCh <- errs.New(errs.ErrCodeInternal, "length %d, want 44", got.Length)
				return
			}
			errCh <- nil
		}()
	}
	for i := 0; i < cap(errCh); i++ {
		require.NoError(t, <-errCh)
	}
}

func TestServeShutsDownOnCancel(t *testing.T) {
	s := newTestServer(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("FRONTEND_URL=http://a.example, https://b.example\n"), 0o644))
	t.Setenv(EnvAddr, ":9999")
	t.Setenv(EnvOrigins, "")
	os.Unsetenv(EnvOrigins)

	cfg, err := LoadConfig(envFile)

	require.NoError(t, err)
	require.Equal(t, ":9999", cfg.Addr)
	require.Equal(t, []string{"http://a.example", "https://b.example"}, cfg.AllowedOrigins)
	require.Equal(t, DefaultRequestTimeout, cfg.RequestTimeout)
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv(EnvAddr, "")
	t.Setenv(EnvOrigins, "")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.env"))

	require.NoError(t, err)
	require.Equal(t, DefaultAddr, cfg.Addr)
	require.Equal(t, []string{DefaultOrigin}, cfg.AllowedOrigins)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"defaults", Config{}, true},
		{"wildcard", Config{AllowedOrigins: []string{"*"}}, true},
		{"bare host", Config{AllowedOrigins: []string{"localhost:3000"}}, false},
		{"negative timeout", Config{RequestTimeout: -time.Second}, false},
		{"negative body", Config{MaxBodyBytes: -1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			cfg.SetDefaults()
			err := cfg.Validate()
			if tt.ok {
				require.NoError(t, err)
			} else {
				require.True(t, errs.Is(err, errs.ErrCodeInvalidInput), "err = %v", err)
			}
		})
	}
}

func TestParseOrigins(t *testing.T) {
	require.Equal(t, []string{"http://a", "http://b"}, ParseOrigins(" http://a ,, http://b,"))
	require.Nil(t, ParseOrigins(""))
}

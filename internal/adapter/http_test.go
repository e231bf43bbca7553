// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/geo-waqf/geowaqf/internal/config"
	"github.com/geo-waqf/geowaqf/internal/ee"
	"github.com/geo-waqf/geowaqf/internal/utils"
	"github.com/geo-waqf/geowaqf/models"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEngine serves the token endpoint and the two REST methods under
// /v1/projects/test-project.
type fakeEngine struct {
	*httptest.Server

	tokenCalls atomic.Int32
	compute    http.HandlerFunc
	maps       http.HandlerFunc
}

func newFakeEngine(t *testing.T) *fakeEngine {
	t.Helper()

	fe := &fakeEngine{}
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		fe.tokenCalls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"engine-token","expires_in":3600}`))
	})
	mux.HandleFunc("/v1/projects/test-project/value:compute", func(w http.ResponseWriter, r *http.Request) {
		fe.compute(w, r)
	})
	mux.HandleFunc("/v1/projects/test-project/maps", func(w http.ResponseWriter, r *http.Request) {
		fe.maps(w, r)
	})

	fe.Server = httptest.NewServer(mux)
	t.Cleanup(fe.Close)
	return fe
}

// newTestAdapter creates an httpEngineAdapter pointed at fe.
func newTestAdapter(t *testing.T, fe *fakeEngine) *httpEngineAdapter {
	t.Helper()

	a, err := NewHTTPEngineAdapter(config.Engine{
		BaseURL:        fe.URL,
		APIVersion:     "v1",
		Project:        "test-project",
		RequestTimeout: 5 * time.Second,
	}, testServiceAccount(t, fe.URL+"/token"))
	require.NoError(t, err)
	return a.(*httpEngineAdapter)
}

func decodeBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()

	raw, err := io.ReadAll(r.Body)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

// ── Constructor ─────────────────────────────────────────────────────────────

func TestNewHTTPEngineAdapter_NoAccount(t *testing.T) {
	_, err := NewHTTPEngineAdapter(config.Engine{BaseURL: "https://example.com"}, nil)
	assert.ErrorIs(t, err, ErrNoCredentials)
}

func TestNewHTTPEngineAdapter_ProjectFallsBackToAccount(t *testing.T) {
	a, err := NewHTTPEngineAdapter(config.Engine{BaseURL: "https://example.com", APIVersion: "v1"},
		testServiceAccount(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "waqf-project", a.(*httpEngineAdapter).project)
	assert.True(t, a.Authenticated())
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "https://earthengine.googleapis.com", want: "https://earthengine.googleapis.com"},
		{in: "https://earthengine.googleapis.com/", want: "https://earthengine.googleapis.com"},
		{in: "earthengine.googleapis.com", want: "https://earthengine.googleapis.com"},
		{in: "  http://localhost:8080  ", want: "http://localhost:8080"},
		{in: "", wantErr: true},
		{in: "https://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── ComputeValue ────────────────────────────────────────────────────────────

func TestComputeValue_Success(t *testing.T) {
	fe := newFakeEngine(t)
	fe.compute = func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer engine-token", r.Header.Get("Authorization"))

		body := decodeBody(t, r)
		expr, ok := body["expression"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "0", expr["result"])

		_, _ = w.Write([]byte(`{"result": 3}`))
	}

	a := newTestAdapter(t, fe)
	got, err := a.ComputeValue(context.Background(), ee.MustEncode(ee.LoadImage("x").Value()))

	require.NoError(t, err)
	assert.JSONEq(t, "3", string(got))
}

func TestComputeValue_PropagatesTraceID(t *testing.T) {
	fe := newFakeEngine(t)
	fe.compute = func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "trace-42", r.Header.Get("X-Trace-ID"))
		_, _ = w.Write([]byte(`{"result": 1}`))
	}

	ctx := utils.WithTraceID(context.Background(), "trace-42")
	_, err := newTestAdapter(t, fe).ComputeValue(ctx, ee.MustEncode(ee.Constant(1)))
	require.NoError(t, err)
}

func TestComputeValue_ReusesToken(t *testing.T) {
	fe := newFakeEngine(t)
	fe.compute = func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result": {"type":"Point","coordinates":[101.5,1.5]}}`))
	}

	a := newTestAdapter(t, fe)
	expr := ee.MustEncode(ee.Constant(1))

	for range 3 {
		_, err := a.ComputeValue(context.Background(), expr)
		require.NoError(t, err)
	}
	assert.EqualValues(t, 1, fe.tokenCalls.Load())
}

func TestComputeValue_UpstreamErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{"bad request", http.StatusBadRequest, `{"error":{"code":400,"message":"Image.load: Asset 'x' not found.","status":"INVALID_ARGUMENT"}}`, ErrBadRequest, "Asset 'x' not found"},
		{"forbidden", http.StatusForbidden, `{"error":{"code":403,"message":"project not registered"}}`, ErrForbidden, "project not registered"},
		{"rate limited", http.StatusTooManyRequests, `quota`, ErrTooManyRequests, "quota"},
		{"unavailable", http.StatusServiceUnavailable, ``, ErrUnavailable, "Service Unavailable"},
		{"internal", http.StatusInternalServerError, `{}`, ErrInternalServerError, "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fe := newFakeEngine(t)
			fe.compute = func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}

			_, err := newTestAdapter(t, fe).ComputeValue(context.Background(), ee.MustEncode(ee.Constant(1)))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestComputeValue_MalformedResponse(t *testing.T) {
	fe := newFakeEngine(t)
	fe.compute = func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}

	_, err := newTestAdapter(t, fe).ComputeValue(context.Background(), ee.MustEncode(ee.Constant(1)))
	assert.Error(t, err)
}

func TestComputeValue_ContextCanceled(t *testing.T) {
	fe := newFakeEngine(t)
	fe.compute = func(w http.ResponseWriter, r *http.Request) {
		// The server only notices the client going away once the body is consumed.
		_, _ = io.Copy(io.Discard, r.Body)
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := newTestAdapter(t, fe).ComputeValue(ctx, ee.MustEncode(ee.Constant(1)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

// ── CreateMap ───────────────────────────────────────────────────────────────

func TestCreateMap_Success(t *testing.T) {
	fe := newFakeEngine(t)
	fe.maps = func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer engine-token", r.Header.Get("Authorization"))

		body := decodeBody(t, r)
		assert.Equal(t, "AUTO_JPEG_PNG", body["fileFormat"])
		assert.Contains(t, body, "expression")

		vis := body["visualizationOptions"].(map[string]any)
		assert.Equal(t, []any{"008000", "FFFF00", "FF0000"}, vis["paletteColors"])
		assert.Equal(t, []any{map[string]any{"min": 0.0, "max": 1.0}}, vis["ranges"])

		_, _ = w.Write([]byte(`{"name":"projects/test-project/maps/abc123"}`))
	}

	a := newTestAdapter(t, fe)
	layer, err := a.CreateMap(context.Background(), ee.MustEncode(ee.LoadImage("x").Value()), models.VisParams{
		Min:     0,
		Max:     1,
		Palette: []string{"#008000", "FFFF00", "#FF0000"},
	})

	require.NoError(t, err)
	assert.Equal(t, "projects/test-project/maps/abc123", layer.Name)
	assert.Equal(t, fe.URL+"/v1/projects/test-project/maps/abc123/tiles/{z}/{x}/{y}", layer.URLFormat)
}

func TestCreateMap_MissingName(t *testing.T) {
	fe := newFakeEngine(t)
	fe.maps = func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}

	_, err := newTestAdapter(t, fe).CreateMap(context.Background(), ee.MustEncode(ee.Constant(1)), models.VisParams{})
	assert.ErrorIs(t, err, ErrInternalServerError)
}

func TestCreateMap_NotFound(t *testing.T) {
	fe := newFakeEngine(t)
	fe.maps = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}

	_, err := newTestAdapter(t, fe).CreateMap(context.Background(), ee.MustEncode(ee.Constant(1)), models.VisParams{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateMap_TokenFailure(t *testing.T) {
	var mapCalls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/token" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"message":"invalid_grant"}}`))
			return
		}
		mapCalls.Add(1)
	}))
	defer srv.Close()

	a, err := NewHTTPEngineAdapter(config.Engine{BaseURL: srv.URL, APIVersion: "v1", Project: "p"},
		testServiceAccount(t, srv.URL+"/token"))
	require.NoError(t, err)

	_, err = a.CreateMap(context.Background(), ee.MustEncode(ee.Constant(1)), models.VisParams{})
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Zero(t, mapCalls.Load())
}

// ── Degraded ────────────────────────────────────────────────────────────────

func TestDegradedAdapter(t *testing.T) {
	a := NewDegradedAdapter(ErrMalformedCredentials)
	assert.False(t, a.Authenticated())

	_, err := a.ComputeValue(context.Background(), ee.MustEncode(ee.Constant(1)))
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Contains(t, err.Error(), ErrMalformedCredentials.Error())

	_, err = a.CreateMap(context.Background(), nil, models.VisParams{})
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestDegradedAdapter_DefaultCause(t *testing.T) {
	_, err := NewDegradedAdapter(nil).ComputeValue(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Contains(t, err.Error(), ErrNoCredentials.Error())
}

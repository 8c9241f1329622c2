package backend

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	appErr "github.com/client-portal/engine/pkg/errors"
	"github.com/client-portal/engine/pkg/logger"
)

func TestMain(m *testing.M) {
	if _, err := logger.Init("error", "json"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestNewClientCleansBaseURL(t *testing.T) {
	c := NewClient(`"https://backend.example.com/"`, 0)
	require.True(t, c.Configured())
	require.Equal(t, "https://backend.example.com/api/jobs", c.URL("/api/jobs"))

	require.False(t, NewClient(`""`, 0).Configured())
}

func TestForwardRelaysStatusAndBody(t *testing.T) {
	var gotMethod, gotPath, gotBody, gotType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath, gotType = r.Method, r.URL.RequestURI(), r.Header.Get("Content-Type")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"job_id":"j1"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", time.Second)
	resp, err := c.Forward(context.Background(), http.MethodPost, DefaultPostPath, []byte(`{"url":"https://x"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusAccepted, resp.Status)
	require.JSONEq(t, `{"job_id":"j1"}`, string(resp.Body))
	require.Equal(t, "application/json", resp.ContentType)

	require.Equal(t, http.MethodPost, gotMethod)
	require.Equal(t, "/api/leads/process-url", gotPath)
	require.Equal(t, "application/json", gotType)
	require.JSONEq(t, `{"url":"https://x"}`, gotBody)
}

func TestForwardDoesNotRetryErrors(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"message":"down"}`))
	}))
	defer srv.Close()

	resp, err := NewClient(srv.URL, time.Second).Forward(context.Background(), http.MethodGet, "/api/jobs?id=1", nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadGateway, resp.Status)
	require.Equal(t, 1, calls)
}

func TestForwardTransportErrorCarriesDebugURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, time.Second).Forward(context.Background(), http.MethodGet, "/api/jobs", nil)
	require.True(t, appErr.IsCode(err, appErr.CodeUpstream))

	var ae *appErr.AppError
	require.ErrorAs(t, err, &ae)
	require.Equal(t, url+"/api/jobs", ae.Meta["debug_url"])
}

func TestForwardUnconfigured(t *testing.T) {
	_, err := NewClient("", 0).Forward(context.Background(), http.MethodGet, "/x", nil)
	require.True(t, appErr.IsCode(err, appErr.CodeInternal))
}

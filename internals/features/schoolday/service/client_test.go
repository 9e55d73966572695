// file: internals/features/schoolday/service/client_test.go
package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(srv *httptest.Server) *Client {
	return &Client{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		HTTP:    &http.Client{Timeout: 5 * time.Second},
	}
}

func TestFetchRoster(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/roster", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"teachers":[
			{"id":"t-1","full_name":"Maria Santos","email":"maria@example.edu","department":"CS","position":"Professor","hire_date":"2015-08-01","active":true},
			{"id":"t-2","full_name":"John Doe","email":"john@example.edu","department":"Math","position":"Lecturer","hire_date":"2020-01-15","active":false}
		]}`))
	}))
	defer srv.Close()

	entries, err := newTestClient(srv).FetchRoster(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "maria@example.edu", entries[0].Email)
	assert.True(t, entries[0].Active)
	assert.False(t, entries[1].Active)
}

func TestFetchEvaluations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/evaluations", r.URL.Path)
		assert.Equal(t, "2025", r.URL.Query().Get("year"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"evaluations":[
			{"teacher_email":"maria@example.edu","semester":"fall","year":2025,
			 "overall":4.2,"teaching_quality":4.4,"content":4.0,"availability":4.1,
			 "response_count":38,"breakdown":{"q1":4.5}}
		]}`))
	}))
	defer srv.Close()

	entries, err := newTestClient(srv).FetchEvaluations(context.Background(), 2025)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "fall", entries[0].Semester)
	assert.Equal(t, 38, entries[0].ResponseCount)
	assert.InDelta(t, 4.2, entries[0].Overall, 1e-9)
	assert.NotEmpty(t, entries[0].Breakdown)
}

func TestClientUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).FetchRoster(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestClientBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"teachers": [`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv).FetchRoster(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

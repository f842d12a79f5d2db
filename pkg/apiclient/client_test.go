package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func writeEnvelope(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"success":    statusCode < 400,
		"statusCode": statusCode,
		"message":    message,
		"data":       data,
	})
}

func TestClient_DecodesEnvelopeData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/blogs/stats", r.URL.Path)
		writeEnvelope(w, http.StatusOK, "Blog stats fetched successfully", BlogStats{
			TotalBlogs:     12,
			PublishedBlogs: 9,
			DraftBlogs:     3,
			TotalViews:     400,
		})
	}))
	defer server.Close()

	client, err := New(server.URL)
	assert.NoError(t, err)

	stats, err := client.BlogStats(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalBlogs)
	assert.Equal(t, int64(400), stats.TotalViews)
}

func TestClient_AttachesToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer my-token", r.Header.Get("Authorization"))
		writeEnvelope(w, http.StatusOK, "ok", nil)
	}))
	defer server.Close()

	client, err := New(server.URL)
	assert.NoError(t, err)
	client.Tokens().Set("my-token")

	assert.NoError(t, client.Get(context.Background(), "/auth/profile", nil))
}

func TestClient_TypedError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusNotFound, "Blog not found", nil)
	}))
	defer server.Close()

	client, err := New(server.URL)
	assert.NoError(t, err)

	_, err = client.GetBlog(context.Background(), "missing")
	apiErr, ok := err.(*APIError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Blog not found", apiErr.Message)
}

func TestClient_UnauthorizedClearsToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, "Token expired", nil)
	}))
	defer server.Close()

	client, err := New(server.URL)
	assert.NoError(t, err)
	client.Tokens().Set("stale-token")

	_, err = client.Profile(context.Background())
	assert.Error(t, err)
	assert.Empty(t, client.Tokens().Get())
}

func TestClient_LoginStoresToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "owner@example.com", body["email"])
		writeEnvelope(w, http.StatusOK, "Login successful", Session{
			AccessToken:  "fresh-token",
			RefreshToken: "refresh-token",
			User:         &Owner{ID: 1, Email: "owner@example.com"},
		})
	}))
	defer server.Close()

	client, err := New(server.URL)
	assert.NoError(t, err)

	session, err := client.Login(context.Background(), "owner@example.com", "Secret@123")
	assert.NoError(t, err)
	assert.Equal(t, "fresh-token", session.AccessToken)
	assert.Equal(t, "fresh-token", client.Tokens().Get())
}

func TestClient_ListParamsEncoding(t *testing.T) {
	published := true
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "5", q.Get("limit"))
		assert.Equal(t, "go,testing", q.Get("tags"))
		assert.Equal(t, "true", q.Get("isPublished"))
		writeEnvelope(w, http.StatusOK, "Blogs fetched successfully", List[Blog]{
			Data:       []Blog{{ID: 1}},
			Pagination: Pagination{Page: 2, Limit: 5, Total: 6, TotalPages: 2},
		})
	}))
	defer server.Close()

	client, err := New(server.URL)
	assert.NoError(t, err)

	list, err := client.ListBlogs(context.Background(), ListParams{
		Page:        2,
		Limit:       5,
		Tags:        []string{"go", "testing"},
		IsPublished: &published,
	})
	assert.NoError(t, err)
	assert.Len(t, list.Data, 1)
	assert.Equal(t, 2, list.Pagination.TotalPages)
}

func TestDashboardWatcher(t *testing.T) {
	var polls int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/blogs/stats":
			atomic.AddInt64(&polls, 1)
			writeEnvelope(w, http.StatusOK, "ok", BlogStats{TotalBlogs: 1})
		case "/projects/stats":
			writeEnvelope(w, http.StatusOK, "ok", ProjectStats{TotalProjects: 2})
		case "/contact/stats":
			writeEnvelope(w, http.StatusOK, "ok", ContactStats{Total: 3, Unread: 1, Read: 2})
		case "/contact":
			writeEnvelope(w, http.StatusOK, "ok", List[ContactMessage]{Data: []ContactMessage{{ID: 1}}})
		default:
			writeEnvelope(w, http.StatusNotFound, "not found", nil)
		}
	}))
	defer server.Close()

	client, err := New(server.URL)
	assert.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	watcher := client.NewDashboardWatcher(20 * time.Millisecond)
	updates := watcher.Watch(ctx)

	// first poll fires immediately, then once per tick
	first := <-updates
	assert.NoError(t, first.Err)
	assert.Equal(t, int64(1), first.Snapshot.Blogs.TotalBlogs)
	assert.Equal(t, int64(2), first.Snapshot.Projects.TotalProjects)
	assert.Equal(t, int64(1), first.Snapshot.Messages.Unread)
	assert.Len(t, first.Snapshot.Unread, 1)

	second := <-updates
	assert.NoError(t, second.Err)
	assert.GreaterOrEqual(t, atomic.LoadInt64(&polls), int64(2))

	cancel()
	for range updates {
		// drain until the watcher closes the channel on cancellation
	}
}

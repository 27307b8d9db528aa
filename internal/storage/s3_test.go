package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, endpoint string) *S3Store {
	t.Helper()
	store, err := NewS3Store(context.Background(), Config{
		AccessKey:      "test-access",
		SecretKey:      "test-secret",
		Region:         "us-east-1",
		Bucket:         "test-bucket",
		Endpoint:       endpoint,
		ForcePathStyle: true,
	}, NewTransport(nil, 5*time.Second))
	require.NoError(t, err)
	return store
}

func TestS3Store_RequiresBucket(t *testing.T) {
	_, err := NewS3Store(context.Background(), Config{Region: "us-east-1"}, nil)
	require.Error(t, err)
}

func TestS3Store_Put_SendsObjectAndReturnsLocation(t *testing.T) {
	var (
		gotMethod      string
		gotPath        string
		gotContentType string
		gotBody        []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("ETag", `"abc"`)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	store := newTestStore(t, srv.URL)

	loc, err := store.Put(context.Background(), "media/a.png", []byte("png-bytes"), "image/png")
	require.NoError(t, err)

	require.Equal(t, http.MethodPut, gotMethod)
	require.Equal(t, "/test-bucket/media/a.png", gotPath)
	require.Equal(t, "image/png", gotContentType)
	require.Equal(t, "png-bytes", string(gotBody))
	require.Equal(t, srv.URL+"/test-bucket/media/a.png", loc)
}

func TestS3Store_Put_ServerErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "denied", http.StatusForbidden)
	}))
	defer srv.Close()

	store := newTestStore(t, srv.URL)

	_, err := store.Put(context.Background(), "k", []byte("x"), "")
	require.Error(t, err)
}

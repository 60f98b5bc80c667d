package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPResolver_Resolve_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "jsonv2", r.URL.Query().Get("format"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"display_name": "Jl. Jend. Sudirman No.1, Jakarta"}`))
	}))
	defer srv.Close()

	resolver := NewHTTPResolver(srv.URL)
	address, err := resolver.Resolve(context.Background(), -6.2088, 106.8456)

	require.NoError(t, err)
	assert.Equal(t, "Jl. Jend. Sudirman No.1, Jakarta", address)
}

func TestHTTPResolver_Resolve_Non2xx(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	resolver := NewHTTPResolver(srv.URL)
	_, err := resolver.Resolve(context.Background(), -6.2088, 106.8456)

	assert.Error(t, err)
}

func TestHTTPResolver_Resolve_EmptyAddress(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	resolver := NewHTTPResolver(srv.URL)
	_, err := resolver.Resolve(context.Background(), -6.2088, 106.8456)

	assert.Error(t, err)
}

func TestHTTPResolver_Resolve_ServerDown(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	resolver := NewHTTPResolver(srv.URL)
	_, err := resolver.Resolve(context.Background(), -6.2088, 106.8456)

	assert.Error(t, err)
}

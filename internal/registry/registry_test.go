package registry_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackforge/forgectl/internal/registry"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *registry.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return registry.NewClient(nil, srv.Client()).WithBaseURL(srv.URL)
}

func TestLookup(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/acme/starter-express", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"full_name":"acme/starter-express","default_branch":"main","clone_url":"https://github.com/acme/starter-express.git"}`))
	})

	repo, err := client.Lookup(context.Background(), "acme/starter-express")
	require.NoError(t, err)
	assert.Equal(t, "main", repo.DefaultBranch)
	assert.Equal(t, "https://github.com/acme/starter-express.git", repo.CloneURL)
}

func TestLookupNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.Lookup(context.Background(), "acme/missing")
	require.Error(t, err)
	assert.True(t, registry.IsNotFound(err))
}

func TestLookupServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Lookup(context.Background(), "acme/broken")
	require.Error(t, err)
	assert.False(t, registry.IsNotFound(err))
}

func TestLookupRejectsBadSlugs(t *testing.T) {
	client := registry.NewClient(nil, nil)
	for _, slug := range []string{"", "noslash", "a/b/c", "/b", "a/"} {
		_, err := client.Lookup(context.Background(), slug)
		assert.Error(t, err, "slug %q", slug)
	}
}

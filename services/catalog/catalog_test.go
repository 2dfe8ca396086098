package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStub(t *testing.T, handler http.HandlerFunc) *Api {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewWithURL(srv.URL, srv.Client())
}

func TestRemoteError(t *testing.T) {
	ctx := context.Background()

	t.Run("server message is surfaced", func(t *testing.T) {
		api := newStub(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "category already exists"})
		})

		_, err := NewCategories(api).Create(ctx, &Category{Name: "Action"})

		var re *RemoteError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, http.StatusConflict, re.Status)
		assert.Equal(t, "category already exists", re.Message)
	})

	t.Run("body without a message falls back to the generic one", func(t *testing.T) {
		api := newStub(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := NewCategories(api).Get(ctx, 1)

		var re *RemoteError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, http.StatusInternalServerError, re.Status)
		assert.Equal(t, ConnectionFailureMessage, re.Message)
	})

	t.Run("unreachable service reports status zero", func(t *testing.T) {
		api := NewWithURL("http://127.0.0.1:1", http.DefaultClient)

		_, err := NewCategories(api).List(ctx)

		var re *RemoteError
		require.ErrorAs(t, err, &re)
		assert.Zero(t, re.Status)
		assert.Equal(t, ConnectionFailureMessage, re.Message)
	})
}

func TestCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("list propagates failures", func(t *testing.T) {
		api := newStub(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		out, err := NewCategories(api).List(ctx)
		require.Error(t, err)
		assert.Nil(t, out)
	})

	t.Run("list decodes the collection", func(t *testing.T) {
		api := newStub(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/categories", r.URL.Path)
			_ = json.NewEncoder(w).Encode([]Category{{ID: 1, Name: "Action"}})
		})

		out, err := NewCategories(api).List(ctx)
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "Action", out[0].Name)
	})
}

func TestVideosListDegradesToEmpty(t *testing.T) {
	ctx := context.Background()

	api := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	out := NewVideos(api).List(ctx)
	assert.Empty(t, out)
}

func TestEpisodes(t *testing.T) {
	ctx := context.Background()

	t.Run("list is scoped to the video", func(t *testing.T) {
		api := newStub(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/episodes/video/7", r.URL.Path)
			_ = json.NewEncoder(w).Encode([]Episode{{ID: 1, NumEpisode: 1, LinkEpisode: "https://example.com/e1"}})
		})

		out := NewEpisodes(api).ListByVideo(ctx, 7)
		require.Len(t, out, 1)
		assert.Equal(t, 1, out[0].NumEpisode)
	})

	t.Run("list degrades to empty on failure", func(t *testing.T) {
		api := newStub(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		out := NewEpisodes(api).ListByVideo(ctx, 7)
		assert.Empty(t, out)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("success yields token and role", func(t *testing.T) {
		api := newStub(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/auth/login", r.URL.Path)
			var creds Credentials
			require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
			assert.Equal(t, "admin", creds.Username)
			_ = json.NewEncoder(w).Encode(LoginResult{Token: "t0ken", Role: "ROLE_ADMIN"})
		})

		out, err := api.Login(ctx, "admin", "secret")
		require.NoError(t, err)
		assert.Equal(t, "t0ken", out.Token)
		assert.Equal(t, "ROLE_ADMIN", out.Role)
	})

	t.Run("rejected credentials surface the server message", func(t *testing.T) {
		api := newStub(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "bad credentials"})
		})

		out, err := api.Login(ctx, "admin", "wrong")
		require.Error(t, err)
		assert.Nil(t, out)

		var re *RemoteError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, "bad credentials", re.Message)
	})
}

package postgrest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-clients/internal/domain/clients"
)

func newTestRepo(t *testing.T, h http.HandlerFunc) *ClientsRepo {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	repo, err := NewClientsRepo(Config{BaseURL: srv.URL, APIKey: "anon-key", Timeout: time.Second})
	require.NoError(t, err)
	return repo
}

func TestNewClientsRepo_RequiresConfig(t *testing.T) {
	_, err := NewClientsRepo(Config{BaseURL: "https://x.supabase.co"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestListNewestFirst_RequestShapeAndDecode(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/rest/v1/clients", r.URL.Path)
		assert.Equal(t, "*", r.URL.Query().Get("select"))
		assert.Equal(t, "created_at.desc", r.URL.Query().Get("order"))
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer anon-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[
			{"id": 7, "animal": "puppy", "created_at": "2025-12-22T10:05:00.123456+00:00"},
			{"id": "b1e2", "animal": "cat", "created_at": "2025-12-22T10:00:00"}
		]`)
	})

	got, err := repo.ListNewestFirst(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "7", got[0].ID)
	assert.Equal(t, clients.AnimalPuppy, got[0].Animal)
	assert.Equal(t, 2025, got[0].CreatedAt.Year())
	assert.Equal(t, "b1e2", got[1].ID)
	assert.Equal(t, time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC), got[1].CreatedAt)
}

func TestListNewestFirst_EmptyTable(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[]`)
	})

	got, err := repo.ListNewestFirst(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListNewestFirst_LargeTableLoadsWhole(t *testing.T) {
	const total = 15000
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, "[")
		for i := 0; i < total; i++ {
			if i > 0 {
				_, _ = io.WriteString(w, ",")
			}
			_, _ = fmt.Fprintf(w, `{"id":%d,"animal":"puppy","created_at":"2025-12-22T10:05:00.123456+00:00"}`, total-i)
		}
		_, _ = io.WriteString(w, "]")
	})

	got, err := repo.ListNewestFirst(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, total)
	assert.Equal(t, "1", got[total-1].ID)
}

func TestCreate_SendsSingleRowInsert(t *testing.T) {
	var body []map[string]string
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/v1/clients", r.URL.Path)
		assert.Equal(t, "return=minimal", r.Header.Get("Prefer"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
	})

	require.NoError(t, repo.Create(context.Background(), clients.NewClient{Animal: clients.AnimalTurtle}))
	assert.Equal(t, []map[string]string{{"animal": "turtle"}}, body)
}

func TestErrors_AreMapped(t *testing.T) {
	status := http.StatusUnauthorized
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"invalid api key"}`, status)
	})

	err := repo.Create(context.Background(), clients.NewClient{Animal: clients.AnimalCat})
	assert.ErrorIs(t, err, ErrUnauthorized)

	status = http.StatusInternalServerError
	_, err = repo.ListNewestFirst(context.Background())
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestRowID_Null(t *testing.T) {
	var r row
	require.NoError(t, json.Unmarshal([]byte(`{"id":null,"animal":"cat","created_at":null}`), &r))
	assert.Equal(t, rowID(""), r.ID)
	assert.True(t, time.Time(r.CreatedAt).IsZero())
}

package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo_SendsHeadersQueryAndBody(t *testing.T) {
	var (
		gotQuery   url.Values
		gotAPIKey  string
		gotOver    string
		gotBody    map[string]string
		gotContent string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotAPIKey = r.Header.Get("apikey")
		gotOver = r.Header.Get("X-Override")
		gotContent = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c, err := NewWithBaseURL(srv.URL+"/", time.Second)
	require.NoError(t, err)
	c.Headers = map[string]string{"apikey": "k1", "X-Override": "base"}

	var out struct {
		OK bool `json:"ok"`
	}
	err = c.Do(context.Background(), Request{
		Method:  http.MethodPost,
		Path:    "rest/v1/clients",
		Query:   url.Values{"select": {"*"}},
		Headers: map[string]string{"X-Override": "req"},
		Body:    map[string]string{"animal": "cat"},
	}, &out)
	require.NoError(t, err)

	assert.True(t, out.OK)
	assert.Equal(t, "*", gotQuery.Get("select"))
	assert.Equal(t, "k1", gotAPIKey)
	assert.Equal(t, "req", gotOver)
	assert.Equal(t, "application/json", gotContent)
	assert.Equal(t, "cat", gotBody["animal"])
}

func TestDo_Non2xxReturnsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "permission denied", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(time.Second)
	err := c.Do(context.Background(), Request{Path: srv.URL + "/x"}, nil)
	require.Error(t, err)

	var he *HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusUnauthorized, he.StatusCode)
	assert.Equal(t, "permission denied", he.Body)
	assert.Equal(t, http.StatusUnauthorized, StatusCode(err))
}

func TestDo_EmptyBodyWithOutIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := New(time.Second)
	var out []map[string]any
	require.NoError(t, c.Do(context.Background(), Request{Method: http.MethodPost, Path: srv.URL}, &out))
	assert.Nil(t, out)
}

func TestDo_LargeSuccessBodyIsDecodedWhole(t *testing.T) {
	item := map[string]string{"animal": strings.Repeat("x", 1024)}
	items := make([]map[string]string, 2048) // ~2MB
	for i := range items {
		items[i] = item
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(items)
	}))
	defer srv.Close()

	var out []map[string]string
	require.NoError(t, New(time.Second).Do(context.Background(), Request{Path: srv.URL}, &out))
	assert.Len(t, out, len(items))
}

func TestDo_Non2xxBodyIsCapped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(strings.Repeat("e", maxErrorBodyBytes+10)))
	}))
	defer srv.Close()

	err := New(time.Second).Do(context.Background(), Request{Path: srv.URL}, nil)

	var he *HTTPError
	require.ErrorAs(t, err, &he)
	assert.Len(t, he.Body, maxErrorBodyBytes)
}

func TestResolveURL(t *testing.T) {
	c := New(0)
	_, err := c.resolveURL("/rel", nil)
	assert.Error(t, err, "relative path without BaseURL")

	_, err = c.resolveURL("  ", nil)
	assert.Error(t, err)

	c.BaseURL = "http://example.test"
	u, err := c.resolveURL("rest/v1/clients?select=*", url.Values{"order": {"created_at.desc"}})
	require.NoError(t, err)
	assert.Equal(t, "http://example.test/rest/v1/clients?select=*&order=created_at.desc", u)
}

func TestNewWithBaseURL_RejectsGarbage(t *testing.T) {
	_, err := NewWithBaseURL("::not a url", time.Second)
	assert.Error(t, err)
}

package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pet-clients/internal/router"
)

type clientJSON struct {
	ID     string `json:"id"`
	Animal string `json:"animal"`
	Emoji  string `json:"emoji"`
}

func TestHTTP_EndToEnd_AddThenList(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// 1) Tabla vacía
	{
		st, body := doReq(t, ts.URL, "GET", "/clients", nil)
		if st != http.StatusOK || strings.TrimSpace(string(body)) != "[]" {
			t.Fatalf("expected empty list, got %d body=%s", st, string(body))
		}
	}

	// 2) Alta de cat y puppy
	createClient(t, ts.URL, "cat")
	list := createClient(t, ts.URL, "puppy")
	if len(list) != 2 || list[0].Animal != "puppy" || list[1].Animal != "cat" {
		t.Fatalf("expected [puppy cat], got %#v", list)
	}

	// 3) Búsqueda sin distinguir mayúsculas
	{
		st, body := doReq(t, ts.URL, "GET", "/clients?search=PUP", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		var got []clientJSON
		_ = json.Unmarshal(body, &got)
		if len(got) != 1 || got[0].Emoji != "🐕" {
			t.Fatalf("expected only puppy, got %#v", got)
		}
	}

	// 4) La página muestra ambos
	{
		st, body := doReq(t, ts.URL, "GET", "/", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 page, got %d", st)
		}
		if !strings.Contains(string(body), "🐕") || !strings.Contains(string(body), "🐱") {
			t.Fatalf("expected both tiles in page")
		}
	}
}

func TestHTTP_CreateClient_RejectsEmptyAnimal(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, _ := doReq(t, ts.URL, "POST", "/clients", map[string]any{"animal": ""})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", st)
	}
}

func TestHTTP_HealthAndSwagger(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/health", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected ok, got %d %q", st, string(body))
	}

	st, body = doReq(t, ts.URL, "GET", "/swagger/doc.json", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 swagger doc, got %d", st)
	}
	if !strings.Contains(string(body), `"/clients"`) {
		t.Fatalf("swagger doc missing /clients path")
	}
}

func createClient(t *testing.T, baseURL, animal string) []clientJSON {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/clients", map[string]any{"animal": animal})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create client, got %d body=%s", st, string(body))
	}

	var out []clientJSON
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("create client: decode: %v body=%s", err, string(body))
	}
	return out
}

func doReq(t *testing.T, baseURL, method, path string, payload any) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, b
}

package postgrest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pet-clients/internal/domain/clients"
	"pet-clients/internal/platform/httpclient"
)

var (
	ErrNotConfigured = errors.New("postgrest client not configured")
	ErrUnauthorized  = errors.New("postgrest unauthorized")
	ErrUpstream      = errors.New("postgrest upstream error")
)

const (
	DefaultTable = "clients"
	restPrefix   = "/rest/v1/"
)

// Config del servicio tabular remoto (API REST de Supabase / PostgREST).
// Se arma una sola vez al arrancar el proceso.
type Config struct {
	BaseURL string // p.ej. https://<proyecto>.supabase.co
	APIKey  string // anon key

	// Opcional: nombre de la tabla. Default "clients".
	Table string

	Timeout time.Duration

	// Opcional: transport para tests.
	Transport http.RoundTripper
}

func (c Config) IsConfigured() bool {
	return strings.TrimSpace(c.BaseURL) != "" && strings.TrimSpace(c.APIKey) != ""
}

// ClientsRepo implementa clients.Repository contra /rest/v1/<tabla>.
type ClientsRepo struct {
	http  *httpclient.Client
	table string
}

var _ clients.Repository = (*ClientsRepo)(nil)

func NewClientsRepo(cfg Config) (*ClientsRepo, error) {
	if !cfg.IsConfigured() {
		return nil, ErrNotConfigured
	}

	hc, err := httpclient.NewWithBaseURL(strings.TrimSpace(cfg.BaseURL), cfg.Timeout)
	if err != nil {
		return nil, err
	}
	if cfg.Transport != nil {
		hc.HTTP.Transport = cfg.Transport
	}

	key := strings.TrimSpace(cfg.APIKey)
	hc.Headers = map[string]string{
		"apikey":        key,
		"Authorization": "Bearer " + key,
	}

	table := strings.TrimSpace(cfg.Table)
	if table == "" {
		table = DefaultTable
	}

	return &ClientsRepo{http: hc, table: table}, nil
}

// row es la forma JSON de una fila. id puede venir como número (identity) o string (uuid).
type row struct {
	ID        rowID   `json:"id"`
	Animal    string  `json:"animal"`
	CreatedAt rowTime `json:"created_at"`
}

// ListNewestFirst equivale a select('*').order('created_at', {ascending: false}).
func (r *ClientsRepo) ListNewestFirst(ctx context.Context) ([]clients.Client, error) {
	var rows []row
	err := r.http.Do(ctx, httpclient.Request{
		Method: http.MethodGet,
		Path:   restPrefix + r.table,
		Query: url.Values{
			"select": {"*"},
			"order":  {"created_at.desc"},
		},
	}, &rows)
	if err != nil {
		return nil, mapError(err)
	}

	out := make([]clients.Client, 0, len(rows))
	for _, rw := range rows {
		out = append(out, clients.Client{
			ID:        string(rw.ID),
			Animal:    clients.Animal(rw.Animal),
			CreatedAt: time.Time(rw.CreatedAt),
		})
	}
	return out, nil
}

// Create equivale a insert([{animal}]). No pedimos la fila de vuelta.
func (r *ClientsRepo) Create(ctx context.Context, in clients.NewClient) error {
	err := r.http.Do(ctx, httpclient.Request{
		Method:  http.MethodPost,
		Path:    restPrefix + r.table,
		Headers: map[string]string{"Prefer": "return=minimal"},
		Body:    []map[string]string{{"animal": string(in.Animal)}},
	}, nil)
	if err != nil {
		return mapError(err)
	}
	return nil
}

func mapError(err error) error {
	switch httpclient.StatusCode(err) {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	default:
		return fmt.Errorf("%w: %w", ErrUpstream, err)
	}
}

type rowID string

func (id *rowID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*id = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = rowID(s)
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("id: %w", err)
		}
		*id = rowID(n.String())
	}
	return nil
}

// rowTime acepta timestamptz (RFC3339) y timestamp sin zona, que se asume UTC.
type rowTime time.Time

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999-07",
	"2006-01-02 15:04:05.999999999",
}

func (t *rowTime) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*t = rowTime{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("created_at: %w", err)
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			*t = rowTime(parsed)
			return nil
		}
	}
	return fmt.Errorf("created_at: unsupported timestamp %q", s)
}

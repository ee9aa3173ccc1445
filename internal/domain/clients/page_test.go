package clients

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func renderString(t *testing.T, s Store) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Page(s).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func TestPage_EscapesInterpolatedValues(t *testing.T) {
	s := newStore()
	s.SearchTerm = `"><img src=x>`
	s.Clients = []Client{{ID: `<b>1</b>`, Animal: AnimalCat}}

	body := renderString(t, s)

	if strings.Contains(body, `<img src=x>`) || strings.Contains(body, `<b>1</b>`) {
		t.Fatalf("interpolated values must be escaped, body=%s", body)
	}
	if !strings.Contains(body, `value="&#34;&gt;&lt;img src=x&gt;"`) {
		t.Fatalf("expected escaped search value, body=%s", body)
	}
	if !strings.Contains(body, `data-id="&lt;b&gt;1&lt;/b&gt;"`) {
		t.Fatalf("expected escaped data-id, body=%s", body)
	}
}

func TestPage_AddButtonDisabledUntilSelection(t *testing.T) {
	s := newStore()
	s.ShowAddModal = true

	body := renderString(t, s)
	if !strings.Contains(body, `type="submit" disabled>`) {
		t.Fatalf("add button should be disabled with nothing selected")
	}
	if strings.Contains(body, "Could not add client") {
		t.Fatalf("no banner without a write error")
	}

	s.SelectedAnimal = AnimalTurtle
	s.LastWriteError = &WriteFailure{Err: errors.New("down")}
	body = renderString(t, s)

	if strings.Contains(body, ` disabled>`) {
		t.Fatalf("add button should be enabled once an animal is selected")
	}
	if strings.Count(body, `class="tile selected"`) != 1 {
		t.Fatalf("exactly one choice should be selected, body=%s", body)
	}
	if !strings.Contains(body, "Could not add client, please try again.") {
		t.Fatalf("expected write error banner")
	}
}

func TestPage_ModalLinksKeepSearch(t *testing.T) {
	s := newStore()
	s.ShowAddModal = true
	s.SearchTerm = "ca"

	body := renderString(t, s)
	if !strings.Contains(body, `href="/?add=1&amp;animal=cat&amp;search=ca"`) {
		t.Fatalf("choice links should keep the search term, body=%s", body)
	}
	if !strings.Contains(body, `href="/?search=ca">Cancel</a>`) {
		t.Fatalf("cancel should keep the search term, body=%s", body)
	}
}

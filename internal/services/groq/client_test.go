package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
)

func TestNewClientRequiresKey(t *testing.T) {
	if _, err := NewClient("  "); err == nil {
		t.Fatal("expected error for blank api key")
	}
}

func chatServer(t *testing.T, reply string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("unexpected path %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		response := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": reply}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}))
}

func TestTranslate(t *testing.T) {
	server := chatServer(t, "שלום עולם")
	defer server.Close()

	client, err := NewClient("test-key", WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	got, err := client.Translate(context.Background(), "Hello world", "Hebrew")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "שלום עולם" {
		t.Errorf("translation = %q", got)
	}
}

func TestTranslateEmptyText(t *testing.T) {
	client, err := NewClient("test-key")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := client.Translate(context.Background(), "   ", "Hebrew"); err == nil {
		t.Error("expected error for empty text")
	}
}

func TestTranslateSegments(t *testing.T) {
	server := chatServer(t, "1. שלום\n2. להתראות\n")
	defer server.Close()

	client, err := NewClient("test-key", WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	got, err := client.TranslateSegments(context.Background(), []string{"Hi", "Bye"}, "Hebrew")
	if err != nil {
		t.Fatalf("TranslateSegments: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"שלום", "להתראות"}) {
		t.Errorf("segments = %#v", got)
	}
}

func TestTranslateSegmentsCountMismatch(t *testing.T) {
	server := chatServer(t, "1. שלום\n")
	defer server.Close()

	client, err := NewClient("test-key", WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := client.TranslateSegments(context.Background(), []string{"Hi", "Bye"}, "Hebrew"); err == nil {
		t.Error("expected error when response drops lines")
	}
}

func TestNumberEntries(t *testing.T) {
	got := numberEntries([]string{"one", "two\nwrapped"})
	want := "1. one\n2. two wrapped\n"
	if got != want {
		t.Errorf("numberEntries = %q, want %q", got, want)
	}
}

func TestParseNumbered(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{"plain", "1. alpha\n2. beta", []string{"alpha", "beta"}, false},
		{"with chatter", "Sure!\n1) alpha\n\n2) beta\n", []string{"alpha", "beta"}, false},
		{"colon style", "1: alpha", []string{"alpha"}, false},
		{"out of order", "2. beta\n1. alpha", nil, true},
		{"no numbers", "alpha beta", nil, true},
	}
	for _, tc := range tests {
		got, err := parseNumbered(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("%s: expected error", tc.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: %v", tc.name, err)
			continue
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%s: got %#v, want %#v", tc.name, got, tc.want)
		}
	}
}

package qwen

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGenerateContent(t *testing.T) {
	var got openAIRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer k" {
			t.Errorf("Authorization = %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatal(err)
		}
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"members\":[]}"}}],
			"usage":{"prompt_tokens":12,"completion_tokens":3,"total_tokens":15}}`))
	}))
	defer srv.Close()

	c, err := New(Config{APIKey: "k", Model: "qwen-test", BaseURL: srv.URL + "/"})
	if err != nil {
		t.Fatal(err)
	}
	resp, err := c.GenerateContent(context.Background(), &Request{System: "sys", Prompt: "hi", JSON: true})
	if err != nil {
		t.Fatalf("GenerateContent() error = %v", err)
	}

	want := openAIRequest{
		Model:          "qwen-test",
		Messages:       []openAIMessage{{Role: "system", Content: "sys"}, {Role: "user", Content: "hi"}},
		ResponseFormat: &openAIResponseFormat{Type: "json_object"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("request mismatch (-want +got):\n%s", diff)
	}
	if resp.Text != `{"members":[]}` || resp.Usage.TotalTokens != 15 {
		t.Errorf("response = %+v", resp)
	}
}

func TestGenerateContent_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Authorization"), "empty") {
			_, _ = w.Write([]byte(`{"choices":[]}`))
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"bad key","type":"auth"}}`))
	}))
	defer srv.Close()

	bad, _ := New(Config{APIKey: "nope", BaseURL: srv.URL})
	if _, err := bad.GenerateContent(context.Background(), &Request{Prompt: "x"}); err == nil || !strings.Contains(err.Error(), "bad key") {
		t.Errorf("error = %v, want API error", err)
	}

	empty, _ := New(Config{APIKey: "empty", BaseURL: srv.URL})
	if _, err := empty.GenerateContent(context.Background(), &Request{Prompt: "x"}); !errors.Is(err, ErrNoChoices) {
		t.Errorf("error = %v, want ErrNoChoices", err)
	}
	if _, err := empty.GenerateContent(context.Background(), &Request{}); !errors.Is(err, ErrEmptyPrompt) {
		t.Errorf("error = %v, want ErrEmptyPrompt", err)
	}
	if _, err := New(Config{}); !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("error = %v, want ErrMissingAPIKey", err)
	}
}

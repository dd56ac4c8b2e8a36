package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fortitwin/internal/config"
)

func geminiTestConfig(baseURL string) *config.AIConfig {
	return &config.AIConfig{
		Provider:  config.ProviderGemini,
		APIKey:    "test-key",
		BaseURL:   baseURL,
		Model:     "gemini-1.5-flash",
		TimeoutMS: 2000,
	}
}

func geminiResponse(text string) string {
	return `{"candidates":[{"content":{"parts":[{"text":` + mustJSONString(text) + `}]}}]}`
}

func mustJSONString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestGeminiClient_Generate(t *testing.T) {
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-key" {
			t.Fatalf("missing api key, url %s", r.URL.String())
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(geminiResponse("  What was the hardest bug?  ")))
	}))
	defer srv.Close()

	c := NewGeminiClient(geminiTestConfig(srv.URL))
	got, err := c.Generate(context.Background(), "system text", "user text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "What was the hardest bug?" {
		t.Fatalf("got %q", got)
	}
	if gotBody["contents"] == nil {
		t.Fatal("request body missing contents")
	}
}

func TestGeminiClient_AuthFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewGeminiClient(geminiTestConfig(srv.URL))
	_, err := c.Generate(context.Background(), "s", "u")
	if err == nil {
		t.Fatal("expected error")
	}
	if failureKind(err) != FailureAuth {
		t.Fatalf("expected auth kind, got %s", failureKind(err))
	}
}

func TestGeminiClient_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewGeminiClient(geminiTestConfig(srv.URL))
	_, err := c.Generate(context.Background(), "s", "u")
	if failureKind(err) != FailureTransport {
		t.Fatalf("expected transport kind, got %v", err)
	}
}

func TestGeminiClient_DecodeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>nope</html>"))
	}))
	defer srv.Close()

	c := NewGeminiClient(geminiTestConfig(srv.URL))
	_, err := c.Generate(context.Background(), "s", "u")
	if failureKind(err) != FailureDecode {
		t.Fatalf("expected decode kind, got %v", err)
	}
}

func TestGeminiClient_EmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	c := NewGeminiClient(geminiTestConfig(srv.URL))
	_, err := c.Generate(context.Background(), "s", "u")
	if failureKind(err) != FailureDecode {
		t.Fatalf("expected decode kind, got %v", err)
	}
}

func TestGeminiClient_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse everything

	c := NewGeminiClient(geminiTestConfig(srv.URL))
	_, err := c.Generate(context.Background(), "s", "u")
	if failureKind(err) != FailureTransport {
		t.Fatalf("expected transport kind, got %v", err)
	}
}

package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestOpenAIComplete(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Fatalf("expected auth header")
		}
		if r.URL.Path != "/chat/completions" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		var req openAIRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Model != "gpt-test" {
			t.Fatalf("unexpected model %q", req.Model)
		}
		if req.Temperature != 1.1 {
			t.Fatalf("unexpected temperature %v", req.Temperature)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != RoleSystem {
			t.Fatalf("unexpected messages %+v", req.Messages)
		}
		fmt.Fprint(w, `{"choices":[{"message":{"content":"  {\"caption\":\"B\"}  "},"finish_reason":"stop"}]}`)
	}))
	defer server.Close()

	provider := NewOpenAI(Config{
		APIURL: server.URL,
		APIKey: "test-key",
		Model:  "gpt-test",
	})

	reply, err := provider.Complete(context.Background(), []Message{
		{Role: RoleSystem, Content: "You are a social media manager."},
		{Role: RoleUser, Content: "generate a post"},
	}, 1.1)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if reply != `{"caption":"B"}` {
		t.Fatalf("unexpected reply %q", reply)
	}
}

func TestOpenAICompleteErrorStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error":{"message":"rate limited"}}`)
	}))
	defer server.Close()

	provider := NewOpenAI(Config{APIURL: server.URL, Model: "gpt-test"})

	_, err := provider.Complete(context.Background(), []Message{{Role: RoleUser, Content: "hi"}}, 1.0)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Fatalf("expected status in error, got %v", err)
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T", err)
	}
	if !apiErr.Temporary() {
		t.Fatal("throttling should be retryable")
	}
}

func TestOpenAICompleteBadRequestIsPermanent(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":{"message":"invalid api key"}}`)
	}))
	defer server.Close()

	provider := NewOpenAI(Config{APIURL: server.URL, Model: "gpt-test"})

	_, err := provider.Complete(context.Background(), []Message{{Role: RoleUser, Content: "hi"}}, 1.0)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Temporary() {
		t.Fatal("auth failure must not be retried")
	}
}

func TestOpenAICompleteNoChoices(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"choices":[]}`)
	}))
	defer server.Close()

	provider := NewOpenAI(Config{APIURL: server.URL, Model: "gpt-test"})

	_, err := provider.Complete(context.Background(), []Message{{Role: RoleUser, Content: "hi"}}, 1.0)
	if err == nil {
		t.Fatal("expected error")
	}
}

package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"event-planner-be/pkg/llm"
)

func TestChatRequestWireFormat(t *testing.T) {
	var body map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"hello"}}]}`))
	}))
	defer srv.Close()

	p := NewOpenAIProvider("test-key", "gpt-4")
	p.baseURL = srv.URL

	reply, err := p.Chat(context.Background(), []llm.Message{
		{Role: "system", Content: "be brief"},
		{Role: "user", Content: "hi"},
	})
	if err != nil {
		t.Fatalf("Chat returned error: %v", err)
	}
	if reply != "hello" {
		t.Errorf("reply = %q, want %q", reply, "hello")
	}

	if body["model"] != "gpt-4" {
		t.Errorf("model = %v, want gpt-4", body["model"])
	}

	// The API rejects anything but lowercase role/content keys.
	messages, ok := body["messages"].([]interface{})
	if !ok || len(messages) != 2 {
		t.Fatalf("messages = %v, want 2 entries", body["messages"])
	}
	first, ok := messages[0].(map[string]interface{})
	if !ok {
		t.Fatalf("message[0] is not an object: %v", messages[0])
	}
	if first["role"] != "system" {
		t.Errorf(`message[0]["role"] = %v, want "system"`, first["role"])
	}
	if first["content"] != "be brief" {
		t.Errorf(`message[0]["content"] = %v, want "be brief"`, first["content"])
	}
	for _, key := range []string{"Role", "Content"} {
		if _, present := first[key]; present {
			t.Errorf("message[0] carries capitalized key %q", key)
		}
	}
}

func TestChatPropagatesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"bad request"}}`))
	}))
	defer srv.Close()

	p := NewOpenAIProvider("test-key", "gpt-4")
	p.baseURL = srv.URL

	if _, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}}); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

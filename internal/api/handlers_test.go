package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wacs.com.ng/support-chatbot/internal/core"
	"wacs.com.ng/support-chatbot/internal/store"
)

type stubEmbedder struct{}

func (stubEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return []float32{1, 0, 0}, nil
}

type stubGenerator struct {
	reply string
	err   error
}

func (g stubGenerator) Generate(ctx context.Context, systemPrompt string, turns []core.Turn, maxTokens int64, temperature float64) (string, error) {
	return g.reply, g.err
}

func newTestServer(t *testing.T, gen core.Generator) http.Handler {
	t.Helper()
	retriever, err := core.NewRetriever(context.Background(), stubEmbedder{}, nil)
	if err != nil {
		t.Fatalf("NewRetriever: %v", err)
	}
	convStore := store.NewConversationStore()
	chatService := core.NewChatService(convStore, retriever, gen)
	return NewRouter(NewAPIHandler(chatService), "")
}

func postJSON(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestChatHandlerRequiresMessage(t *testing.T) {
	handler := newTestServer(t, stubGenerator{reply: "ok"})

	rr := postJSON(t, handler, "/chat", map[string]string{"conversation_id": "c1"})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "No message received") {
		t.Errorf("body = %q", rr.Body.String())
	}
}

func TestChatHandlerRoundTrip(t *testing.T) {
	handler := newTestServer(t, stubGenerator{reply: "Mail support@wacs.com.ng!"})

	// First message establishes the name.
	rr := postJSON(t, handler, "/chat", map[string]string{"message": "I'm Daniel", "conversation_id": "c1"})
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var first core.ChatResult
	if err := json.Unmarshal(rr.Body.Bytes(), &first); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !first.NameCaptured || first.UserName != "Daniel" {
		t.Errorf("name not captured: %+v", first)
	}

	// Second message runs the full RAG path.
	rr = postJSON(t, handler, "/chat", map[string]string{"message": "How do I repay?", "conversation_id": "c1"})
	var second core.ChatResult
	if err := json.Unmarshal(rr.Body.Bytes(), &second); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if second.RawReply != "Mail support@wacs.com.ng!" {
		t.Errorf("raw reply = %q", second.RawReply)
	}
	if !strings.Contains(second.Reply, "mailto:") {
		t.Errorf("reply not linkified: %q", second.Reply)
	}
	if !second.ContextUsed {
		t.Error("ContextUsed = false, want true")
	}
	if second.RelevantFAQs == nil {
		t.Error("relevant_faqs missing from response")
	}
}

func TestChatHandlerFallbackOnGenerationFailure(t *testing.T) {
	handler := newTestServer(t, stubGenerator{err: fmt.Errorf("upstream down")})

	postJSON(t, handler, "/chat", map[string]string{"message": "I'm Daniel", "conversation_id": "c1"})
	rr := postJSON(t, handler, "/chat", map[string]string{"message": "How do I repay?", "conversation_id": "c1"})

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (failures degrade, never error)", rr.Code)
	}
	var result core.ChatResult
	if err := json.Unmarshal(rr.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(result.RawReply, "support@wacs.com.ng") {
		t.Errorf("fallback reply = %q", result.RawReply)
	}
	if result.ContextUsed {
		t.Error("ContextUsed = true on failed turn")
	}
}

func TestGetConversationHandler(t *testing.T) {
	handler := newTestServer(t, stubGenerator{reply: "ok"})

	rr := postJSON(t, handler, "/get-conversation", map[string]string{"conversation_id": "missing"})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}

	rr = postJSON(t, handler, "/chat", map[string]string{"message": "I'm Daniel", "conversation_id": "c1"})
	if rr.Code != http.StatusOK {
		t.Fatalf("chat status = %d", rr.Code)
	}

	rr = postJSON(t, handler, "/get-conversation", map[string]string{"conversation_id": "c1"})
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var resp GetConversationResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.UserName != "Daniel" {
		t.Errorf("unexpected response: %+v", resp)
	}
	if len(resp.Messages) == 0 {
		t.Fatal("no messages in replay")
	}
	if resp.Messages[0].RawContent == "" {
		t.Error("raw content missing from replay message")
	}
}

func TestSearchHandler(t *testing.T) {
	handler := newTestServer(t, stubGenerator{reply: "ok"})

	rr := postJSON(t, handler, "/search", map[string]string{})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}

	rr = postJSON(t, handler, "/search", map[string]string{"query": "loan balance"})
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var resp struct {
		FAQs []store.FAQ `json:"faqs"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.FAQs) == 0 {
		t.Error("no FAQs returned for a direct search")
	}
}

func TestProcessTextHandler(t *testing.T) {
	handler := newTestServer(t, stubGenerator{reply: "ok"})

	rr := postJSON(t, handler, "/process-text", map[string]string{"text": "mail support@wacs.com.ng"})
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["original_text"] != "mail support@wacs.com.ng" {
		t.Errorf("original_text = %q", resp["original_text"])
	}
	if !strings.Contains(resp["processed_text"], "mailto:") {
		t.Errorf("processed_text = %q", resp["processed_text"])
	}
}

func TestSessionHandlers(t *testing.T) {
	handler := newTestServer(t, stubGenerator{reply: "ok"})

	postJSON(t, handler, "/chat", map[string]string{"message": "I'm Daniel", "conversation_id": "c1"})

	req := httptest.NewRequest(http.MethodGet, "/get-session?conversation_id=c1", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	var session map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &session); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if session["has_name"] != true || session["user_name"] != "Daniel" {
		t.Errorf("session = %v", session)
	}

	rr = postJSON(t, handler, "/reset-session", map[string]string{"conversation_id": "c1"})
	if rr.Code != http.StatusOK {
		t.Fatalf("reset status = %d", rr.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/get-session?conversation_id=c1", nil)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if err := json.Unmarshal(rr.Body.Bytes(), &session); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if session["has_name"] != false {
		t.Errorf("session after reset = %v", session)
	}
}

func TestHealthHandler(t *testing.T) {
	handler := newTestServer(t, stubGenerator{reply: "ok"})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["status"] != "healthy" {
		t.Errorf("status field = %v", resp["status"])
	}
	if int(resp["total_faqs"].(float64)) != core.FAQCount() {
		t.Errorf("total_faqs = %v, want %d", resp["total_faqs"], core.FAQCount())
	}
}

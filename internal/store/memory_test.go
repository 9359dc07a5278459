package store

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestGetOrCreate(t *testing.T) {
	s := NewConversationStore()

	conv := s.GetOrCreate("conv-1")
	if conv.UserName != "" {
		t.Errorf("new conversation has name %q, want empty", conv.UserName)
	}
	if len(conv.Messages) != 0 {
		t.Errorf("new conversation has %d messages, want 0", len(conv.Messages))
	}
	if conv.CreatedAt.IsZero() || conv.LastActivity.IsZero() {
		t.Error("timestamps not set on creation")
	}

	// Second call must return the same conversation, not a fresh one.
	s.SetUserName("conv-1", "Daniel")
	again := s.GetOrCreate("conv-1")
	if again.UserName != "Daniel" {
		t.Errorf("GetOrCreate returned name %q, want %q", again.UserName, "Daniel")
	}
}

func TestSetUserNameUnknownIDIsNoop(t *testing.T) {
	s := NewConversationStore()
	s.SetUserName("missing", "Daniel")
	if _, ok := s.GetUserName("missing"); ok {
		t.Error("SetUserName on unknown id created a conversation")
	}
}

func TestAddMessageCapsHistory(t *testing.T) {
	s := NewConversationStore()
	s.GetOrCreate("conv-1")

	for i := 0; i < 15; i++ {
		s.AddMessage("conv-1", RoleUser, fmt.Sprintf("message %d", i))
	}

	history := s.GetHistory("conv-1", MaxMessagesPerConversation)
	if len(history) != MaxMessagesPerConversation {
		t.Fatalf("history length = %d, want %d", len(history), MaxMessagesPerConversation)
	}
	// Oldest entries dropped first; the survivors keep insertion order.
	for i, msg := range history {
		want := fmt.Sprintf("message %d", i+5)
		if msg.Content != want {
			t.Errorf("history[%d] = %q, want %q", i, msg.Content, want)
		}
	}
}

func TestAddMessageUnknownIDIsNoop(t *testing.T) {
	s := NewConversationStore()
	s.AddMessage("missing", RoleUser, "hello")
	if got := s.GetHistory("missing", 10); got != nil {
		t.Errorf("GetHistory on unknown id = %v, want nil", got)
	}
}

func TestGetHistoryLimit(t *testing.T) {
	s := NewConversationStore()
	s.GetOrCreate("conv-1")
	for i := 0; i < 8; i++ {
		s.AddMessage("conv-1", RoleUser, fmt.Sprintf("m%d", i))
	}

	history := s.GetHistory("conv-1", 3)
	if len(history) != 3 {
		t.Fatalf("history length = %d, want 3", len(history))
	}
	if history[0].Content != "m5" || history[2].Content != "m7" {
		t.Errorf("unexpected window: first %q last %q", history[0].Content, history[2].Content)
	}
}

func TestGetFullConversation(t *testing.T) {
	s := NewConversationStore()
	s.GetOrCreate("conv-1")
	s.SetUserName("conv-1", "Amaka")
	s.AddMessage("conv-1", RoleUser, "hello")
	s.AddMessage("conv-1", RoleAssistant, "hi there")

	conv, ok := s.GetFullConversation("conv-1")
	if !ok {
		t.Fatal("conversation not found")
	}
	if conv.UserName != "Amaka" {
		t.Errorf("name = %q, want Amaka", conv.UserName)
	}
	if len(conv.Messages) != 2 {
		t.Fatalf("messages = %d, want 2", len(conv.Messages))
	}
	if conv.Messages[0].Role != RoleUser || conv.Messages[1].Role != RoleAssistant {
		t.Error("roles not preserved in order")
	}

	// The snapshot must be isolated from later mutations.
	s.AddMessage("conv-1", RoleUser, "another")
	if len(conv.Messages) != 2 {
		t.Error("snapshot mutated by a later append")
	}

	if _, ok := s.GetFullConversation("missing"); ok {
		t.Error("unknown id reported as found")
	}
}

func TestSweep(t *testing.T) {
	s := NewConversationStore()
	s.GetOrCreate("stale")
	s.GetOrCreate("fresh")

	// Age the stale conversation past the cutoff.
	s.mu.Lock()
	s.conversations["stale"].LastActivity = time.Now().Add(-25 * time.Hour)
	s.conversations["fresh"].LastActivity = time.Now().Add(-1 * time.Hour)
	s.mu.Unlock()

	removed := s.Sweep(24 * time.Hour)
	if removed != 1 {
		t.Fatalf("Sweep removed %d, want 1", removed)
	}
	if _, ok := s.GetFullConversation("stale"); ok {
		t.Error("stale conversation survived the sweep")
	}
	if _, ok := s.GetFullConversation("fresh"); !ok {
		t.Error("fresh conversation was swept")
	}
}

func TestClearUserName(t *testing.T) {
	s := NewConversationStore()
	s.GetOrCreate("conv-1")
	s.SetUserName("conv-1", "Daniel")
	s.ClearUserName("conv-1")
	if _, ok := s.GetUserName("conv-1"); ok {
		t.Error("name still set after ClearUserName")
	}
}

func TestConcurrentAccess(t *testing.T) {
	s := NewConversationStore()
	s.GetOrCreate("conv-1")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s.AddMessage("conv-1", RoleUser, fmt.Sprintf("m%d", n))
			s.GetHistory("conv-1", MaxMessagesPerConversation)
			s.GetOrCreate("conv-1")
		}(i)
	}
	wg.Wait()

	history := s.GetHistory("conv-1", MaxMessagesPerConversation)
	if len(history) != MaxMessagesPerConversation {
		t.Errorf("history length = %d, want %d", len(history), MaxMessagesPerConversation)
	}
}

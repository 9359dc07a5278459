package store

import (
	"sync"
	"time"
)

// MaxMessagesPerConversation caps stored history per conversation; oldest
// messages are dropped first to keep prompts within token limits.
const MaxMessagesPerConversation = 10

// ConversationStore keeps all conversation state in process memory. One
// mutex guards the whole map; no operation does I/O while holding it.
// Nothing is persisted — a restart loses every conversation.
type ConversationStore struct {
	mu            sync.Mutex
	conversations map[string]*Conversation
}

func NewConversationStore() *ConversationStore {
	return &ConversationStore{
		conversations: make(map[string]*Conversation),
	}
}

// GetOrCreate returns a snapshot of the conversation, creating an empty one
// if the id is unknown. Existing conversations get their activity refreshed.
func (s *ConversationStore) GetOrCreate(conversationID string) Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[conversationID]
	if !ok {
		now := time.Now()
		conv = &Conversation{
			CreatedAt:    now,
			LastActivity: now,
		}
		s.conversations[conversationID] = conv
	} else {
		conv.LastActivity = time.Now()
	}
	return snapshot(conv)
}

// SetUserName records the user's name. Unknown ids are a silent no-op; the
// conversation must already exist.
func (s *ConversationStore) SetUserName(conversationID, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if conv, ok := s.conversations[conversationID]; ok {
		conv.UserName = name
		conv.LastActivity = time.Now()
	}
}

func (s *ConversationStore) GetUserName(conversationID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[conversationID]
	if !ok || conv.UserName == "" {
		return "", false
	}
	return conv.UserName, true
}

// AddMessage appends a message and truncates history to the last
// MaxMessagesPerConversation entries. Unknown ids are a silent no-op.
// Append, truncate and the activity refresh happen under one lock hold, so
// readers never observe a partially updated conversation.
func (s *ConversationStore) AddMessage(conversationID, role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[conversationID]
	if !ok {
		return
	}
	conv.Messages = append(conv.Messages, Message{
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	})
	if len(conv.Messages) > MaxMessagesPerConversation {
		conv.Messages = conv.Messages[len(conv.Messages)-MaxMessagesPerConversation:]
	}
	conv.LastActivity = time.Now()
}

// GetHistory returns up to maxMessages of the most recent history, oldest
// first. Unknown ids return nil.
func (s *ConversationStore) GetHistory(conversationID string, maxMessages int) []Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[conversationID]
	if !ok {
		return nil
	}
	msgs := conv.Messages
	if len(msgs) > maxMessages {
		msgs = msgs[len(msgs)-maxMessages:]
	}
	out := make([]Message, len(msgs))
	copy(out, msgs)
	return out
}

// GetFullConversation returns a deep snapshot including all retained
// messages, or false if the id is unknown.
func (s *ConversationStore) GetFullConversation(conversationID string) (Conversation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[conversationID]
	if !ok {
		return Conversation{}, false
	}
	return snapshot(conv), true
}

// ClearUserName removes the stored name so the next message re-enters the
// ask-for-name flow. Unknown ids are a silent no-op.
func (s *ConversationStore) ClearUserName(conversationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if conv, ok := s.conversations[conversationID]; ok {
		conv.UserName = ""
		conv.LastActivity = time.Now()
	}
}

// Sweep removes every conversation whose last activity predates now-maxAge
// and reports how many were removed. The store never schedules this itself;
// cmd/server registers it as a cron job.
func (s *ConversationStore) Sweep(maxAge time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for id, conv := range s.conversations {
		if conv.LastActivity.Before(cutoff) {
			delete(s.conversations, id)
			removed++
		}
	}
	return removed
}

func snapshot(conv *Conversation) Conversation {
	out := *conv
	out.Messages = make([]Message, len(conv.Messages))
	copy(out.Messages, conv.Messages)
	return out
}

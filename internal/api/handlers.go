package api

import (
	"encoding/json"
	"net/http"
	"time"

	"wacs.com.ng/support-chatbot/internal/core"
	"wacs.com.ng/support-chatbot/internal/utils"
)

type APIHandler struct {
	chatService *core.ChatService
}

func NewAPIHandler(cs *core.ChatService) *APIHandler {
	return &APIHandler{chatService: cs}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

type ChatRequest struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id"`
}

func (h *APIHandler) ChatHandler(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "No message received")
		return
	}

	result := h.chatService.HandleMessage(r.Context(), req.ConversationID, req.Message)
	writeJSON(w, http.StatusOK, result)
}

type GetConversationRequest struct {
	ConversationID string `json:"conversation_id"`
}

type ReplayMessage struct {
	Role       string    `json:"role"`
	Content    string    `json:"content"` // linkified
	RawContent string    `json:"raw_content"`
	Timestamp  time.Time `json:"timestamp"`
}

type GetConversationResponse struct {
	Success        bool            `json:"success"`
	ConversationID string          `json:"conversation_id"`
	UserName       string          `json:"user_name,omitempty"`
	Messages       []ReplayMessage `json:"messages"`
	CreatedAt      time.Time       `json:"created_at"`
	LastActivity   time.Time       `json:"last_activity"`
}

func (h *APIHandler) GetConversationHandler(w http.ResponseWriter, r *http.Request) {
	var req GetConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.ConversationID == "" {
		writeError(w, http.StatusBadRequest, "No conversation_id provided")
		return
	}

	conversation, ok := h.chatService.GetConversation(req.ConversationID)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"success": false,
			"message": "Conversation not found",
		})
		return
	}

	messages := make([]ReplayMessage, 0, len(conversation.Messages))
	for _, msg := range conversation.Messages {
		messages = append(messages, ReplayMessage{
			Role:       msg.Role,
			Content:    utils.ConvertToHyperlinks(msg.Content),
			RawContent: msg.Content,
			Timestamp:  msg.Timestamp,
		})
	}

	writeJSON(w, http.StatusOK, GetConversationResponse{
		Success:        true,
		ConversationID: req.ConversationID,
		UserName:       conversation.UserName,
		Messages:       messages,
		CreatedAt:      conversation.CreatedAt,
		LastActivity:   conversation.LastActivity,
	})
}

type SearchRequest struct {
	Query string `json:"query"`
}

func (h *APIHandler) SearchHandler(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Query == "" {
		writeError(w, http.StatusBadRequest, "No query provided")
		return
	}

	faqs := h.chatService.SearchFAQs(r.Context(), req.Query)
	writeJSON(w, http.StatusOK, map[string]any{"faqs": faqs})
}

type ProcessTextRequest struct {
	Text string `json:"text"`
}

func (h *APIHandler) ProcessTextHandler(w http.ResponseWriter, r *http.Request) {
	var req ProcessTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "No text provided")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"original_text":  req.Text,
		"processed_text": utils.ConvertToHyperlinks(req.Text),
	})
}

type ResetSessionRequest struct {
	ConversationID string `json:"conversation_id"`
}

func (h *APIHandler) ResetSessionHandler(w http.ResponseWriter, r *http.Request) {
	var req ResetSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.ConversationID == "" {
		writeError(w, http.StatusBadRequest, "No conversation_id provided")
		return
	}

	h.chatService.ResetSession(req.ConversationID)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Session reset successfully"})
}

func (h *APIHandler) GetSessionHandler(w http.ResponseWriter, r *http.Request) {
	conversationID := r.URL.Query().Get("conversation_id")
	if conversationID == "" {
		writeError(w, http.StatusBadRequest, "No conversation_id provided")
		return
	}

	userName, hasName := h.chatService.GetSession(conversationID)
	writeJSON(w, http.StatusOK, map[string]any{
		"user_name": userName,
		"has_name":  hasName,
	})
}

func (h *APIHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":                   "healthy",
		"rag_system":               "operational",
		"model":                    "claude-sonnet-4-5",
		"total_faqs":               core.FAQCount(),
		"hyperlink_processing":     "enabled",
		"conversation_memory":      "enabled",
		"conversation_persistence": "enabled",
	})
}

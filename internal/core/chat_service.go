package core

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"wacs.com.ng/support-chatbot/internal/store"
	"wacs.com.ng/support-chatbot/internal/utils"
)

const (
	maxResponseTokens    = 450
	chatTemperature      = 0.7
	historyTurnsInPrompt = 6

	fallbackReply = "Oops! I'm having a moment here. Can you try again, or reach out to support@wacs.com.ng?"
)

var greetingWords = []string{"hi", "hello", "hey", "good morning", "good afternoon", "good evening"}

const systemPromptTemplate = `You are a friendly WACS (Workers Aggregated Credit Scheme) support assistant helping Federal Government civil servants with loan management and IPPIS-related queries. %s

TONE & STYLE - THIS IS CRITICAL:
- Be warm, helpful, and show you care about their issue
- Keep responses SHORT - aim for 2-4 sentences maximum
- Use natural, conversational language like you're texting a friend
- Show empathy when they're frustrated ("I know this is frustrating, let's fix it!")
- End with a friendly offer to help more

AVOID THESE:
- Long explanations - get to the point quickly
- Robotic phrases like "I have processed..." or "Please be advised..."
- Repeating yourself or over-explaining
- Multiple paragraphs when 1-2 sentences work
- Using their name repeatedly (sounds fake)

KEY RULES:
1. Jump straight to the solution - no long intros
2. Use the FAQ context provided but rewrite in your own friendly words
3. If you don't know, guide them to support@wacs.com.ng (WACS issues), support@ippis.gov.ng (IPPIS issues), or support@remita.net (Remita issues)
4. Always use exact format for contacts: support@wacs.com.ng, support@ippis.gov.ng, support@remita.net
5. Pay attention to conversation history - if they already tried your advice, offer alternatives instead of repeating
6. For "thank you" messages: keep it super brief - just "You're welcome! Happy to help 😊" or similar
7. Use names ONLY in initial greeting, then avoid unless adding personal touch after long conversation
8. When mentioning emails, use natural phrasing, never mention "FAQs" or "knowledge base"

CONTACT INFO (use when relevant):
- WACS Support: support@wacs.com.ng
- IPPIS Support: support@ippis.gov.ng, Phone: 0700 275 4774
- Remita Support: support@remita.net
- TIN validation: www.trade.gov.ng (Agencies > FIRS)

LOAN DEDUCTION TYPES:
- WACS deductions: Start with "WACS" on payslip, contact support@wacs.com.ng
- Cooperative deductions: Labeled "COOP" and "CTLS" on payslip, contact desk officer
- Remita deductions: Don't appear on civil servants' payslips, contact support@remita.net`

// ChatResult is the outcome of one inbound message. Reply carries the
// linkified form, RawReply the model output as generated.
type ChatResult struct {
	ConversationID string      `json:"conversation_id"`
	Reply          string      `json:"reply"`
	RawReply       string      `json:"raw_reply"`
	RelevantFAQs   []store.FAQ `json:"relevant_faqs"`
	ContextUsed    bool        `json:"context_used"`
	UserName       string      `json:"user_name,omitempty"`
	NameCaptured   bool        `json:"name_captured,omitempty"`
	AskingForName  bool        `json:"asking_for_name,omitempty"`
}

// ChatService orchestrates a conversation turn: it resolves the user's
// name, retrieves FAQ context, builds the prompt, calls the model and
// records the exchange.
type ChatService struct {
	convStore *store.ConversationStore
	retriever *Retriever
	generator Generator
}

func NewChatService(convStore *store.ConversationStore, retriever *Retriever, generator Generator) *ChatService {
	return &ChatService{
		convStore: convStore,
		retriever: retriever,
		generator: generator,
	}
}

// HandleMessage runs the per-conversation state machine. Until a name is
// known the turn stays in the ask-for-name flow and the model is never
// called; once named, every turn runs the full retrieval and generation
// path. Generation failures degrade to a fixed fallback reply and are
// never surfaced as errors.
func (s *ChatService) HandleMessage(ctx context.Context, conversationID, message string) ChatResult {
	if conversationID == "" || conversationID == "default" {
		conversationID = uuid.NewString()
		log.Printf("Generated new conversation id: %s", conversationID)
	}

	conversation := s.convStore.GetOrCreate(conversationID)

	if conversation.UserName == "" {
		return s.handleUnknownName(conversationID, message)
	}

	return s.handleNamedTurn(ctx, conversationID, conversation.UserName, message)
}

func (s *ChatService) handleUnknownName(conversationID, message string) ChatResult {
	if name, ok := extractName(message); ok {
		s.convStore.SetUserName(conversationID, name)
		reply := fmt.Sprintf("Hello %s! Nice to meet you 😊 How can I help you today?", name)
		s.convStore.AddMessage(conversationID, store.RoleAssistant, reply)
		return ChatResult{
			ConversationID: conversationID,
			Reply:          utils.ConvertToHyperlinks(reply),
			RawReply:       reply,
			RelevantFAQs:   []store.FAQ{},
			UserName:       name,
			NameCaptured:   true,
		}
	}

	reply := "May I know your name?"
	if containsGreeting(message) {
		reply = "Hello! May I know your name?"
	}
	s.convStore.AddMessage(conversationID, store.RoleAssistant, reply)
	return ChatResult{
		ConversationID: conversationID,
		Reply:          reply,
		RawReply:       reply,
		RelevantFAQs:   []store.FAQ{},
		AskingForName:  true,
	}
}

func (s *ChatService) handleNamedTurn(ctx context.Context, conversationID, userName, message string) ChatResult {
	s.convStore.AddMessage(conversationID, store.RoleUser, message)
	history := s.convStore.GetHistory(conversationID, store.MaxMessagesPerConversation)

	relevantFAQs := s.retriever.Retrieve(ctx, message, NumRelevantFAQs)
	contextBlock := buildFAQContext(relevantFAQs)

	systemPrompt := fmt.Sprintf(systemPromptTemplate, fmt.Sprintf("The user's name is %s.", userName))
	turns := buildTurns(history, message, contextBlock)

	raw, err := s.generator.Generate(ctx, systemPrompt, turns, maxResponseTokens, chatTemperature)
	if err != nil {
		log.Printf("Generation failed for conversation %s: %v", conversationID, err)
		s.convStore.AddMessage(conversationID, store.RoleAssistant, fallbackReply)
		return ChatResult{
			ConversationID: conversationID,
			Reply:          utils.ConvertToHyperlinks(fallbackReply),
			RawReply:       fallbackReply,
			RelevantFAQs:   []store.FAQ{},
			UserName:       userName,
		}
	}

	s.convStore.AddMessage(conversationID, store.RoleAssistant, raw)
	if relevantFAQs == nil {
		relevantFAQs = []store.FAQ{}
	}
	return ChatResult{
		ConversationID: conversationID,
		Reply:          utils.ConvertToHyperlinks(raw),
		RawReply:       raw,
		RelevantFAQs:   relevantFAQs,
		ContextUsed:    contextBlock != "",
		UserName:       userName,
	}
}

// buildFAQContext renders the retrieved records as a numbered Q/A block,
// or an empty string when nothing was retrieved.
func buildFAQContext(faqs []store.FAQ) string {
	if len(faqs) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("Here are relevant FAQs that might help answer the question:\n\n")
	for i, faq := range faqs {
		fmt.Fprintf(&b, "FAQ %d:\nQ: %s\nA: %s\n\n", i+1, faq.Question, faq.Answer)
	}
	return b.String()
}

// buildTurns assembles the model's turn sequence: the most recent history
// entries in chronological order, then the current question wrapped with
// the FAQ context.
func buildTurns(history []store.Message, message, contextBlock string) []Turn {
	start := 0
	if len(history) > historyTurnsInPrompt {
		start = len(history) - historyTurnsInPrompt
	}

	var turns []Turn
	for _, msg := range history[start:] {
		role := store.RoleUser
		if msg.Role == store.RoleAssistant {
			role = store.RoleAssistant
		}
		turns = append(turns, Turn{Role: role, Content: msg.Content})
	}

	var current string
	if contextBlock != "" {
		current = fmt.Sprintf("%s\n\nUser Question: %s\n\nProvide a friendly, concise response based on the FAQ context and conversation history. Remember: be warm but brief!", contextBlock, message)
	} else {
		current = fmt.Sprintf("User Question: %s\n\nProvide a friendly, concise response about WACS and IPPIS processes.", message)
	}
	turns = append(turns, Turn{Role: store.RoleUser, Content: current})

	return turns
}

func containsGreeting(message string) bool {
	lowered := strings.ToLower(message)
	for _, greeting := range greetingWords {
		if strings.Contains(lowered, greeting) {
			return true
		}
	}
	return false
}

// SearchFAQs exposes retrieval without generation for the search endpoint.
func (s *ChatService) SearchFAQs(ctx context.Context, query string) []store.FAQ {
	faqs := s.retriever.Retrieve(ctx, query, NumSearchFAQs)
	if faqs == nil {
		return []store.FAQ{}
	}
	return faqs
}

// GetConversation returns the full retained conversation for replay.
func (s *ChatService) GetConversation(conversationID string) (store.Conversation, bool) {
	return s.convStore.GetFullConversation(conversationID)
}

// ResetSession forgets the user's name so the next message re-enters the
// ask-for-name flow.
func (s *ChatService) ResetSession(conversationID string) {
	s.convStore.ClearUserName(conversationID)
}

// GetSession reports whether a name is on file for the conversation.
func (s *ChatService) GetSession(conversationID string) (string, bool) {
	return s.convStore.GetUserName(conversationID)
}

package handler

import (
	"context"
	"log"
	"time"

	"fitcoach-be/internal/repository/specification"
	"fitcoach-be/internal/repository/unitofwork"
	"fitcoach-be/pkg/coach/prompt"
	"fitcoach-be/pkg/coach/retrieval"
	"fitcoach-be/pkg/llm"
)

const completionTimeout = 30 * time.Second

const apologyReply = "Sorry, I'm having trouble putting an answer together right now. Give me another try in a moment."

// KnowledgeHandler serves every knowledge-seeking intent with the same
// shape: retrieve partition context, build a role-specific prompt, return
// the completion verbatim. A completion failure degrades to an apology, not
// an error.
type KnowledgeHandler struct {
	retriever   *retrieval.Retriever
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

func NewKnowledgeHandler(retriever *retrieval.Retriever, llmProvider llm.LLMProvider, logger *log.Logger) *KnowledgeHandler {
	return &KnowledgeHandler{
		retriever:   retriever,
		llmProvider: llmProvider,
		logger:      logger,
	}
}

func (h *KnowledgeHandler) Handle(ctx context.Context, uow unitofwork.UnitOfWork, req *Request) (*Response, error) {
	intent := req.Classification.Intent

	// The registry routes unmapped intents here too; only ground the prompt
	// in retrieved context when the intent actually calls for it.
	ragBlock := ""
	if intent.IsKnowledgeSeeking() {
		ragBlock = h.retriever.GetContext(ctx, req.Message, intent, req.Classification.Extracted)
	}

	profileSummary := ""
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: req.UserID})
	if err != nil {
		h.logger.Printf("[KNOWLEDGE] Profile lookup failed: %v", err)
	} else if user != nil {
		profileSummary = prompt.ProfileSummary(user.Name, user.Goal, user.ExperienceLevel)
	}

	messages := []llm.Message{
		{Role: "system", Content: prompt.SystemPrompt(intent)},
		{Role: "user", Content: prompt.BuildUserPrompt(profileSummary, ragBlock, req.History, req.Message)},
	}

	cctx, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()

	reply, err := h.llmProvider.Chat(cctx, messages, llm.WithTemperature(0.7))
	if err != nil {
		h.logger.Printf("[KNOWLEDGE] Completion failed for intent %s: %v", intent, err)
		return &Response{
			Reply:  apologyReply,
			Intent: intent,
		}, nil
	}

	return &Response{
		Reply:  reply,
		Intent: intent,
	}, nil
}

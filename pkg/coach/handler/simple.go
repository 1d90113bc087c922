package handler

import (
	"context"
	"fmt"
	"math/rand"

	"fitcoach-be/internal/repository/unitofwork"
	"fitcoach-be/pkg/coach/classifier"
)

var greetingPool = []string{
	"Hey%s! Ready to train?",
	"Hey%s, good to see you. What are we working on today?",
	"Hello%s! What's the plan — lifting, logging, or questions?",
	"Hey%s! Let's get after it. What do you need?",
}

var offTopicPool = []string{
	"That one's outside my lane — I'm all about training, food and recovery. Anything fitness I can help with?",
	"I'll stick to coaching! Got a training or nutrition question for me?",
	"Not my department, but your squat technique is. Want to talk training?",
}

// CannedHandler answers greeting and off_topic turns from a fixed pool with
// no I/O beyond the optional name personalization already in context.
type CannedHandler struct {
	intent classifier.Intent
	pool   []string
}

func NewGreetingHandler() *CannedHandler {
	return &CannedHandler{intent: classifier.IntentGreeting, pool: greetingPool}
}

func NewOffTopicHandler() *CannedHandler {
	return &CannedHandler{intent: classifier.IntentOffTopic, pool: offTopicPool}
}

func (h *CannedHandler) Handle(ctx context.Context, uow unitofwork.UnitOfWork, req *Request) (*Response, error) {
	reply := h.pool[rand.Intn(len(h.pool))]

	if h.intent == classifier.IntentGreeting {
		name := ""
		if req.Context != nil && req.Context.UserName != "" {
			name = " " + req.Context.UserName
		}
		reply = fmt.Sprintf(reply, name)
	}

	return &Response{
		Reply:  reply,
		Intent: h.intent,
	}, nil
}

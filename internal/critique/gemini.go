package critique

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model/gemini"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
	"google.golang.org/genai"
)

const geminiModel = "gemini-2.5-pro"

// Gemini runs critiques through a Gemini LLM agent. Each Complete call
// gets a throwaway in-memory session.
type Gemini struct {
	runner   *runner.Runner
	sessions session.Service
	appName  string
}

// NewGemini builds the agent and runner once; Complete reuses them.
func NewGemini(ctx context.Context, apiKey string) (*Gemini, error) {
	model, err := gemini.NewModel(ctx, geminiModel, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create model: %w", err)
	}

	appName := "resume critique"
	reviewer, err := llmagent.New(llmagent.Config{
		Name:        appName,
		Model:       model,
		Description: "Critique a scored resume",
		Instruction: systemMessage,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}

	sessions := session.InMemoryService()
	r, err := runner.New(runner.Config{
		AppName:        reviewer.Name(),
		Agent:          reviewer,
		SessionService: sessions,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create runner: %w", err)
	}

	return &Gemini{runner: r, sessions: sessions, appName: appName}, nil
}

// Complete streams the agent's answer and returns the final response text.
func (g *Gemini) Complete(ctx context.Context, prompt string) (string, error) {
	sess, err := g.sessions.Create(ctx, &session.CreateRequest{
		AppName:   g.appName,
		UserID:    uuid.NewString(),
		SessionID: uuid.NewString(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create agent session: %w", err)
	}

	stream := g.runner.Run(ctx, sess.Session.UserID(), sess.Session.ID(), &genai.Content{
		Role: "user",
		Parts: []*genai.Part{
			{Text: prompt},
		},
	}, agent.RunConfig{})

	var output string
	for event, err := range stream {
		if err != nil {
			return "", err
		}
		if event != nil && event.IsFinalResponse() && len(event.Content.Parts) > 0 {
			output = event.Content.Parts[0].Text
		}
	}

	if delErr := g.sessions.Delete(ctx, &session.DeleteRequest{
		AppName:   sess.Session.AppName(),
		UserID:    sess.Session.UserID(),
		SessionID: sess.Session.ID(),
	}); delErr != nil {
		log.Printf("failed to delete agent session: %v", delErr)
	}

	if output == "" {
		return "", fmt.Errorf("empty agent response")
	}
	return output, nil
}

// Package openaiassist is the pass-through sales assistant: user message in, model
// text out, displayed verbatim. It never returns an error to the caller; any
// failure degrades to a fixed fallback message.
package openaiassist

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/chronoslabs/chronos/internal/domain"
)

const (
	offlineReply = "I'm sorry, my AI connection is currently offline (API Key missing). Please browse our catalog manually."
	errorReply   = "I encountered a temporary error. Please try again later."
	emptyReply   = "I'm having trouble thinking right now. Please try again."
)

type Assistant struct {
	client  *openai.Client // nil when no API key is configured
	catalog domain.CatalogRepo
	model   string
}

// New builds the assistant. An empty apiKey leaves the client nil and every Reply
// returns the offline fallback.
func New(apiKey string, catalog domain.CatalogRepo) *Assistant {
	a := &Assistant{catalog: catalog, model: openai.GPT4oMini}
	if apiKey != "" {
		a.client = openai.NewClient(apiKey)
	}
	return a
}

// Reply sends the user message with a catalog-aware system prompt and returns the
// model's text.
func (a *Assistant) Reply(ctx context.Context, userMessage string) string {
	if a.client == nil {
		return offlineReply
	}

	products, err := a.catalog.Products(ctx)
	if err != nil {
		log.Error().Err(err).Msg("assistant: load catalog")
		return errorReply
	}

	callCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	resp, err := a.client.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt(products)},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
		Temperature: 0.7,
	})
	if err != nil {
		log.Error().Err(err).Msg("assistant: chat completion")
		return errorReply
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return emptyReply
	}
	return resp.Choices[0].Message.Content
}

func systemPrompt(products []domain.Product) string {
	var ctxLines strings.Builder
	for _, p := range products {
		fmt.Fprintf(&ctxLines, "- %s ($%g): %s. Features: %s. Category: %s\n",
			p.Name, p.Price, p.Description, strings.Join(p.Features, ", "), p.Category)
	}
	return fmt.Sprintf(`You are "Chronos AI", a helpful, sophisticated sales assistant for a luxury smartwatch website.
Your goal is to help customers find the perfect watch.

Here is our current product catalog:
%s
Rules:
1. Only recommend products from this list.
2. Be concise and professional.
3. If asked about shipping, say we offer free worldwide shipping.
4. If a user asks for a comparison, compare features from the list above.
5. Use bolding for product names.`, ctxLines.String())
}

// Package sentiment classifies post text into coarse sentiment labels.
package sentiment

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	boterrors "github.com/jmanning1991/reddit-stock-sentiment-bot/internal/errors"
	"github.com/jmanning1991/reddit-stock-sentiment-bot/internal/models"
)

const systemPrompt = "Classify this post as Positive, Negative, or Neutral."

// Classifier labels a post title and body. Implementations must never
// return an error: any failure converts to SentimentUnknown with a logged
// diagnostic, and Unknown suppresses all downstream logging and alerting.
type Classifier interface {
	Classify(ctx context.Context, title, body string) models.SentimentLabel
}

// completionClient is the slice of the OpenAI API the classifier uses.
type completionClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIClassifier implements Classifier using OpenAI chat completions.
type OpenAIClassifier struct {
	client completionClient
	model  string
	logger zerolog.Logger
}

// NewOpenAIClassifier creates a classifier backed by the OpenAI API.
func NewOpenAIClassifier(apiKey, model string, logger zerolog.Logger) *OpenAIClassifier {
	return &OpenAIClassifier{
		client: openai.NewClient(apiKey),
		model:  model,
		logger: logger,
	}
}

// Classify returns exactly one label per call. Transport failures, empty
// responses and unrecognized completions all map to SentimentUnknown.
func (c *OpenAIClassifier) Classify(ctx context.Context, title, body string) models.SentimentLabel {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf("Title: %s\n\nBody: %s", title, body)},
		},
	})
	if err != nil {
		c.logger.Error().Err(boterrors.NewClassifyError(title, err)).Msg("Sentiment classification failed")
		return models.SentimentUnknown
	}
	if len(resp.Choices) == 0 {
		c.logger.Error().Err(boterrors.NewClassifyError(title, boterrors.ErrEmptyCompletion)).Msg("Sentiment classification failed")
		return models.SentimentUnknown
	}

	raw := resp.Choices[0].Message.Content
	label := models.ParseSentiment(raw)
	if label == models.SentimentUnknown {
		c.logger.Warn().Str("raw", raw).Str("title", title).Msg("Unrecognized sentiment response")
	}
	return label
}

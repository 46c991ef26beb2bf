package sentiment

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"github.com/jmanning1991/reddit-stock-sentiment-bot/internal/models"
)

type fakeCompleter struct {
	response string
	err      error
	empty    bool
	requests []openai.ChatCompletionRequest
}

func (f *fakeCompleter) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	if f.empty {
		return openai.ChatCompletionResponse{}, nil
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: f.response}},
		},
	}, nil
}

func newTestClassifier(f *fakeCompleter) *OpenAIClassifier {
	return &OpenAIClassifier{client: f, model: "gpt-3.5-turbo", logger: zerolog.Nop()}
}

func TestClassifyLabels(t *testing.T) {
	tests := []struct {
		response string
		want     models.SentimentLabel
	}{
		{"Positive", models.SentimentPositive},
		{"negative", models.SentimentNegative},
		{" Neutral.\n", models.SentimentNeutral},
		{"I think this is bullish", models.SentimentUnknown},
	}

	for _, tt := range tests {
		c := newTestClassifier(&fakeCompleter{response: tt.response})
		if got := c.Classify(context.Background(), "title", "body"); got != tt.want {
			t.Errorf("Classify with response %q = %q, want %q", tt.response, got, tt.want)
		}
	}
}

func TestClassifyAPIErrorReturnsUnknown(t *testing.T) {
	c := newTestClassifier(&fakeCompleter{err: errors.New("rate limited")})

	if got := c.Classify(context.Background(), "title", "body"); got != models.SentimentUnknown {
		t.Errorf("Classify on API error = %q, want Unknown", got)
	}
}

func TestClassifyEmptyResponseReturnsUnknown(t *testing.T) {
	c := newTestClassifier(&fakeCompleter{empty: true})

	if got := c.Classify(context.Background(), "title", "body"); got != models.SentimentUnknown {
		t.Errorf("Classify on empty response = %q, want Unknown", got)
	}
}

func TestClassifySendsPromptContract(t *testing.T) {
	f := &fakeCompleter{response: "Positive"}
	c := newTestClassifier(f)

	c.Classify(context.Background(), "XYZ Corp beats earnings", "big beat")

	if len(f.requests) != 1 {
		t.Fatalf("got %d requests, want exactly 1 per call", len(f.requests))
	}
	req := f.requests[0]
	if len(req.Messages) != 2 {
		t.Fatalf("got %d messages, want system + user", len(req.Messages))
	}
	if req.Messages[0].Role != openai.ChatMessageRoleSystem || req.Messages[0].Content != systemPrompt {
		t.Errorf("unexpected system message: %+v", req.Messages[0])
	}
	want := "Title: XYZ Corp beats earnings\n\nBody: big beat"
	if req.Messages[1].Content != want {
		t.Errorf("user content = %q, want %q", req.Messages[1].Content, want)
	}
}

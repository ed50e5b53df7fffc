package provider

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/sashabaranov/go-openai"

	"github.com/umputun/cheerbot/pkg/domain"
)

// SafetyChecker validates candidate text before it can leave a provider.
type SafetyChecker interface {
	Check(text string) (ok bool, reason string)
}

// Remote generates content with an OpenAI-compatible model. Every candidate
// runs through the safety filter; a rejected candidate counts as a failed
// attempt and is retried with a fresh generation.
type Remote struct {
	client *openai.Client
	filter SafetyChecker
	cfg    RemoteConfig
}

// RemoteConfig holds remote provider settings.
type RemoteConfig struct {
	Endpoint    string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration // per-attempt timeout
	Retries     int           // total attempts, default 3
}

const remoteSystemPrompt = `You write short, warm, upbeat messages for a workplace chat.
Rules: plain text only, at most 400 characters, at most one emoji,
no medical or psychological advice, no religion, no politics, no profanity,
no guilt-tripping (never "you must" or "you have to").
Respond with the message text only, nothing else.`

var categoryPrompts = map[domain.Category]string{
	domain.CategoryMotivation: "Write one motivational message to start the work day with energy.",
	domain.CategoryWellbeing:  "Write one gentle midday wellbeing reminder about breaks, water or rest.",
	domain.CategoryTeam:       "Write one message encouraging teamwork, gratitude or recognition.",
}

// NewRemote creates a remote provider.
func NewRemote(cfg RemoteConfig, filter SafetyChecker) *Remote {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.Retries <= 0 {
		cfg.Retries = 3
	}
	return &Remote{client: openai.NewClientWithConfig(clientConfig), filter: filter, cfg: cfg}
}

// Fetch generates one item for the category with bounded attempts and
// linear backoff between them.
func (r *Remote) Fetch(ctx context.Context, category domain.Category) (domain.ContentItem, error) {
	if category == "" {
		category = domain.CategoryMotivation
	}
	prompt, ok := categoryPrompts[category]
	if !ok {
		prompt = categoryPrompts[domain.CategoryMotivation]
	}

	var item domain.ContentItem
	retrier := repeater.NewBackoff(r.cfg.Retries, time.Second,
		repeater.WithBackoffType(repeater.BackoffLinear), repeater.WithMaxDelay(5*time.Second))

	err := retrier.Do(ctx, func() error {
		attemptCtx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
		defer cancel()

		resp, err := r.client.CreateChatCompletion(attemptCtx, openai.ChatCompletionRequest{
			Model:       r.cfg.Model,
			Temperature: float32(r.cfg.Temperature),
			MaxTokens:   r.cfg.MaxTokens,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: remoteSystemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
		})
		if err != nil {
			return fmt.Errorf("chat completion: %w", err)
		}
		if len(resp.Choices) == 0 {
			return fmt.Errorf("empty completion response")
		}

		text := strings.TrimSpace(resp.Choices[0].Message.Content)
		text = strings.Trim(text, `"`) // models love wrapping quotes
		if ok, reason := r.filter.Check(text); !ok {
			return fmt.Errorf("candidate rejected: %s", reason)
		}

		item = domain.ContentItem{
			ID:       contentID("remote", text),
			Category: category,
			Text:     text,
			Provider: domain.ProviderRemote,
		}
		return nil
	})
	if err != nil {
		return domain.ContentItem{}, fmt.Errorf("remote provider: %w", err)
	}
	return item, nil
}

// contentID derives a stable identifier from the text so anti-repetition
// works for generated content too.
func contentID(prefix, text string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(text))
	return fmt.Sprintf("%s-%08x", prefix, h.Sum32())
}

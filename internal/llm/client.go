// Package llm is the optional query-understanding fallback. When keyword
// voting cannot place a query in a legal domain, a Groq-hosted model (via
// the OpenAI-compatible API) classifies it and suggests extra search terms.
// The caller treats this as fallible and safe to skip; a failure here never
// changes the deterministic pipeline result.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/Sariga-2005/VidhimurAI/internal/metrics"
	"github.com/Sariga-2005/VidhimurAI/internal/normalizer"
	"github.com/Sariga-2005/VidhimurAI/internal/vocab"
	"github.com/Sariga-2005/VidhimurAI/pkg/circuitbreaker"
	"github.com/Sariga-2005/VidhimurAI/pkg/logger"
	"github.com/Sariga-2005/VidhimurAI/pkg/retry"
)

const systemPromptFmt = `You are a legal domain classifier for Indian law.
Given a user's query in everyday language, identify the legal domain and
suggest search terms that would match Indian court cases.

Respond ONLY with valid JSON, no text before or after:
{"domain": "<domain>", "search_terms": ["term1", "term2"]}

STRICT RULES:
- The domain MUST be one of: %s
- If the query genuinely fits none of them, use "%s"
- 5-8 search_terms maximum, legal terminology only
- Do NOT invent legal terms`

type Client struct {
	api     *openai.Client
	model   string
	timeout time.Duration
	breaker *circuitbreaker.CircuitBreaker
}

// NewClient builds a Groq-backed classifier. Implements
// normalizer.DomainClassifier.
func NewClient(baseURL, apiKey, model string, timeoutSec int) *Client {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL

	return &Client{
		api:     openai.NewClientWithConfig(cfg),
		model:   model,
		timeout: time.Duration(timeoutSec) * time.Second,
		breaker: circuitbreaker.New("domain-classifier", circuitbreaker.Config{
			FailureThreshold: 3,
			Cooldown:         30 * time.Second,
			Logger:           logger.Log,
		}),
	}
}

type classifierOutput struct {
	Domain      string   `json:"domain"`
	SearchTerms []string `json:"search_terms"`
}

// Classify asks the model for a domain and search terms. Any transport or
// parse failure returns an error the caller downgrades to "no enhancement";
// a domain outside the configured set is coerced to the general label.
func (c *Client) Classify(ctx context.Context, query string) (*normalizer.Classification, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	domains := make([]string, 0, len(vocab.IssueAreas))
	for _, area := range vocab.IssueAreas {
		domains = append(domains, area.Name)
	}
	system := fmt.Sprintf(systemPromptFmt, strings.Join(domains, ", "), vocab.GeneralDomain)

	var result *normalizer.Classification
	err := c.breaker.Execute(ctx, func() error {
		raw, err := retry.DoWithResult(ctx, retry.Config{MaxAttempts: 2, Logger: logger.Log}, func() (string, error) {
			return c.complete(ctx, system, fmt.Sprintf("Classify this legal query: %q", query))
		})
		if err != nil {
			return err
		}

		var out classifierOutput
		if err := json.Unmarshal([]byte(raw), &out); err != nil {
			return fmt.Errorf("classifier returned invalid JSON: %w", err)
		}

		if !vocab.IsKnownDomain(out.Domain) {
			out.Domain = vocab.GeneralDomain
		}

		terms := make([]string, 0, len(out.SearchTerms))
		for _, t := range out.SearchTerms {
			if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
				terms = append(terms, t)
			}
		}

		result = &normalizer.Classification{Domain: out.Domain, SearchTerms: terms}
		return nil
	})

	if err != nil {
		metrics.ClassifierCalls.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.ClassifierCalls.WithLabelValues("ok").Inc()
	logger.Debug("Query classified",
		zap.String("query", query),
		zap.String("domain", result.Domain),
		zap.Strings("search_terms", result.SearchTerms),
	)
	return result, nil
}

func (c *Client) complete(ctx context.Context, system, user string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.1,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

package llm

import (
	"context"
	"fmt"
	"math"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	openai "github.com/sashabaranov/go-openai"
)

// ClientConfig holds connection settings for an OpenAI-compatible API.
type ClientConfig struct {
	APIKey         string
	BaseURL        string // Optional, defaults to the OpenAI endpoint
	ChatModel      string // e.g. "gpt-4o-mini"
	EmbeddingModel string // e.g. "text-embedding-3-small"
	CacheSize      int    // LRU embedding cache size, default 10000
	MaxAttempts    int    // Retry attempts per call, default 3
}

// openaiClient implements Client using the OpenAI API.
type openaiClient struct {
	config ClientConfig
	api    *openai.Client
	cache  *lru.Cache[string, []float32]
}

// NewClient creates a client for an OpenAI-compatible generation service.
func NewClient(config ClientConfig) (Client, error) {
	if config.ChatModel == "" {
		config.ChatModel = "gpt-4o-mini"
	}
	if config.EmbeddingModel == "" {
		config.EmbeddingModel = "text-embedding-3-small"
	}
	if config.CacheSize == 0 {
		config.CacheSize = 10000
	}
	if config.MaxAttempts == 0 {
		config.MaxAttempts = 3
	}

	cache, err := lru.New[string, []float32](config.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("create cache: %w", err)
	}

	apiConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		apiConfig.BaseURL = config.BaseURL
	}

	return &openaiClient{
		config: config,
		api:    openai.NewClientWithConfig(apiConfig),
		cache:  cache,
	}, nil
}

// Generate runs a chat completion with the given system prompt and user text.
func (c *openaiClient) Generate(ctx context.Context, systemPrompt, userText string) (string, error) {
	var content string
	err := c.withRetries(ctx, func() error {
		resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: c.config.ChatModel,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: userText},
			},
		})
		if err != nil {
			return err
		}
		if len(resp.Choices) == 0 {
			return fmt.Errorf("completion returned no choices")
		}
		content = resp.Choices[0].Message.Content
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	return content, nil
}

// Embed returns the embedding vector for text, consulting the cache first.
func (c *openaiClient) Embed(ctx context.Context, text string) ([]float32, error) {
	if cached, ok := c.cache.Get(text); ok {
		return cached, nil
	}

	var embedding []float32
	err := c.withRetries(ctx, func() error {
		resp, err := c.api.CreateEmbeddings(ctx, openai.EmbeddingRequest{
			Model: openai.EmbeddingModel(c.config.EmbeddingModel),
			Input: []string{text},
		})
		if err != nil {
			return err
		}
		if len(resp.Data) == 0 {
			return fmt.Errorf("embedding response contained no data")
		}
		embedding = resp.Data[0].Embedding
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create embedding: %w", err)
	}

	c.cache.Add(text, embedding)
	return embedding, nil
}

// withRetries runs call with exponential backoff between attempts.
func (c *openaiClient) withRetries(ctx context.Context, call func() error) error {
	var err error
	for attempt := 0; attempt < c.config.MaxAttempts; attempt++ {
		err = call()
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return err
		}
		if attempt < c.config.MaxAttempts-1 {
			backoff := time.Duration(math.Pow(2, float64(attempt))) * time.Second
			time.Sleep(backoff)
		}
	}
	return err
}

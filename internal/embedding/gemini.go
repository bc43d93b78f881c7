package embedding

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Default provider settings.
const (
	DefaultModel   = "text-embedding-004"
	defaultTimeout = 30 * time.Second
)

// GeminiEmbedder implements Embedder on the Gemini embedding API.
type GeminiEmbedder struct {
	client  *genai.Client
	model   string
	dims    int
	timeout time.Duration

	mu          sync.Mutex
	unavailable bool
}

// GeminiConfig configures the Gemini embedder. Zero values use defaults.
type GeminiConfig struct {
	Model      string
	Dimensions int
	Timeout    time.Duration
}

// NewGeminiEmbedder creates an embedder backed by the Gemini API.
func NewGeminiEmbedder(ctx context.Context, apiKey string, cfg GeminiConfig) (*GeminiEmbedder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Dimensions <= 0 {
		cfg.Dimensions = DefaultDimensions
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &GeminiEmbedder{
		client:  client,
		model:   cfg.Model,
		dims:    cfg.Dimensions,
		timeout: cfg.Timeout,
	}, nil
}

// Embed generates a vector for the text with a call-scoped timeout. A
// provider failure marks the embedder unavailable so callers switch to
// the deterministic fallback instead of hammering a down API.
func (g *GeminiEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	em := g.client.EmbeddingModel(g.model)
	res, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		g.markUnavailable()
		return nil, fmt.Errorf("embedding call failed: %w", err)
	}
	if res == nil || res.Embedding == nil || len(res.Embedding.Values) == 0 {
		g.markUnavailable()
		return nil, fmt.Errorf("embedding response contained no values")
	}

	vec := make([]float64, len(res.Embedding.Values))
	for i, v := range res.Embedding.Values {
		vec[i] = float64(v)
	}
	return vec, nil
}

// Dimensions returns the configured vector length.
func (g *GeminiEmbedder) Dimensions() int { return g.dims }

// Available reports whether the last call succeeded.
func (g *GeminiEmbedder) Available() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return !g.unavailable
}

func (g *GeminiEmbedder) markUnavailable() {
	g.mu.Lock()
	g.unavailable = true
	g.mu.Unlock()
}

// Model returns the model identifier, used in cache keys.
func (g *GeminiEmbedder) Model() string { return g.model }

// Close releases the underlying client.
func (g *GeminiEmbedder) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

// Package embedding derives semantic vectors for service text.
package embedding

import (
	"context"
	"time"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"fieldserve/config"
	"fieldserve/utils"
)

// Provider turns text into a semantic vector. An empty vector means the
// signal is unavailable and callers must degrade to keyword or geo ranking.
type Provider interface {
	Embed(ctx context.Context, text string) []float32
}

const embedModel = "text-embedding-004"

// GeminiProvider embeds text through the Gemini embedding model.
type GeminiProvider struct {
	logger *zap.Logger
}

func NewGeminiProvider() *GeminiProvider {
	return &GeminiProvider{logger: utils.GetLogger()}
}

// Embed returns the embedding for text, or an empty vector when the API
// key is missing, the text is blank, or the call fails. It never errors:
// search quality degrades, availability does not.
func (p *GeminiProvider) Embed(ctx context.Context, text string) []float32 {
	if text == "" || config.AppConfig.GeminiAPIKey == "" {
		return nil
	}

	cctx, cancel := context.WithTimeout(ctx, 8*time.Second)
	defer cancel()

	client, err := genai.NewClient(cctx, option.WithAPIKey(config.AppConfig.GeminiAPIKey))
	if err != nil {
		p.logger.Warn("embedding client init failed", zap.Error(err))
		return nil
	}
	defer client.Close()

	res, err := client.EmbeddingModel(embedModel).EmbedContent(cctx, genai.Text(text))
	if err != nil {
		p.logger.Warn("embedding request failed", zap.Error(err))
		return nil
	}
	if res == nil || res.Embedding == nil {
		return nil
	}
	return res.Embedding.Values
}

// Static is a fixed-vector Provider for tests.
type Static struct {
	Vector []float32
}

func (s Static) Embed(context.Context, string) []float32 { return s.Vector }

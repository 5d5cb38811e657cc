package component

import (
	"context"
	"fmt"

	arkext "github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"

	"codeweaver/internal/config"
)

// NewChatModel creates the ChatModel for one provider binding.
// "openai" covers any OpenAI-compatible endpoint (DeepSeek, Groq);
// "ark" targets Volcengine Ark.
func NewChatModel(ctx context.Context, cfg *config.ProviderConfig) (model.ChatModel, error) {
	switch cfg.Provider {
	case "openai", "":
		return newOpenAIChatModel(ctx, cfg)
	case "ark":
		return newArkChatModel(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s", cfg.Provider)
	}
}

// newOpenAIChatModel creates a ChatModel against an OpenAI-compatible API.
func newOpenAIChatModel(ctx context.Context, cfg *config.ProviderConfig) (model.ChatModel, error) {
	modelCfg := &openai.ChatModelConfig{
		Model:  cfg.Model,
		APIKey: cfg.APIKey,
	}

	// Base URL selects the actual upstream (api.deepseek.com, Groq, ...)
	if cfg.BaseURL != "" {
		modelCfg.BaseURL = cfg.BaseURL
	}

	if cfg.Temperature > 0 {
		temp := float32(cfg.Temperature)
		modelCfg.Temperature = &temp
	}
	if cfg.MaxTokens > 0 {
		modelCfg.MaxTokens = &cfg.MaxTokens
	}

	return openai.NewChatModel(ctx, modelCfg)
}

// newArkChatModel creates a Volcengine Ark ChatModel (eino-ext ark module).
func newArkChatModel(ctx context.Context, cfg *config.ProviderConfig) (model.ChatModel, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://ark.cn-beijing.volces.com/api/v3"
	}

	modelCfg := &arkext.ChatModelConfig{
		Model:   cfg.Model,
		APIKey:  cfg.APIKey,
		BaseURL: baseURL,
	}

	if cfg.Temperature > 0 {
		temp := float32(cfg.Temperature)
		modelCfg.Temperature = &temp
	}
	if cfg.MaxTokens > 0 {
		modelCfg.MaxTokens = &cfg.MaxTokens
	}

	return arkext.NewChatModel(ctx, modelCfg)
}

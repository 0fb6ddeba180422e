package llm_fx

import (
	"context"

	"go.uber.org/fx"

	"solotrip/internal/config"
	"solotrip/internal/services"
	"solotrip/pkg/llm"
	"solotrip/pkg/logger"
)

var Module = fx.Provide(provideProviders, provideChain, provideGenerator)

func provideProviders(lc fx.Lifecycle, cfg *config.Config, log *logger.Logger) ([]llm.Provider, error) {
	providers, err := BuildProviders(context.Background(), cfg, log)
	if err != nil {
		return nil, err
	}
	for _, p := range providers {
		if closer, ok := p.(interface{ Close() error }); ok {
			lc.Append(fx.StopHook(closer.Close))
		}
	}
	return providers, nil
}

// BuildProviders follows LLM_PROVIDER_ORDER and skips providers that have no API key.
func BuildProviders(ctx context.Context, cfg *config.Config, log *logger.Logger) ([]llm.Provider, error) {
	providers := make([]llm.Provider, 0, len(cfg.ProviderOrder))
	for _, name := range cfg.ProviderOrder {
		switch name {
		case "openrouter":
			if key := cfg.OpenRouterAPIKey(); key != "" {
				providers = append(providers, llm.NewOpenRouter(key, cfg.OpenRouterModel))
				continue
			}
		case "groq":
			if cfg.GroqKey != "" {
				providers = append(providers, llm.NewGroq(cfg.GroqKey, cfg.GroqModel))
				continue
			}
		case "gemini":
			if cfg.GeminiKey != "" {
				g, err := llm.NewGemini(ctx, cfg.GeminiKey, cfg.GeminiModel)
				if err != nil {
					return nil, err
				}
				providers = append(providers, g)
				continue
			}
		}
		log.Warn("skipping LLM provider without api key", "provider", name)
	}

	if len(providers) == 0 {
		log.Warn("no LLM providers configured, generation requests will fail")
	}
	return providers, nil
}

func provideChain(providers []llm.Provider, cfg *config.Config, log *logger.Logger) *llm.Chain {
	chain := llm.NewChain(providers, cfg.AttemptTimeout, log)
	log.Info("llm provider chain ready", "providers", chain.Providers())
	return chain
}

func provideGenerator(chain *llm.Chain) services.Generator {
	return chain
}

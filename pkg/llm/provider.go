package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"solotrip/pkg/logger"
)

var ErrNoProviders = errors.New("llm: no providers configured")

// Provider turns one prompt into one raw completion.
type Provider interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// AcceptFunc decodes a raw completion; a non-nil error rejects the attempt.
type AcceptFunc func(raw string) error

type Failure struct {
	Provider string
	Err      error
}

type ExhaustedError struct {
	Failures []Failure
}

func (e *ExhaustedError) Error() string {
	if len(e.Failures) == 0 {
		return ErrNoProviders.Error()
	}
	parts := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		parts = append(parts, fmt.Sprintf("%s: %v", f.Provider, f.Err))
	}
	return "llm: all providers failed: " + strings.Join(parts, "; ")
}

// Chain tries its providers in order until one produces an accepted completion.
type Chain struct {
	providers      []Provider
	attemptTimeout time.Duration
	log            *logger.Logger
}

func NewChain(providers []Provider, attemptTimeout time.Duration, log *logger.Logger) *Chain {
	if log == nil {
		log = logger.NewNop()
	}
	return &Chain{providers: providers, attemptTimeout: attemptTimeout, log: log}
}

func (c *Chain) Providers() []string {
	names := make([]string, 0, len(c.providers))
	for _, p := range c.providers {
		names = append(names, p.Name())
	}
	return names
}

// Run returns the name of the provider whose completion was accepted, or an
// *ExhaustedError listing every rejected attempt.
func (c *Chain) Run(ctx context.Context, prompt string, accept AcceptFunc) (string, error) {
	failures := make([]Failure, 0, len(c.providers))

	for _, p := range c.providers {
		if err := ctx.Err(); err != nil {
			failures = append(failures, Failure{Provider: p.Name(), Err: err})
			break
		}

		start := time.Now()
		err := c.attempt(ctx, p, prompt, accept)
		if err == nil {
			c.log.Info("llm attempt accepted", "provider", p.Name(), "latency_ms", time.Since(start).Milliseconds())
			return p.Name(), nil
		}

		c.log.Warn("llm attempt failed", "provider", p.Name(), "error", err, "latency_ms", time.Since(start).Milliseconds())
		failures = append(failures, Failure{Provider: p.Name(), Err: err})
	}

	return "", &ExhaustedError{Failures: failures}
}

func (c *Chain) attempt(ctx context.Context, p Provider, prompt string, accept AcceptFunc) error {
	if c.attemptTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.attemptTimeout)
		defer cancel()
	}

	raw, err := p.Generate(ctx, prompt)
	if err != nil {
		return err
	}
	if strings.TrimSpace(raw) == "" {
		return errors.New("empty completion")
	}
	return accept(raw)
}

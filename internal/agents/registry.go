package agents

import (
	"sync"

	"github.com/ankitrawat448/stock-analysis-agent/internal/config"
	apperrors "github.com/ankitrawat448/stock-analysis-agent/internal/errors"
)

// RegistryState is the lifecycle state of the agent registry.
type RegistryState int

const (
	// StateUninitialized means Init has not been called yet.
	StateUninitialized RegistryState = iota
	// StateReady means agent handles were constructed successfully.
	StateReady
	// StateFailed means initialization failed; terminal for the session.
	StateFailed
)

// Registry owns the agent handles for one process. Initialization is lazy
// and idempotent: the first Init constructs the handles, later calls are
// no-ops. An initialization failure is terminal and every subsequent
// Summarizer call fails fast with the same cause.
type Registry struct {
	mu         sync.Mutex
	state      RegistryState
	initErr    error
	summarizer *Summarizer

	// newSummarizer is swappable for tests.
	newSummarizer func(cfg *config.Config) (*Summarizer, error)
}

// NewRegistry creates an uninitialized agent registry.
func NewRegistry() *Registry {
	return &Registry{
		newSummarizer: buildSummarizer,
	}
}

// Init constructs the agent handles once. Repeated calls are no-ops
// regardless of the first outcome.
func (r *Registry) Init(cfg *config.Config) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch r.state {
	case StateReady:
		return nil
	case StateFailed:
		return r.initErr
	}

	s, err := r.newSummarizer(cfg)
	if err != nil {
		r.state = StateFailed
		r.initErr = apperrors.NewAgentError("init", err)
		return r.initErr
	}

	r.state = StateReady
	r.summarizer = s
	return nil
}

// State returns the current registry state.
func (r *Registry) State() RegistryState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Summarizer returns the news summarizer handle. It fails fast with the
// original initialization error when the registry is failed, and with
// ErrAgentNotReady when Init was never called.
func (r *Registry) Summarizer() (*Summarizer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch r.state {
	case StateReady:
		return r.summarizer, nil
	case StateFailed:
		return nil, r.initErr
	default:
		return nil, apperrors.ErrAgentNotReady
	}
}

func buildSummarizer(cfg *config.Config) (*Summarizer, error) {
	if cfg.Credentials.Groq.APIKey == "" {
		return nil, apperrors.Wrap(apperrors.ErrConfigInvalid, "groq api key not configured")
	}

	llm := NewOpenAICompatClient(cfg.Credentials.Groq.APIKey, cfg.Agent.BaseURL, cfg.Agent.Model)

	var search WebSearchClient
	if cfg.Credentials.Tavily.APIKey != "" {
		search = NewTavilyClient(cfg.Credentials.Tavily.APIKey)
	}

	return NewSummarizer(llm, search, SummarizerOptions{
		MaxNewsItems:   cfg.Agent.MaxNewsItems,
		NewsWindowDays: cfg.Agent.NewsWindowDay,
	}), nil
}

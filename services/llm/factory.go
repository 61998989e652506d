package llm

import "fmt"

// Backend names accepted by New.
const (
	BackendAnthropic = "anthropic"
	BackendOpenAI    = "openai"
)

// New constructs the requested backend. An empty backend defaults to
// Anthropic.
func New(backend, model string) (Client, error) {
	switch backend {
	case "", BackendAnthropic:
		return NewAnthropicClient(model)
	case BackendOpenAI:
		return NewOpenAIClient(model)
	default:
		return nil, fmt.Errorf("unknown LLM backend %q (want %s or %s)", backend, BackendAnthropic, BackendOpenAI)
	}
}

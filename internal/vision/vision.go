package vision

import "context"

// Provider names accepted on the analyze form.
const (
	ProviderOpenAI = "openai"
	ProviderClaude = "claude"
)

// Analyzer sends one instruction plus an ordered sequence of normalized JPEG
// images to a multimodal model and returns the raw response text. Exactly one
// call is made per user request; retries are the caller's problem (and the
// caller does not retry).
type Analyzer interface {
	Analyze(ctx context.Context, instruction string, images [][]byte) (string, error)
}

package i

import (
	"time"
)

// Tokenizer issues and verifies bearer tokens for maze editors.
type Tokenizer interface {
	// Generate issues a token for subject carrying scopes, valid for ttl.
	Generate(subject string, scopes []string, ttl time.Duration) (string, error)

	// Decode validates a token and returns its claims.
	Decode(token string) (map[string]interface{}, error)
}

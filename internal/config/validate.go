package config

import (
	"fmt"
	"math"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if !strings.HasPrefix(c.Auth.AdminPasswordHash, "$2") {
		return fmt.Errorf("auth.admin_password_hash must be a bcrypt hash")
	}

	if err := c.Pathgen.validate(); err != nil {
		return fmt.Errorf("pathgen: %w", err)
	}

	if c.Embedder.SemanticEnabled() && c.Embedder.BatchSize <= 0 {
		return fmt.Errorf("embedder.batch_size must be > 0 (got %d)", c.Embedder.BatchSize)
	}

	if c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	if c.Storage.StorageEnabled() && c.Storage.PublicBaseURL == "" {
		return fmt.Errorf("storage.public_base_url is required when storage is enabled")
	}

	return nil
}

func (p *PathgenConfig) validate() error {
	if p.MaxPathLength <= 0 {
		return fmt.Errorf("max_path_length must be > 0 (got %d)", p.MaxPathLength)
	}
	if p.MaxFeatures <= 0 {
		return fmt.Errorf("max_features must be > 0 (got %d)", p.MaxFeatures)
	}
	if p.TFIDFWeight < 0 || p.SemanticWeight < 0 {
		return fmt.Errorf("signal weights must be >= 0")
	}
	if sum := p.TFIDFWeight + p.SemanticWeight; math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("tfidf_weight + semantic_weight must equal 1.0 (got %v)", sum)
	}
	if p.SuggestionLimit <= 0 {
		return fmt.Errorf("suggestion_limit must be > 0 (got %d)", p.SuggestionLimit)
	}
	return nil
}

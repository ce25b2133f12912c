package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Authority.validate(); err != nil {
		return fmt.Errorf("authority: %w", err)
	}

	if err := c.Proxy.validate(); err != nil {
		return fmt.Errorf("proxy: %w", err)
	}

	if c.RateLimit.NormalizePerMinute <= 0 {
		return fmt.Errorf("rate_limit.normalize_per_minute must be > 0 (got %d)", c.RateLimit.NormalizePerMinute)
	}

	return nil
}

func (a *AuthorityConfig) validate() error {
	if a.MaxLabelLength <= 0 {
		return fmt.Errorf("max_label_length must be > 0 (got %d)", a.MaxLabelLength)
	}
	if a.KeyBatchSize <= 0 {
		return fmt.Errorf("key_batch_size must be > 0 (got %d)", a.KeyBatchSize)
	}
	if a.DefaultListLimit <= 0 || a.DefaultListLimit > 200 {
		return fmt.Errorf("default_list_limit must be in 1..200 (got %d)", a.DefaultListLimit)
	}
	if a.MaxMergeGroupsPerRun <= 0 {
		return fmt.Errorf("max_merge_groups_per_run must be > 0 (got %d)", a.MaxMergeGroupsPerRun)
	}
	return nil
}

func (p *ProxyConfig) validate() error {
	if p.BaseURL != "" {
		u, err := url.Parse(p.BaseURL)
		if err != nil {
			return fmt.Errorf("base_url: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("base_url must be an http(s) URL (got %q)", p.BaseURL)
		}
		p.BaseURL = strings.TrimRight(p.BaseURL, "/")
	}

	p.TrustedProxies = ParseList(p.TrustedProxiesRaw)
	return nil
}

// ParseList splits a comma-separated string into trimmed, non-empty items.
// An empty string returns a nil slice.
func ParseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		items = append(items, p)
	}
	return items
}

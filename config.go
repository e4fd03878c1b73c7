package functional

import (
	"fmt"
	"os"
	"time"

	json "github.com/goccy/go-json"
)

// Config loading reads a file of named policy and cache entries, decoded
// with github.com/goccy/go-json, validated eagerly at load time so mistakes
// surface before any policy is built rather than on first use.

type (
	configFile struct {
		Policies map[string]PolicyConfig `json:"policies"`
		Caches   map[string]CacheConfigJSON `json:"caches"`
	}

	// PolicyConfig is the JSON-decoded configuration for one
	// [CompositeResiliencePolicy].
	PolicyConfig struct {
		Timeout           string              `json:"timeout,omitempty"`
		PerAttemptTimeout string              `json:"per_attempt_timeout,omitempty"`
		CircuitBreaker    *CircuitBreakerCfg  `json:"circuit_breaker,omitempty"`
		Retry             *RetryCfg           `json:"retry,omitempty"`
		Bulkhead          *BulkheadCfg        `json:"bulkhead,omitempty"`
	}

	// CircuitBreakerCfg is the JSON shape of a circuit breaker section.
	CircuitBreakerCfg struct {
		FailureThreshold int    `json:"failure_threshold,omitempty"`
		ResetTimeout     string `json:"reset_timeout,omitempty"`
	}

	// RetryCfg is the JSON shape of a retry section.
	RetryCfg struct {
		MaxAttempts int    `json:"max_attempts"`
		Backoff     string `json:"backoff"`
		Initial     string `json:"initial"`
		Increment   string `json:"increment,omitempty"`
		Multiplier  float64 `json:"multiplier,omitempty"`
		MaxDelay    string `json:"max_delay,omitempty"`
	}

	// BulkheadCfg is the JSON shape of a bulkhead section.
	BulkheadCfg struct {
		MaxConcurrency int `json:"max_concurrency"`
		MaxQueueSize   int `json:"max_queue_size"`
	}

	// CacheConfigJSON is the JSON shape of a memoize-options section.
	CacheConfigJSON struct {
		MaxSize    int    `json:"max_size"`
		Expiration string `json:"expiration,omitempty"`
	}
)

// LoadPolicyConfig reads a JSON configuration file and returns the
// [PolicyConfig] for the named policy entry.
func LoadPolicyConfig(path, name string) (PolicyConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PolicyConfig{}, fmt.Errorf("functional: read policy config: %w", err)
	}

	var cfg configFile
	if err := json.Unmarshal(data, &cfg); err != nil {
		return PolicyConfig{}, fmt.Errorf("functional: parse policy config: %w", err)
	}

	pc, ok := cfg.Policies[name]
	if !ok {
		return PolicyConfig{}, fmt.Errorf("functional: policy %q not found in config", name)
	}

	if _, err := BuildCompositeResiliencePolicy[struct{}](pc, func(err error) error { return err }); err != nil {
		return PolicyConfig{}, fmt.Errorf("functional: policy %q: %w", name, err)
	}

	return pc, nil
}

// LoadCacheConfig reads a JSON configuration file and returns
// [MemoizeOptions] (minus Provider, Clock, and Hooks, which are runtime
// concerns the config file cannot express) for the named cache entry.
func LoadCacheConfig[K comparable, V any](path, name string) (MemoizeOptions[K, V], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return MemoizeOptions[K, V]{}, fmt.Errorf("functional: read cache config: %w", err)
	}

	var cfg configFile
	if err := json.Unmarshal(data, &cfg); err != nil {
		return MemoizeOptions[K, V]{}, fmt.Errorf("functional: parse cache config: %w", err)
	}

	raw, ok := cfg.Caches[name]
	if !ok {
		return MemoizeOptions[K, V]{}, fmt.Errorf("functional: cache %q not found in config", name)
	}

	opts := MemoizeOptions[K, V]{MaxSize: raw.MaxSize}
	if raw.Expiration != "" {
		d, err := time.ParseDuration(raw.Expiration)
		if err != nil {
			return MemoizeOptions[K, V]{}, fmt.Errorf("functional: cache %q: expiration: %w", name, err)
		}
		opts.Expiration = d
	}

	return opts, nil
}

// BuildCompositeResiliencePolicy converts a [PolicyConfig] into a
// [CompositeResiliencePolicy] for the given coercion function. Code-level
// options (Hooks, Clock, RetryPredicate, BreakPredicate) are not
// expressible in JSON and are left unset on the policies built here.
func BuildCompositeResiliencePolicy[T any, E error](cfg PolicyConfig, coerce func(error) E) (*CompositeResiliencePolicy[T, E], error) {
	builder := NewCompositeResiliencePolicyBuilder[T, E](coerce)

	if cfg.Timeout != "" {
		d, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("timeout: %w", err)
		}
		builder.WithTimeout(NewTimeoutPolicy(d, coerce))
	}

	if cfg.PerAttemptTimeout != "" {
		d, err := time.ParseDuration(cfg.PerAttemptTimeout)
		if err != nil {
			return nil, fmt.Errorf("per_attempt_timeout: %w", err)
		}
		builder.WithPerAttemptTimeout(NewTimeoutPolicy(d, coerce))
	}

	if cfg.CircuitBreaker != nil {
		resetTimeout := 30 * time.Second
		if cfg.CircuitBreaker.ResetTimeout != "" {
			d, err := time.ParseDuration(cfg.CircuitBreaker.ResetTimeout)
			if err != nil {
				return nil, fmt.Errorf("circuit_breaker.reset_timeout: %w", err)
			}
			resetTimeout = d
		}
		threshold := cfg.CircuitBreaker.FailureThreshold
		if threshold <= 0 {
			threshold = 5
		}
		builder.WithCircuitBreaker(NewCircuitBreakerPolicy(threshold, resetTimeout, coerce))
	}

	if cfg.Retry != nil {
		strategy, err := buildBackoffStrategy(cfg.Retry)
		if err != nil {
			return nil, fmt.Errorf("retry: %w", err)
		}
		builder.WithRetry(&RetryPolicy[E]{
			MaxAttempts: cfg.Retry.MaxAttempts,
			Backoff:     strategy,
			Coerce:      coerce,
		})
	}

	if cfg.Bulkhead != nil {
		builder.WithBulkhead(NewBulkheadPolicy(cfg.Bulkhead.MaxConcurrency, cfg.Bulkhead.MaxQueueSize, coerce))
	}

	return builder.Build(), nil
}

// buildBackoffStrategy maps a retry config's backoff name to a
// [BackoffStrategy]. Supported names: "none", "constant", "linear",
// "exponential".
func buildBackoffStrategy(cfg *RetryCfg) (BackoffStrategy, error) {
	if cfg == nil {
		return NoBackoff(), nil
	}

	switch cfg.Backoff {
	case "", "none":
		return NoBackoff(), nil
	case "constant":
		d, err := parseDuration(cfg.Initial)
		if err != nil {
			return nil, fmt.Errorf("initial: %w", err)
		}
		return ConstantBackoff(d), nil
	case "linear":
		initial, err := parseDuration(cfg.Initial)
		if err != nil {
			return nil, fmt.Errorf("initial: %w", err)
		}
		increment, err := parseDuration(cfg.Increment)
		if err != nil {
			return nil, fmt.Errorf("increment: %w", err)
		}
		return LinearBackoff(initial, increment), nil
	case "exponential":
		initial, err := parseDuration(cfg.Initial)
		if err != nil {
			return nil, fmt.Errorf("initial: %w", err)
		}
		multiplier := cfg.Multiplier
		if multiplier == 0 {
			multiplier = 2
		}
		if cfg.MaxDelay != "" {
			maxDelay, err := parseDuration(cfg.MaxDelay)
			if err != nil {
				return nil, fmt.Errorf("max_delay: %w", err)
			}
			return ExponentialBackoffWithMax(initial, multiplier, maxDelay), nil
		}
		return ExponentialBackoff(initial, multiplier), nil
	default:
		return nil, fmt.Errorf("unknown backoff strategy: %q", cfg.Backoff)
	}
}

func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	return time.ParseDuration(s)
}

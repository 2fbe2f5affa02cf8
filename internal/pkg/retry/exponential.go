package retry

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/Phuti24/Singleton-Payment-API/internal/pkg/logger"
)

// RetryableFunc represents a function that can be retried
type RetryableFunc func(ctx context.Context) error

// Config holds retry configuration
type Config struct {
	MaxRetries    int              // Maximum number of retry attempts
	BaseDelay     time.Duration    // Base delay between retries
	MaxDelay      time.Duration    // Maximum delay between retries
	Multiplier    float64          // Exponential backoff multiplier
	Jitter        bool             // Add up to 10% random delay
	RetryableFunc func(error) bool // Function to determine if error is retryable
}

// DefaultConfig returns a default retry configuration
func DefaultConfig() Config {
	return Config{
		MaxRetries: 3,
		BaseDelay:  500 * time.Millisecond,
		MaxDelay:   5 * time.Second,
		Multiplier: 2.0,
		Jitter:     true,
		RetryableFunc: func(err error) bool {
			return true
		},
	}
}

// Retrier retries dependency connections at startup with exponential backoff
type Retrier struct {
	config Config
	name   string
}

// New creates a retrier for the named dependency
func New(name string, config Config) *Retrier {
	if config.RetryableFunc == nil {
		config.RetryableFunc = func(error) bool { return true }
	}
	return &Retrier{config: config, name: name}
}

// NewWithDefaults creates a retrier with default configuration
func NewWithDefaults(name string) *Retrier {
	return New(name, DefaultConfig())
}

// Execute runs fn until it succeeds, returns a non-retryable error, or the
// attempts are exhausted.
func (r *Retrier) Execute(ctx context.Context, fn RetryableFunc) error {
	var lastErr error

	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn(ctx)
		if err == nil {
			if attempt > 0 {
				logger.Info("Connected after retries",
					logger.String("dependency", r.name),
					logger.Int("attempts", attempt+1))
			}
			return nil
		}

		lastErr = err

		if !r.config.RetryableFunc(err) {
			return err
		}

		if attempt == r.config.MaxRetries {
			break
		}

		delay := r.calculateDelay(attempt)

		logger.Warn("Connection failed, retrying",
			logger.String("dependency", r.name),
			logger.Err(err),
			logger.Int("attempt", attempt+1),
			logger.Duration("delay", delay))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return fmt.Errorf("%s: retry limit exceeded after %d attempts: %w", r.name, r.config.MaxRetries+1, lastErr)
}

func (r *Retrier) calculateDelay(attempt int) time.Duration {
	delay := float64(r.config.BaseDelay) * math.Pow(r.config.Multiplier, float64(attempt))

	if delay > float64(r.config.MaxDelay) {
		delay = float64(r.config.MaxDelay)
	}

	if r.config.Jitter {
		delay += delay * 0.1 * rand.Float64()
	}

	return time.Duration(delay)
}

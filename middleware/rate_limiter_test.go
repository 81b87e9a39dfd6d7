package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"fieldserve/config"
)

func TestGetLimiterUsesConfiguredBudget(t *testing.T) {
	prev := config.AppConfig.MaxRequestsPerMin
	config.AppConfig.MaxRequestsPerMin = 3
	defer func() { config.AppConfig.MaxRequestsPerMin = prev }()

	store := &rateLimiterStore{limiters: make(map[string]*rate.Limiter)}
	limiter := store.getLimiter("10.0.0.1")

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow(), "request %d within budget", i+1)
	}
	assert.False(t, limiter.Allow(), "budget exhausted")

	// Each IP carries its own budget.
	assert.True(t, store.getLimiter("10.0.0.2").Allow())
}

func TestGetLimiterDefaultsWhenUnconfigured(t *testing.T) {
	prev := config.AppConfig.MaxRequestsPerMin
	config.AppConfig.MaxRequestsPerMin = 0
	defer func() { config.AppConfig.MaxRequestsPerMin = prev }()

	store := &rateLimiterStore{limiters: make(map[string]*rate.Limiter)}
	assert.Equal(t, 200, store.getLimiter("10.0.0.3").Burst())
}

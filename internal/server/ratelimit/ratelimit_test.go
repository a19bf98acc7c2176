package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testConfig(limit, burst int) *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/score", Method: "POST", Limit: limit, Window: time.Minute, Burst: burst},
		},
	}
}

func TestAllow_WithinBurst(t *testing.T) {
	l := NewLimiter(testConfig(60, 3))
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, _ := l.Allow("client-a", "/score", "POST")
		assert.True(t, allowed, "request %d should be allowed", i)
	}
}

func TestAllow_BurstExhausted(t *testing.T) {
	l := NewLimiter(testConfig(60, 2))
	defer l.Stop()

	l.Allow("client-a", "/score", "POST")
	l.Allow("client-a", "/score", "POST")

	allowed, info := l.Allow("client-a", "/score", "POST")
	assert.False(t, allowed)
	assert.Equal(t, 60, info.Limit)
	assert.GreaterOrEqual(t, info.RetryAfter, time.Duration(0))
}

func TestAllow_ClientsIsolated(t *testing.T) {
	l := NewLimiter(testConfig(60, 1))
	defer l.Stop()

	allowed, _ := l.Allow("client-a", "/score", "POST")
	assert.True(t, allowed)
	allowed, _ = l.Allow("client-a", "/score", "POST")
	assert.False(t, allowed)

	// A different client has its own bucket.
	allowed, _ = l.Allow("client-b", "/score", "POST")
	assert.True(t, allowed)
}

func TestAllow_Disabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("client-a", "/score", "POST")
		assert.True(t, allowed)
	}
}

func TestAllow_HealthUnlimited(t *testing.T) {
	l := NewLimiter(testConfig(1, 1))
	defer l.Stop()

	for i := 0; i < 50; i++ {
		allowed, _ := l.Allow("client-a", "/health", "GET")
		assert.True(t, allowed)
	}
}

func TestMatchEndpoint_ExactAndPrefix(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/score", Method: "POST", Limit: 10},
		{Path: "/scores/", Method: "GET", Limit: 20},
	}

	exact := MatchEndpoint("/score", "POST", configs)
	assert.NotNil(t, exact)
	assert.Equal(t, 10, exact.Limit)

	prefix := MatchEndpoint("/scores/abc-123", "GET", configs)
	assert.NotNil(t, prefix)
	assert.Equal(t, 20, prefix.Limit)

	assert.Nil(t, MatchEndpoint("/other", "GET", configs))
}

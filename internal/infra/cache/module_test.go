package cache

import (
	"testing"

	"tidewise/config"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SelectsBackend(t *testing.T) {
	cfg := &config.Config{}
	cfg.ApplyDefaults()

	c, err := New(Params{Config: cfg, Clock: clockwork.NewFakeClock()})
	require.NoError(t, err)
	assert.IsType(t, &memoryCache{}, c)

	cfg.Cache.Backend = "redis"
	_, err = New(Params{Config: cfg, Clock: clockwork.NewFakeClock()})
	assert.Error(t, err, "redis backend without a client")

	cfg.Cache.Backend = "memcached"
	_, err = New(Params{Config: cfg, Clock: clockwork.NewFakeClock()})
	assert.Error(t, err)
}

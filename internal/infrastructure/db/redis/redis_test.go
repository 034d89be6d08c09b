package redis

import (
	"crypto/tls"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_OptionsDefaults(t *testing.T) {
	opts := Config{Addr: "localhost:6379"}.options()

	assert.Equal(t, "localhost:6379", opts.Addr)
	assert.Equal(t, defaultDialTimeout, opts.DialTimeout)
	assert.Equal(t, defaultDialTimeout, opts.ReadTimeout)
	assert.Zero(t, opts.PoolSize)
	assert.Nil(t, opts.TLSConfig)
}

func TestConfig_OptionsCarrySettings(t *testing.T) {
	opts := Config{
		Addr:        "cache.internal:6380",
		Username:    "rates",
		Password:    "s3cret",
		DB:          3,
		PoolSize:    40,
		TLS:         true,
		DialTimeout: time.Second,
	}.options()

	assert.Equal(t, "rates", opts.Username)
	assert.Equal(t, "s3cret", opts.Password)
	assert.Equal(t, 3, opts.DB)
	assert.Equal(t, 40, opts.PoolSize)
	assert.Equal(t, time.Second, opts.WriteTimeout)
	require.NotNil(t, opts.TLSConfig)
	assert.Equal(t, uint16(tls.VersionTLS12), opts.TLSConfig.MinVersion)
}

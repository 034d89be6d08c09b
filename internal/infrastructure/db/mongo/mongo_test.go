package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func TestConfig_ClientOptionsDefaults(t *testing.T) {
	opts := Config{URI: "mongodb://localhost:27017", Database: "rates"}.clientOptions()

	require.NotNil(t, opts.AppName)
	assert.Equal(t, defaultAppName, *opts.AppName)
	require.NotNil(t, opts.ServerSelectionTimeout)
	assert.Equal(t, defaultServerSelectionTimeout, *opts.ServerSelectionTimeout)
	assert.Nil(t, opts.MaxPoolSize)
	require.NotNil(t, opts.ReadPreference)
	assert.Equal(t, readpref.PrimaryPreferredMode, opts.ReadPreference.Mode())
}

func TestConfig_ClientOptionsOverrides(t *testing.T) {
	opts := Config{
		URI:                    "mongodb://localhost:27017",
		Database:               "rates",
		AppName:                "rates-worker",
		MaxPoolSize:            25,
		ServerSelectionTimeout: 2 * time.Second,
	}.clientOptions()

	assert.Equal(t, "rates-worker", *opts.AppName)
	assert.Equal(t, 2*time.Second, *opts.ServerSelectionTimeout)
	require.NotNil(t, opts.MaxPoolSize)
	assert.Equal(t, uint64(25), *opts.MaxPoolSize)
}

func TestConnect_RequiresDatabase(t *testing.T) {
	_, _, err := Connect(context.Background(), Config{URI: "mongodb://localhost:27017"})
	assert.ErrorContains(t, err, "database name is required")
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	t.Run("valid config passes", func(t *testing.T) {
		cfg := &Config{}
		cfg.setDefaults()
		assert.NoError(t, VerifyAgainstEmbeddedSchema(cfg))
	})

	t.Run("missing listen fails", func(t *testing.T) {
		cfg := &Config{}
		cfg.setDefaults()
		cfg.Server.Listen = ""
		require.Error(t, VerifyAgainstEmbeddedSchema(cfg))
	})

	t.Run("sub-second extraction timeout fails", func(t *testing.T) {
		cfg := &Config{}
		cfg.setDefaults()
		cfg.Extraction.Timeout = 100 * time.Millisecond
		require.Error(t, VerifyAgainstEmbeddedSchema(cfg))
	})
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)
	assert.NotEmpty(t, schema.Definitions)
}

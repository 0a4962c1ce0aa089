package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientRequiresAPIKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClient(tt.key)

			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Nil(t, c)
		})
	}
}

func TestNewClientWithKey(t *testing.T) {
	c, err := NewClient("some-key", WithLogger(quietLogger()))
	require.NoError(t, err)
	require.NotNil(t, c)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("FREIGHT_TEST_DIR", "/var/lib/freight")

	tests := []struct {
		input string
		want  string
	}{
		{input: "", want: ""},
		{input: ":memory:", want: ":memory:"},
		{input: "~", want: home},
		{input: "~/sessions.db", want: filepath.Join(home, "sessions.db")},
		{input: "$FREIGHT_TEST_DIR/sessions.db", want: "/var/lib/freight/sessions.db"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.input))
		})
	}
}

func TestDatabasePath(t *testing.T) {
	v := viper.New()
	assert.Equal(t, DefaultDatabasePath, DatabasePath(v))

	t.Setenv("FREIGHT_TEST_DIR", "/tmp/freight")
	v.Set(KeyDatabasePath, "$FREIGHT_TEST_DIR/sessions.db")
	assert.Equal(t, "/tmp/freight/sessions.db", DatabasePath(v))
}

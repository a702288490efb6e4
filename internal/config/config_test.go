package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoleBindings(t *testing.T) {
	bindings, err := ParseRoleBindings("🛠️|role-dev|Development Ping, 🎵|role-sotd|SOTD Ping")
	require.NoError(t, err)
	require.Len(t, bindings, 2)

	assert.Equal(t, RoleBinding{Emoji: "🛠️", RoleID: "role-dev", Label: "Development Ping"}, bindings[0])
	assert.Equal(t, RoleBinding{Emoji: "🎵", RoleID: "role-sotd", Label: "SOTD Ping"}, bindings[1])
}

func TestParseRoleBindingsEmpty(t *testing.T) {
	bindings, err := ParseRoleBindings("")
	require.NoError(t, err)
	assert.Empty(t, bindings)
}

func TestParseRoleBindingsMalformed(t *testing.T) {
	_, err := ParseRoleBindings("🛠️|role-dev")
	assert.Error(t, err)

	_, err = ParseRoleBindings("|role-dev|Label")
	assert.Error(t, err)
}

func TestLoadRequiresToken(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "token")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "info", cfg.LogLevel)
}

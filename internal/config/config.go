package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// RoleBinding is a deploy-time reaction role mapping parsed from the environment
type RoleBinding struct {
	Emoji  string
	RoleID string
	Label  string
}

// Config holds the bot's environment-backed configuration
type Config struct {
	// Token is the bot credential; the process fails to start without it
	Token string

	// ApplicationID is the Discord application ID for command registration
	ApplicationID string

	// GuildID optionally scopes command registration to one guild (development)
	GuildID string

	// DataDir is the root directory for persisted state
	DataDir string

	// LogLevel selects the zerolog level (debug, info, warn, error)
	LogLevel string

	// WelcomeChannelID is where welcome embeds are sent; empty disables them
	WelcomeChannelID string

	// SOTDChannelID is where the daily song announcement is posted; empty
	// disables the announcement
	SOTDChannelID string

	// SOTDPingRoleID is mentioned in the announcement, optional
	SOTDPingRoleID string

	// RoleChannelID is where the reaction role embed is posted
	RoleChannelID string

	// RoleBindings are the emoji to role mappings; empty disables reaction roles
	RoleBindings []RoleBinding
}

// Load reads the configuration from the environment
func Load() (*Config, error) {
	cfg := &Config{
		Token:            os.Getenv("BOT_TOKEN"),
		ApplicationID:    os.Getenv("APPLICATION_ID"),
		GuildID:          os.Getenv("GUILD_ID"),
		DataDir:          getEnv("DATA_DIR", "data"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		WelcomeChannelID: os.Getenv("WELCOME_CHANNEL_ID"),
		SOTDChannelID:    os.Getenv("SOTD_CHANNEL_ID"),
		SOTDPingRoleID:   os.Getenv("SOTD_PING_ROLE_ID"),
		RoleChannelID:    os.Getenv("REACTION_ROLES_CHANNEL_ID"),
	}

	if cfg.Token == "" {
		return nil, errors.New("BOT_TOKEN environment variable is required")
	}

	bindings, err := ParseRoleBindings(os.Getenv("REACTION_ROLES"))
	if err != nil {
		return nil, err
	}
	cfg.RoleBindings = bindings

	return cfg, nil
}

// ParseRoleBindings parses the REACTION_ROLES value. Entries are separated by
// commas and formatted emoji|roleID|label, e.g.
//
//	🛠️|1341592449889337424|Development Ping,🎵|1341592272629661828|SOTD Ping
func ParseRoleBindings(value string) ([]RoleBinding, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	var bindings []RoleBinding
	for _, entry := range strings.Split(value, ",") {
		parts := strings.SplitN(strings.TrimSpace(entry), "|", 3)
		if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("invalid reaction role binding %q, want emoji|roleID|label", entry)
		}
		bindings = append(bindings, RoleBinding{
			Emoji:  parts[0],
			RoleID: parts[1],
			Label:  strings.TrimSpace(parts[2]),
		})
	}

	return bindings, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

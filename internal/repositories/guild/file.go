package guild

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/boardslol/staffbot/internal/models"
)

// Subdirectory of the data directory holding one JSON document per guild
const guildsDir = "guilds"

// Config holds configuration for the file-backed guild repository
type Config struct {
	// DataDir is the root directory for persisted state
	DataDir string
}

// fileRepository implements the Repository interface using one JSON document
// per guild on local disk. Mutations for a guild are serialized by a per-guild
// mutex held across the whole load-mutate-save cycle, so concurrent commands
// touching the same guild cannot lose updates.
type fileRepository struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewFile creates a new file-backed guild repository
func NewFile(cfg *Config) (*fileRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DataDir == "" {
		return nil, errors.New("data directory cannot be empty")
	}

	dir := filepath.Join(cfg.DataDir, guildsDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create guild data directory: %w", err)
	}

	return &fileRepository{
		dir:   dir,
		locks: make(map[string]*sync.Mutex),
	}, nil
}

// GetConfig retrieves the guild document, creating a default one if absent
func (r *fileRepository) GetConfig(ctx context.Context, input *GetConfigInput) (*models.GuildConfig, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	lock := r.guildLock(input.GuildID)
	lock.Lock()
	defer lock.Unlock()

	return r.loadOrCreate(input.GuildID)
}

// UpdateConfig loads the guild document, applies the mutation, and rewrites
// the whole document
func (r *fileRepository) UpdateConfig(ctx context.Context, input *UpdateConfigInput) (*models.GuildConfig, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	if input.Apply == nil {
		return nil, errors.New("apply func cannot be nil")
	}

	lock := r.guildLock(input.GuildID)
	lock.Lock()
	defer lock.Unlock()

	cfg, err := r.loadOrCreate(input.GuildID)
	if err != nil {
		return nil, err
	}

	if err := input.Apply(cfg); err != nil {
		return nil, err
	}

	if err := r.save(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// guildLock returns the mutex serializing access to one guild's document
func (r *fileRepository) guildLock(guildID string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	lock, ok := r.locks[guildID]
	if !ok {
		lock = &sync.Mutex{}
		r.locks[guildID] = lock
	}
	return lock
}

func (r *fileRepository) path(guildID string) string {
	return filepath.Join(r.dir, guildID+".json")
}

// loadOrCreate reads the guild document from disk. A missing document is
// created with defaults and persisted; a malformed one fails the load and is
// never repaired.
func (r *fileRepository) loadOrCreate(guildID string) (*models.GuildConfig, error) {
	data, err := os.ReadFile(r.path(guildID))
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read guild document %s: %w", guildID, err)
		}

		cfg := models.NewGuildConfig(guildID)
		if err := r.save(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	var cfg models.GuildConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse guild document %s: %w", guildID, err)
	}

	// Hand-edited documents may carry a null warnings map
	if cfg.Warnings == nil {
		cfg.Warnings = make(map[string][]string)
	}

	return &cfg, nil
}

// save rewrites the guild document atomically via a temp file rename
func (r *fileRepository) save(cfg *models.GuildConfig) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal guild document %s: %w", cfg.GuildID, err)
	}

	tmp := r.path(cfg.GuildID) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write guild document %s: %w", cfg.GuildID, err)
	}

	if err := os.Rename(tmp, r.path(cfg.GuildID)); err != nil {
		return fmt.Errorf("failed to replace guild document %s: %w", cfg.GuildID, err)
	}

	return nil
}

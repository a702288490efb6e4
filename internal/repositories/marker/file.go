package marker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/boardslol/staffbot/internal/models"
)

const (
	sotdFile        = "sotd.json"
	roleMessageFile = "reaction_roles.json"
)

// Config holds configuration for the file-backed marker repository
type Config struct {
	// DataDir is the root directory for persisted state
	DataDir string
}

// fileRepository implements the Repository interface using two small JSON
// files. Markers are only touched during single-threaded startup, so no
// locking is needed.
type fileRepository struct {
	dir string
}

// NewFile creates a new file-backed marker repository
func NewFile(cfg *Config) (*fileRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DataDir == "" {
		return nil, errors.New("data directory cannot be empty")
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return &fileRepository{dir: cfg.DataDir}, nil
}

// GetSOTDMarker retrieves the song of the day marker
func (r *fileRepository) GetSOTDMarker(ctx context.Context) (*models.SOTDMarker, error) {
	data, err := os.ReadFile(filepath.Join(r.dir, sotdFile))
	if err != nil {
		if os.IsNotExist(err) {
			return &models.SOTDMarker{}, nil
		}
		return nil, fmt.Errorf("failed to read sotd marker: %w", err)
	}

	var m models.SOTDMarker
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse sotd marker: %w", err)
	}

	return &m, nil
}

// SaveSOTDMarker overwrites the song of the day marker
func (r *fileRepository) SaveSOTDMarker(ctx context.Context, input *SaveSOTDMarkerInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	return r.write(sotdFile, &models.SOTDMarker{
		LastSent:  input.LastSent,
		MessageID: input.MessageID,
	})
}

// HasRoleMessage reports whether the reaction role sentinel exists
func (r *fileRepository) HasRoleMessage(ctx context.Context) (bool, error) {
	_, err := os.Stat(filepath.Join(r.dir, roleMessageFile))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat role message sentinel: %w", err)
	}
	return true, nil
}

// SaveRoleMessage persists the reaction role sentinel
func (r *fileRepository) SaveRoleMessage(ctx context.Context, input *SaveRoleMessageInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	return r.write(roleMessageFile, &models.RoleMessageMarker{
		MessageID: input.MessageID,
	})
}

func (r *fileRepository) write(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}

	path := filepath.Join(r.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}

	return nil
}

package loa

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

// Subdirectory of the data directory holding one JSON record per request
const requestsDir = "loa"

// ErrRequestNotFound is returned when a request is not found
var ErrRequestNotFound = errors.New("loa request not found")

// ErrAlreadyResolved is returned when resolving a request that is no longer pending
var ErrAlreadyResolved = errors.New("loa request already resolved")

// Config holds configuration for the file-backed LOA repository
type Config struct {
	// DataDir is the root directory for persisted state
	DataDir string
}

// fileRepository implements the Repository interface using one JSON record
// per request on local disk. A single mutex serializes all writes; request
// traffic is human-rate.
type fileRepository struct {
	dir string
	mu  sync.Mutex
}

// NewFile creates a new file-backed LOA request repository
func NewFile(cfg *Config) (*fileRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DataDir == "" {
		return nil, errors.New("data directory cannot be empty")
	}

	dir := filepath.Join(cfg.DataDir, requestsDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create loa data directory: %w", err)
	}

	return &fileRepository{dir: dir}, nil
}

// CreateRequest persists a new request
func (r *fileRepository) CreateRequest(ctx context.Context, input *CreateRequestInput) error {
	if input == nil || input.Request == nil {
		return errors.New("input and request cannot be nil")
	}

	if input.Request.ID == "" {
		return errors.New("request ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.save(input.Request)
}

// GetRequest retrieves a request by ID
func (r *fileRepository) GetRequest(ctx context.Context, input *GetRequestInput) (*models.LOARequest, error) {
	if input == nil || input.RequestID == "" {
		return nil, errors.New("input and request ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load(input.RequestID)
}

// AttachMessage records the posted approval card on the request
func (r *fileRepository) AttachMessage(ctx context.Context, input *AttachMessageInput) error {
	if input == nil || input.RequestID == "" {
		return errors.New("input and request ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	request, err := r.load(input.RequestID)
	if err != nil {
		return err
	}

	request.ChannelID = input.ChannelID
	request.MessageID = input.MessageID

	return r.save(request)
}

// ResolveRequest transitions a pending request to a terminal status
func (r *fileRepository) ResolveRequest(ctx context.Context, input *ResolveRequestInput) (*models.LOARequest, error) {
	if input == nil || input.RequestID == "" {
		return nil, errors.New("input and request ID cannot be empty")
	}

	if input.Status != models.LOAStatusAccepted && input.Status != models.LOAStatusDeclined {
		return nil, fmt.Errorf("invalid resolution status: %s", input.Status)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	request, err := r.load(input.RequestID)
	if err != nil {
		return nil, err
	}

	if request.Status != models.LOAStatusPending {
		return nil, ErrAlreadyResolved
	}

	request.Status = input.Status
	request.ResolvedBy = input.ResolvedBy
	request.ResolvedAt = input.ResolvedAt

	if err := r.save(request); err != nil {
		return nil, err
	}

	return request, nil
}

func (r *fileRepository) path(requestID string) string {
	return filepath.Join(r.dir, requestID+".json")
}

func (r *fileRepository) load(requestID string) (*models.LOARequest, error) {
	data, err := os.ReadFile(r.path(requestID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to read loa request %s: %w", requestID, err)
	}

	var request models.LOARequest
	if err := json.Unmarshal(data, &request); err != nil {
		return nil, fmt.Errorf("failed to parse loa request %s: %w", requestID, err)
	}

	return &request, nil
}

func (r *fileRepository) save(request *models.LOARequest) error {
	data, err := json.MarshalIndent(request, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal loa request %s: %w", request.ID, err)
	}

	tmp := r.path(request.ID) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write loa request %s: %w", request.ID, err)
	}

	if err := os.Rename(tmp, r.path(request.ID)); err != nil {
		return fmt.Errorf("failed to replace loa request %s: %w", request.ID, err)
	}

	return nil
}

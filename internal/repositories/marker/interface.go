package marker

import (
	"context"

	"github.com/boardslol/staffbot/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/boardslol/staffbot/internal/repositories/marker Repository

// Repository defines the interface for the process-wide announcement markers
type Repository interface {
	// GetSOTDMarker retrieves the song of the day marker. An absent marker is
	// not an error; a zero-value marker is returned instead.
	GetSOTDMarker(ctx context.Context) (*models.SOTDMarker, error)

	// SaveSOTDMarker overwrites the song of the day marker
	SaveSOTDMarker(ctx context.Context, input *SaveSOTDMarkerInput) error

	// HasRoleMessage reports whether the reaction role bootstrap sentinel
	// exists. Only presence matters; the content is never read back.
	HasRoleMessage(ctx context.Context) (bool, error)

	// SaveRoleMessage persists the reaction role bootstrap sentinel
	SaveRoleMessage(ctx context.Context, input *SaveRoleMessageInput) error
}

package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/courtbook/server/internal/models"
)

type CourtService struct {
	courts models.CourtsRepo
}

func NewCourtService(courts models.CourtsRepo) *CourtService {
	return &CourtService{courts: courts}
}

func (cs *CourtService) CreateCourt(ctx context.Context, court *models.Court, ownerID uuid.UUID) (*models.Court, error) {
	if err := models.Validate.Struct(court); err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidInput, err)
	}
	court.ID = uuid.New()
	court.OwnerID = ownerID
	court.IsActive = true
	if err := cs.courts.CreateCourt(ctx, court); err != nil {
		return nil, err
	}
	return court, nil
}

// ListCourts returns all active courts. When the database looks unprovisioned
// or unreachable the public listing degrades to an empty list instead of an
// error, so the landing page stays up.
func (cs *CourtService) ListCourts(ctx context.Context) ([]*models.Court, error) {
	courts, err := cs.courts.ListActiveCourts(ctx)
	if err != nil {
		if looksLikeMissingSchema(err) {
			return []*models.Court{}, nil
		}
		return nil, err
	}
	return courts, nil
}

func looksLikeMissingSchema(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "relation") ||
		strings.Contains(msg, "table") ||
		strings.Contains(msg, "connect")
}

func (cs *CourtService) GetCourt(ctx context.Context, id uuid.UUID) (*models.Court, error) {
	return cs.courts.GetCourtDetail(ctx, id)
}

// UpdateCourt applies a partial update after verifying ownership. A mismatch
// is reported as not-found so the endpoint does not reveal court existence to
// non-owners.
func (cs *CourtService) UpdateCourt(ctx context.Context, courtID, requesterID uuid.UUID, updates map[string]interface{}) (*models.Court, error) {
	court, err := cs.courts.GetCourt(ctx, courtID)
	if err != nil {
		return nil, err
	}
	if court.OwnerID != requesterID {
		return nil, models.ErrNotFound
	}
	return cs.courts.UpdateCourt(ctx, courtID, updates)
}

func (cs *CourtService) ListOwnerCourts(ctx context.Context, ownerID uuid.UUID) ([]*models.Court, error) {
	return cs.courts.ListCourtsByOwner(ctx, ownerID)
}

// requireOwnership loads a court and checks the requester owns it, reporting
// a mismatch as not-found.
func requireOwnership(ctx context.Context, courts models.CourtsRepo, courtID, requesterID uuid.UUID) (*models.Court, error) {
	court, err := courts.GetCourt(ctx, courtID)
	if err != nil {
		return nil, err
	}
	if court.OwnerID != requesterID {
		return nil, models.ErrNotFound
	}
	return court, nil
}

package models

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ownerContact narrows the preloaded owner to public contact fields.
func ownerContact(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "phone")
}

func (r *GormRepo) CreateCourt(ctx context.Context, court *Court) error {
	if err := r.db.WithContext(ctx).Create(court).Error; err != nil {
		return fmt.Errorf("create court: %w", err)
	}
	return nil
}

func (r *GormRepo) GetCourt(ctx context.Context, id uuid.UUID) (*Court, error) {
	var court Court
	if err := r.db.WithContext(ctx).First(&court, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get court: %w", err)
	}
	return &court, nil
}

func (r *GormRepo) GetCourtDetail(ctx context.Context, id uuid.UUID) (*Court, error) {
	var court Court
	err := r.db.WithContext(ctx).
		Preload("Owner", ownerContact).
		Preload("Slots", func(db *gorm.DB) *gorm.DB {
			return db.Order("date ASC, start_time ASC")
		}).
		First(&court, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get court detail: %w", err)
	}
	return &court, nil
}

func (r *GormRepo) ListActiveCourts(ctx context.Context) ([]*Court, error) {
	var courts []*Court
	err := r.db.WithContext(ctx).
		Preload("Owner", ownerContact).
		Where("is_active = ?", true).
		Find(&courts).Error
	if err != nil {
		return nil, fmt.Errorf("list courts: %w", err)
	}
	return courts, nil
}

func (r *GormRepo) ListCourtsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Court, error) {
	var courts []*Court
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&courts).Error
	if err != nil {
		return nil, fmt.Errorf("list owner courts: %w", err)
	}
	return courts, nil
}

func (r *GormRepo) UpdateCourt(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*Court, error) {
	var court Court
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&court, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&court).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&court, "id = ?", id).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update court: %w", err)
	}
	return &court, nil
}

// File: /store/wastelog.go
package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"radlog-api/dosimetry"
	"radlog-api/models"
)

var (
	// ErrUnauthorized means the write or read had no resolved owner, or
	// the owner id does not match a known user.
	ErrUnauthorized = errors.New("no resolved owner for request")

	// ErrStoreUnavailable means the underlying database could not
	// complete the operation. Appends are not retried anywhere: without
	// an idempotency key a retry after a timeout could duplicate a
	// record, so the failure is surfaced to the caller as-is.
	ErrStoreUnavailable = errors.New("waste log store unavailable")
)

// WasteLog is the append-only log of waste-density calculations,
// partitioned by owner. No update or delete is exposed.
type WasteLog interface {
	// Append stores one evaluated calculation for the owner, assigning
	// id and created_at, and returns the stored record.
	Append(ownerID string, in dosimetry.Input, result dosimetry.Result) (*models.WasteRecord, error)

	// ListByOwner returns the owner's records newest first; records
	// sharing a created_at timestamp come back later-insert-first. An
	// owner with no records gets an empty slice, not an error.
	ListByOwner(ownerID string) ([]models.WasteRecord, error)
}

// GormWasteLog implements WasteLog on an injected GORM handle.
type GormWasteLog struct {
	db *gorm.DB
}

func NewGormWasteLog(db *gorm.DB) *GormWasteLog {
	return &GormWasteLog{db: db}
}

func (s *GormWasteLog) Append(ownerID string, in dosimetry.Input, result dosimetry.Result) (*models.WasteRecord, error) {
	if ownerID == "" {
		return nil, ErrUnauthorized
	}

	// The owner must exist before we write; a record may never be
	// orphaned of its user row.
	var owner models.User
	if err := s.db.Select("id").First(&owner, "id = ?", ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	record := models.WasteRecord{
		OwnerID:                ownerID,
		Isotope:                in.Isotope,
		GammaConstant:          in.GammaConstant,
		DistanceMeters:         in.DistanceMeters,
		DoseRateMicroSvPerHour: in.DoseRateMicroSvPerHour,
		MassGrams:              in.MassGrams,
		ActivityMBq:            result.ActivityMBq,
		ActivityBq:             result.ActivityBq,
		DensityBqPerGram:       result.DensityBqPerGram,
	}

	if err := s.db.Create(&record).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return &record, nil
}

func (s *GormWasteLog) ListByOwner(ownerID string) ([]models.WasteRecord, error) {
	if ownerID == "" {
		return nil, ErrUnauthorized
	}

	records := []models.WasteRecord{}
	if err := s.db.Where("owner_id = ?", ownerID).Order("created_at DESC, id DESC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return records, nil
}

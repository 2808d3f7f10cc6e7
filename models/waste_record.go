// File: /models/waste_record.go
package models

import (
	"time"
)

// WasteRecord is one saved waste-density calculation. Records are
// append-only: they are created once from the evaluated inputs and never
// updated afterwards. The auto-increment ID doubles as the tie-breaker
// when two records share a created_at timestamp.
type WasteRecord struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	OwnerID string `json:"owner_id" gorm:"not null;size:191;index:idx_waste_records_owner_created,priority:1"`

	Isotope                string  `json:"isotope" gorm:"not null;size:50"`
	GammaConstant          float64 `json:"gamma_constant" gorm:"not null"`
	DistanceMeters         float64 `json:"distance_meters" gorm:"not null"`
	DoseRateMicroSvPerHour float64 `json:"dose_rate_usv_per_hour" gorm:"not null"`
	MassGrams              float64 `json:"mass_grams" gorm:"not null"`

	// Derived fields, always recomputed from the four inputs above.
	ActivityMBq      float64 `json:"activity_mbq" gorm:"not null"`
	ActivityBq       float64 `json:"activity_bq" gorm:"not null"`
	DensityBqPerGram float64 `json:"density_bq_per_gram" gorm:"not null"`

	CreatedAt time.Time `json:"created_at" gorm:"index:idx_waste_records_owner_created,priority:2"`

	Owner User `json:"-" gorm:"foreignKey:OwnerID"`
}

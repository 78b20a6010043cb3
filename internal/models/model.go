// Package models implements all models for the koinochrista backend and the
// database layer they are stored in.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Model is the base model for all other models.
//
// IDs are sequential integers assigned by the database, matching the way the
// building's paper ledger numbers its entries.
type Model struct {
	ID        uint64         `json:"id" gorm:"primarykey" example:"1"`                // Sequential ID of the resource
	CreatedAt time.Time      `json:"createdAt" example:"2025-11-02T19:28:44.491514Z"` // Time the resource was created
	UpdatedAt time.Time      `json:"updatedAt" example:"2025-11-17T20:14:01.048145Z"` // Last time the resource was updated
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`                                  // Time the resource was marked as deleted
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (m *Model) AfterFind(_ *gorm.DB) error {
	m.CreatedAt = m.CreatedAt.In(time.UTC)
	m.UpdatedAt = m.UpdatedAt.In(time.UTC)

	return nil
}

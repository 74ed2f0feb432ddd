package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SearchTurn is a completed assistant query/answer pair persisted as search
// history. "New search" clears the live conversation but never these rows.
type SearchTurn struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	DoctorID  int       `json:"doctor_id" gorm:"not null;index"`
	Doctor    Doctor    `json:"-" gorm:"foreignKey:DoctorID;references:ID;constraint:OnDelete:CASCADE"`
	TurnID    string    `json:"turn_id" gorm:"type:varchar(32);not null"`
	Query     string    `json:"query" gorm:"type:text;not null"`
	Answer    string    `json:"answer" gorm:"type:text;not null"`
	Timestamp time.Time `json:"timestamp" gorm:"not null"`
}

func (s *SearchTurn) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

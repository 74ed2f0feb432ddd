package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	PatientID       uuid.UUID `json:"patient_id" gorm:"type:uuid;not null;index"`
	Patient         Patient   `json:"-" gorm:"foreignKey:PatientID;references:ID;constraint:OnDelete:CASCADE"`
	DoctorID        int       `json:"doctor_id" gorm:"not null;index"`
	Date            string    `json:"date" gorm:"type:varchar(32);not null;index"`
	Time            string    `json:"time" gorm:"type:varchar(16);not null"`
	Reason          string    `json:"reason" gorm:"type:text"`
	Status          string    `json:"status" gorm:"type:varchar(32)"`
	PatientCategory string    `json:"patient_category" gorm:"type:varchar(32)"`
	Type            string    `json:"type" gorm:"type:varchar(64)"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Patient struct {
	ID                    uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	DoctorID              int       `json:"doctor_id" gorm:"not null;index"`
	Doctor                Doctor    `json:"-" gorm:"foreignKey:DoctorID;references:ID;constraint:OnDelete:CASCADE"`
	MRN                   string    `json:"mrn" gorm:"type:varchar(64);not null"`
	Name                  string    `json:"name" gorm:"type:varchar(255);not null"`
	DateOfBirth           string    `json:"date_of_birth" gorm:"type:varchar(32)"`
	Age                   int       `json:"age"`
	Gender                string    `json:"gender" gorm:"type:varchar(32)"`
	InsuranceProvider     string    `json:"insurance_provider" gorm:"type:varchar(255)"`
	InsurancePolicyNumber string    `json:"insurance_policy_number" gorm:"type:varchar(64)"`
	CreatedAt             time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (p *Patient) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

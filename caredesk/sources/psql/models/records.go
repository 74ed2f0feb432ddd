package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Chart records: encounters, conditions, medications and lab reports belong
// to a patient and feed both the chart view and the suggestion generator.

type MedicalEncounter struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	PatientID     uuid.UUID `json:"patient_id" gorm:"type:uuid;not null;index"`
	Patient       Patient   `json:"-" gorm:"foreignKey:PatientID;references:ID;constraint:OnDelete:CASCADE"`
	EncounterDate string    `json:"encounter_date" gorm:"type:varchar(32);not null"`
	Reason        string    `json:"reason" gorm:"type:text"`
	Diagnosis     string    `json:"diagnosis" gorm:"type:text"`
	Notes         string    `json:"notes" gorm:"type:text"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (e *MedicalEncounter) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

type Condition struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	PatientID     uuid.UUID `json:"patient_id" gorm:"type:uuid;not null;index"`
	Patient       Patient   `json:"-" gorm:"foreignKey:PatientID;references:ID;constraint:OnDelete:CASCADE"`
	Name          string    `json:"name" gorm:"type:varchar(255);not null"`
	ICD10Code     string    `json:"icd10_code" gorm:"type:varchar(16)"`
	Status        string    `json:"status" gorm:"type:varchar(32)"`
	DiagnosedDate string    `json:"diagnosed_date" gorm:"type:varchar(32)"`
	ResolvedDate  *string   `json:"resolved_date,omitempty" gorm:"type:varchar(32)"`
	Notes         string    `json:"notes" gorm:"type:text"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (c *Condition) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// MedicationStatusDiscontinued is the status value that marks a medication
// as no longer active.
const MedicationStatusDiscontinued = "discontinued"

type Medication struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	PatientID      uuid.UUID `json:"patient_id" gorm:"type:uuid;not null;index"`
	Patient        Patient   `json:"-" gorm:"foreignKey:PatientID;references:ID;constraint:OnDelete:CASCADE"`
	Name           string    `json:"name" gorm:"type:varchar(255);not null"`
	Dosage         string    `json:"dosage" gorm:"type:varchar(128)"`
	Frequency      string    `json:"frequency" gorm:"type:varchar(128)"`
	Status         string    `json:"status" gorm:"type:varchar(32)"`
	PrescribedDate string    `json:"prescribed_date" gorm:"type:varchar(32)"`
	Notes          string    `json:"notes" gorm:"type:text"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (m *Medication) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// LabStatusNormal marks an in-range result; anything else is surfaced as
// abnormal by the suggestion generator.
const LabStatusNormal = "normal"

type LabReport struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	PatientID   uuid.UUID `json:"patient_id" gorm:"type:uuid;not null;index"`
	Patient     Patient   `json:"-" gorm:"foreignKey:PatientID;references:ID;constraint:OnDelete:CASCADE"`
	TestName    string    `json:"test_name" gorm:"type:varchar(255);not null"`
	TestDate    string    `json:"test_date" gorm:"type:varchar(32)"`
	ResultValue string    `json:"result_value" gorm:"type:varchar(128)"`
	Unit        string    `json:"unit" gorm:"type:varchar(64)"`
	NormalRange string    `json:"normal_range" gorm:"type:varchar(128)"`
	Status      string    `json:"status" gorm:"type:varchar(32)"`
	Notes       *string   `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (l *LabReport) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

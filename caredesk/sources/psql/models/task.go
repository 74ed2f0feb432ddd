package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Task is one to-do item in the task manager. Labels are kept as a
// comma-separated list, matching the lightweight label chips in the UI.
type Task struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	DoctorID    int        `json:"doctor_id" gorm:"not null;index"`
	Doctor      Doctor     `json:"-" gorm:"foreignKey:DoctorID;references:ID;constraint:OnDelete:CASCADE"`
	Title       string     `json:"title" gorm:"type:varchar(512);not null"`
	Description string     `json:"description" gorm:"type:text"`
	Project     string     `json:"project" gorm:"type:varchar(128)"`
	Labels      string     `json:"labels" gorm:"type:varchar(512)"`
	Priority    int        `json:"priority"`
	DueDate     *string    `json:"due_date,omitempty" gorm:"type:varchar(32)"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

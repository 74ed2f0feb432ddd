package models

import "time"

// Doctor is an account holder. Passwords are stored as bcrypt hashes and
// never serialized.
type Doctor struct {
	ID           int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Email        string    `json:"email" gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255);not null"`
	FullName     string    `json:"full_name" gorm:"type:varchar(255);not null"`
	NPIID        string    `json:"npi_id" gorm:"type:varchar(32)"`
	Specialty    string    `json:"specialty" gorm:"type:varchar(255)"`
	Location     string    `json:"location,omitempty" gorm:"type:varchar(255)"`
	Role         string    `json:"role,omitempty" gorm:"type:varchar(64)"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}

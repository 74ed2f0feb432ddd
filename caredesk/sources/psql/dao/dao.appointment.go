package dao

import (
	"caredesk/caredesk/sources/psql/models"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentDAO struct {
	DB *gorm.DB
}

func NewAppointmentDAO(db *gorm.DB) *AppointmentDAO {
	return &AppointmentDAO{DB: db}
}

func (dao *AppointmentDAO) CreateAppointment(ctx context.Context, appt *models.Appointment) error {
	return dao.DB.WithContext(ctx).Create(appt).Error
}

// ListAppointmentsByDate returns the doctor's calendar for one day, ordered
// by slot time.
func (dao *AppointmentDAO) ListAppointmentsByDate(ctx context.Context, doctorID int, date string) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := dao.DB.WithContext(ctx).
		Where("doctor_id = ? AND date = ?", doctorID, date).
		Order("time ASC").
		Find(&appts).Error
	return appts, err
}

func (dao *AppointmentDAO) UpdateAppointmentStatus(ctx context.Context, doctorID int, id uuid.UUID, status string) error {
	res := dao.DB.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND doctor_id = ?", id, doctorID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("appointment not found or forbidden")
	}
	return nil
}

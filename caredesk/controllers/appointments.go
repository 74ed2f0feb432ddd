package controllers

import (
	"caredesk/caredesk/sources/psql/dao"
	"caredesk/caredesk/sources/psql/models"
	"caredesk/caredesk/utils/types"
	"context"
	"errors"

	"github.com/google/uuid"
)

type AppointmentsController struct {
	dao *dao.AppointmentDAO
}

func NewAppointmentsController(dao *dao.AppointmentDAO) *AppointmentsController {
	return &AppointmentsController{dao: dao}
}

func (c *AppointmentsController) CreateAppointment(ctx context.Context, doctorID int, req types.AppointmentRequest) (*models.Appointment, error) {
	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		return nil, errors.New("invalid patient_id")
	}
	appt := &models.Appointment{
		PatientID:       patientID,
		DoctorID:        doctorID,
		Date:            req.Date,
		Time:            req.Time,
		Reason:          req.Reason,
		Status:          "scheduled",
		PatientCategory: req.PatientCategory,
		Type:            req.Type,
	}
	if err := c.dao.CreateAppointment(ctx, appt); err != nil {
		return nil, err
	}
	return appt, nil
}

// Calendar returns the doctor's appointments for one day, earliest first.
func (c *AppointmentsController) Calendar(ctx context.Context, doctorID int, date string) ([]models.Appointment, error) {
	return c.dao.ListAppointmentsByDate(ctx, doctorID, date)
}

func (c *AppointmentsController) UpdateStatus(ctx context.Context, doctorID int, id uuid.UUID, status string) error {
	return c.dao.UpdateAppointmentStatus(ctx, doctorID, id, status)
}

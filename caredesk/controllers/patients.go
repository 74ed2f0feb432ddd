package controllers

import (
	"caredesk/caredesk/services/suggest"
	"caredesk/caredesk/sources/psql/dao"
	"caredesk/caredesk/sources/psql/models"
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrPatientNotFound = errors.New("patient not found or forbidden")

// PatientChart bundles every record collection the chart panel renders.
type PatientChart struct {
	Patient     models.Patient            `json:"patient"`
	Encounters  []models.MedicalEncounter `json:"encounters"`
	Conditions  []models.Condition        `json:"conditions"`
	Medications []models.Medication       `json:"medications"`
	Labs        []models.LabReport        `json:"labs"`
}

type PatientsController struct {
	dao *dao.PatientDAO
}

func NewPatientsController(dao *dao.PatientDAO) *PatientsController {
	return &PatientsController{dao: dao}
}

func (c *PatientsController) ListPatients(ctx context.Context, doctorID int) ([]models.Patient, error) {
	return c.dao.ListPatientsByDoctor(ctx, doctorID)
}

// getOwnedPatient enforces that the record belongs to the acting doctor.
func (c *PatientsController) getOwnedPatient(ctx context.Context, doctorID int, patientID uuid.UUID) (*models.Patient, error) {
	patient, err := c.dao.GetPatientByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil || patient.DoctorID != doctorID {
		return nil, ErrPatientNotFound
	}
	return patient, nil
}

func (c *PatientsController) GetPatient(ctx context.Context, doctorID int, patientID uuid.UUID) (*models.Patient, error) {
	return c.getOwnedPatient(ctx, doctorID, patientID)
}

func (c *PatientsController) GetChart(ctx context.Context, doctorID int, patientID uuid.UUID) (*PatientChart, error) {
	patient, err := c.getOwnedPatient(ctx, doctorID, patientID)
	if err != nil {
		return nil, err
	}
	encounters, err := c.dao.GetEncountersByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	conditions, err := c.dao.GetConditionsByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	medications, err := c.dao.GetMedicationsByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	labs, err := c.dao.GetLabReportsByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return &PatientChart{
		Patient:     *patient,
		Encounters:  encounters,
		Conditions:  conditions,
		Medications: medications,
		Labs:        labs,
	}, nil
}

// Suggestions derives candidate questions from the patient's chart and
// returns them shuffled, so repeat views show different orderings.
func (c *PatientsController) Suggestions(ctx context.Context, doctorID int, patientID uuid.UUID) ([]string, error) {
	chart, err := c.GetChart(ctx, doctorID, patientID)
	if err != nil {
		return nil, err
	}
	questions := suggest.PatientQuestions(chart.Encounters, chart.Medications, chart.Conditions, chart.Labs)
	return suggest.Shuffle(questions), nil
}

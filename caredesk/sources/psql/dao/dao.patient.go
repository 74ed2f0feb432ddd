package dao

import (
	"caredesk/caredesk/sources/psql/models"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientDAO struct {
	DB *gorm.DB
}

func NewPatientDAO(db *gorm.DB) *PatientDAO {
	return &PatientDAO{DB: db}
}

func (dao *PatientDAO) GetPatientByID(ctx context.Context, id uuid.UUID) (*models.Patient, error) {
	var patient models.Patient
	err := dao.DB.WithContext(ctx).First(&patient, "id = ?", id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

func (dao *PatientDAO) ListPatientsByDoctor(ctx context.Context, doctorID int) ([]models.Patient, error) {
	var patients []models.Patient
	err := dao.DB.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("name ASC").
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (dao *PatientDAO) CreatePatient(ctx context.Context, patient *models.Patient) error {
	return dao.DB.WithContext(ctx).Create(patient).Error
}

// Chart record lookups, ordered the way the chart panel renders them.

func (dao *PatientDAO) GetEncountersByPatient(ctx context.Context, patientID uuid.UUID) ([]models.MedicalEncounter, error) {
	var encounters []models.MedicalEncounter
	err := dao.DB.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("encounter_date DESC").
		Find(&encounters).Error
	return encounters, err
}

func (dao *PatientDAO) GetConditionsByPatient(ctx context.Context, patientID uuid.UUID) ([]models.Condition, error) {
	var conditions []models.Condition
	err := dao.DB.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("diagnosed_date DESC").
		Find(&conditions).Error
	return conditions, err
}

func (dao *PatientDAO) GetMedicationsByPatient(ctx context.Context, patientID uuid.UUID) ([]models.Medication, error) {
	var medications []models.Medication
	err := dao.DB.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("prescribed_date DESC").
		Find(&medications).Error
	return medications, err
}

func (dao *PatientDAO) GetLabReportsByPatient(ctx context.Context, patientID uuid.UUID) ([]models.LabReport, error) {
	var labs []models.LabReport
	err := dao.DB.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("test_date DESC").
		Find(&labs).Error
	return labs, err
}

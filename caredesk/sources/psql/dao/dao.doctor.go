package dao

import (
	"caredesk/caredesk/sources/psql/models"
	"context"

	"gorm.io/gorm"
)

type DoctorDAO struct {
	DB *gorm.DB
}

func NewDoctorDAO(db *gorm.DB) *DoctorDAO {
	return &DoctorDAO{DB: db}
}

func (dao *DoctorDAO) GetDoctorByID(ctx context.Context, id int) (*models.Doctor, error) {
	var doctor models.Doctor
	err := dao.DB.WithContext(ctx).First(&doctor, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (dao *DoctorDAO) GetDoctorByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := dao.DB.WithContext(ctx).Where("email = ?", email).First(&doctor).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (dao *DoctorDAO) CreateDoctor(ctx context.Context, doctor *models.Doctor) error {
	return dao.DB.WithContext(ctx).Create(doctor).Error
}

func (dao *DoctorDAO) UpdateDoctor(ctx context.Context, doctor *models.Doctor) error {
	return dao.DB.WithContext(ctx).Save(doctor).Error
}

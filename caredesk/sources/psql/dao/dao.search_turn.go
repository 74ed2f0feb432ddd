package dao

import (
	"caredesk/caredesk/sources/psql/models"
	"context"

	"gorm.io/gorm"
)

type SearchTurnDAO struct {
	DB *gorm.DB
}

func NewSearchTurnDAO(db *gorm.DB) *SearchTurnDAO {
	return &SearchTurnDAO{DB: db}
}

func (dao *SearchTurnDAO) SaveTurn(ctx context.Context, turn *models.SearchTurn) error {
	return dao.DB.WithContext(ctx).Create(turn).Error
}

// ListRecentTurns returns up to limit history entries for a doctor, newest
// first. History survives "new search"; only the live conversation resets.
func (dao *SearchTurnDAO) ListRecentTurns(ctx context.Context, doctorID int, limit int) ([]models.SearchTurn, error) {
	var turns []models.SearchTurn
	err := dao.DB.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&turns).Error
	return turns, err
}

func (dao *SearchTurnDAO) GetTurnByTurnID(ctx context.Context, doctorID int, turnID string) (*models.SearchTurn, error) {
	var turn models.SearchTurn
	err := dao.DB.WithContext(ctx).
		Where("doctor_id = ? AND turn_id = ?", doctorID, turnID).
		First(&turn).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &turn, nil
}

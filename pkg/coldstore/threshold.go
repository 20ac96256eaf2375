package coldstore

import (
	"go.uber.org/zap"
	"gorm.io/gorm/clause"

	"github.com/VIVEGHA/ColdStoragebackend/pkg/common"
	"github.com/VIVEGHA/ColdStoragebackend/pkg/models"
)

// Thresholds are a single facility-wide row, pinned to ID 1 so repeated
// upserts update in place.
const thresholdsRowID = 1

func (c *ColdStore) upsertThresholds(input *models.Thresholds) error {
	logger := common.GetLoggerWith(
		common.LoggerNameCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryThreshold),
	)

	thresholds := models.Thresholds{
		ID:              thresholdsRowID,
		MaxTemperature:  input.MaxTemperature,
		AlertOnDoorOpen: input.AlertOnDoorOpen,
	}

	logger.Info("Received thresholds", zap.Reflect("thresholds", thresholds))

	err := c.Db.Conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&thresholds).Error

	if err == nil {
		logger.Info("Upserted thresholds", zap.Reflect("thresholds", thresholds))
	}

	return err
}

func (c *ColdStore) getThresholds() (*models.Thresholds, error) {
	var thresholds models.Thresholds
	err := c.Db.Conn.First(&thresholds, "id = ?", thresholdsRowID).Error
	return &thresholds, err
}

type IThresholdImpl struct {
	cold *ColdStore
}

func (it *IThresholdImpl) UpsertThresholds(input *models.Thresholds) error {
	return it.cold.upsertThresholds(input)
}

func (it *IThresholdImpl) GetThresholds() (*models.Thresholds, error) {
	return it.cold.getThresholds()
}

func (c *ColdStore) GetIThreshold() IThreshold {
	return &IThresholdImpl{cold: c}
}

package coldstore

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/VIVEGHA/ColdStoragebackend/pkg/common"
	"github.com/VIVEGHA/ColdStoragebackend/pkg/models"
)

func (c *ColdStore) checkAndStoreAlerts(reading *models.Reading) error {
	db := c.Db

	var thresholds models.Thresholds
	if err := db.Conn.First(&thresholds).Error; err != nil {
		// no thresholds configured, then no need to calculate alerts
		return nil
	}

	logger := common.GetLoggerWith(
		common.LoggerNameCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAlert),
	)

	if reading.Temperature > thresholds.MaxTemperature {
		alert := models.Alert{
			Timestamp: reading.Timestamp,
			Type:      models.AlertTypeTemperature,
			Message:   fmt.Sprintf("Temperature %.1f exceeded threshold %.1f", reading.Temperature, thresholds.MaxTemperature),
		}

		logger.Info("Alert found", zap.Reflect("alert", alert))

		if err := db.Conn.Create(&alert).Error; err != nil {
			return err
		}

		logger.Info("Alert saved", zap.Reflect("alert", alert))
	}

	if thresholds.AlertOnDoorOpen && reading.DoorStatus == models.DoorStatusOpen {
		alert := models.Alert{
			Timestamp: reading.Timestamp,
			Type:      models.AlertTypeDoor,
			Message:   "Door reported open",
		}

		logger.Info("Alert found", zap.Reflect("alert", alert))

		if err := db.Conn.Create(&alert).Error; err != nil {
			return err
		}

		logger.Info("Alert saved", zap.Reflect("alert", alert))
	}

	return nil
}

func (c *ColdStore) listAlerts() ([]models.Alert, error) {
	var alerts []models.Alert
	err := c.Db.Conn.
		Order("timestamp desc").
		Find(&alerts).Error
	return alerts, err
}

type IAlertImpl struct {
	cold *ColdStore
}

func (ia *IAlertImpl) ListAlerts() ([]models.Alert, error) {
	return ia.cold.listAlerts()
}

func (ia *IAlertImpl) CheckAndStoreAlerts(reading *models.Reading) error {
	return ia.cold.checkAndStoreAlerts(reading)
}

func (c *ColdStore) GetIAlert() IAlert {
	return &IAlertImpl{cold: c}
}

package coldstore

import (
	"go.uber.org/zap"

	"github.com/VIVEGHA/ColdStoragebackend/pkg/common"
	"github.com/VIVEGHA/ColdStoragebackend/pkg/models"
)

func (c *ColdStore) appendReading(input *models.Reading) error {
	logger := common.GetLoggerWith(
		common.LoggerNameCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryReading),
	)

	if err := c.Db.Conn.Create(input).Error; err != nil {
		return err
	}

	logger.Info("Appended reading", zap.Reflect("reading", input))
	return nil
}

// listAllReadings returns the entire history. Order comes from the timestamp
// column at read time, not from insertion order.
func (c *ColdStore) listAllReadings() ([]models.Reading, error) {
	var readings []models.Reading
	err := c.Db.Conn.
		Order("timestamp asc").
		Find(&readings).Error
	return readings, err
}

type IReadingImpl struct {
	cold *ColdStore
}

func (ir *IReadingImpl) Append(reading *models.Reading) error {
	return ir.cold.appendReading(reading)
}

func (ir *IReadingImpl) ListAll() ([]models.Reading, error) {
	return ir.cold.listAllReadings()
}

func (c *ColdStore) GetIReading() IReading {
	return &IReadingImpl{cold: c}
}

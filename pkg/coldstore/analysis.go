package coldstore

import (
	"errors"
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/VIVEGHA/ColdStoragebackend/pkg/common"
	"github.com/VIVEGHA/ColdStoragebackend/pkg/models"
)

// ErrNoReadings signals an empty reading history. It is a valid state, not a
// failure: callers map it to their "no data yet" representation.
var ErrNoReadings = errors.New("no sensor readings recorded yet")

// analyze computes the prediction over the entire stored history: the
// arithmetic mean of every temperature plus a uniform draw from [0, 0.5),
// rounded to one decimal. Read-only; the store is never mutated.
func (c *ColdStore) analyze() (*models.Analysis, error) {
	if c.Reading == nil {
		return nil, fmt.Errorf("reading service not available")
	}

	readings, err := c.Reading.ListAll()
	if err != nil {
		return nil, err
	}
	if len(readings) == 0 {
		return nil, ErrNoReadings
	}

	sum := common.Reducer(readings, func(acc float64, r models.Reading) float64 {
		return acc + r.Temperature
	}, 0.0)
	mean := sum / float64(len(readings))

	predicted := common.Round1(mean + rand.Float64()*0.5)

	logger := common.GetLoggerWith(
		common.LoggerNameCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAnalysis),
	)
	logger.Info("Computed temperature prediction",
		zap.Int("readings", len(readings)),
		zap.Float64("mean", mean),
		zap.Float64("predicted", predicted))

	return &models.Analysis{
		Readings:             readings,
		PredictedTemperature: predicted,
	}, nil
}

type IAnalysisImpl struct {
	cold *ColdStore
}

func (ia *IAnalysisImpl) Analyze() (*models.Analysis, error) {
	return ia.cold.analyze()
}

func (c *ColdStore) GetIAnalysis() IAnalysis {
	return &IAnalysisImpl{cold: c}
}

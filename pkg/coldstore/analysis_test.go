package coldstore

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VIVEGHA/ColdStoragebackend/pkg/common"
	"github.com/VIVEGHA/ColdStoragebackend/pkg/models"
	_ "github.com/VIVEGHA/ColdStoragebackend/pkg/testing"
)

func TestAnalyzeEmptyHistory(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, coldObj, _, _ := GetMockColdStoreWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	analysis, err := coldObj.Analysis.Analyze()
	assert.ErrorIs(t, err, ErrNoReadings)
	assert.Nil(t, analysis)
}

func TestAnalyze(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, coldObj, _, _ := GetMockColdStoreWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	base := time.Date(2026, 2, 11, 8, 0, 0, 0, time.UTC)
	temps := []float64{4.0, 5.0, 6.0} // mean 5.0
	for i, temp := range temps {
		require.NoError(t, coldObj.Reading.Append(&models.Reading{
			Temperature: temp,
			DoorStatus:  models.DoorStatusClosed,
			Timestamp:   base.Add(time.Duration(i) * time.Minute),
		}))
	}

	// the prediction draws a fresh offset each call, the bounds must hold
	// on every draw
	for range 100 {
		analysis, err := coldObj.Analysis.Analyze()
		require.NoError(t, err)
		require.Len(t, analysis.Readings, len(temps))

		assert.GreaterOrEqual(t, analysis.PredictedTemperature, 5.0)
		assert.LessOrEqual(t, analysis.PredictedTemperature, 5.5)
		assert.Equal(t, analysis.PredictedTemperature,
			math.Round(analysis.PredictedTemperature*10)/10)
	}

	analysis, err := coldObj.Analysis.Analyze()
	require.NoError(t, err)

	// history comes back chronological
	for i := 1; i < len(analysis.Readings); i++ {
		assert.False(t, analysis.Readings[i].Timestamp.Before(analysis.Readings[i-1].Timestamp))
	}
	assert.Equal(t, 4.0, analysis.Readings[0].Temperature)
}

func TestAnalyze_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, coldObj, _, _ := GetMockColdStoreWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	// force the reading service to be nil to cause reading not available
	coldObj.Reading = nil

	analysis, err := coldObj.Analysis.Analyze()
	require.Error(t, err)
	assert.Nil(t, analysis)
}

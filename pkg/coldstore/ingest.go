package coldstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/VIVEGHA/ColdStoragebackend/pkg/common"
	"github.com/VIVEGHA/ColdStoragebackend/pkg/metrics"
)

// ErrCycleInFlight reports that an ingestion cycle was skipped because a
// previous one has not finished. Triggers are dropped, never queued.
var ErrCycleInFlight = errors.New("ingestion cycle already running")

// runCycle performs one fetch-normalize-store pass and returns how many
// readings were appended. Records are processed sequentially in feed order;
// the first append failure aborts the cycle and already-appended readings
// stay. Alert evaluation failures are logged and never abort the cycle.
func (c *ColdStore) runCycle(ctx context.Context) (int, error) {
	if !c.cycleMu.TryLock() {
		metrics.ObserveIngestCycle(metrics.ResultSkipped, 0)
		return 0, ErrCycleInFlight
	}
	defer c.cycleMu.Unlock()

	logger := common.GetLoggerWith(
		common.LoggerNameCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryIngest),
	)

	if c.Feed == nil {
		return 0, fmt.Errorf("feed client not available")
	}
	if c.Reading == nil {
		return 0, fmt.Errorf("reading service not available")
	}

	started := time.Now()

	records, err := c.Feed.Fetch(ctx)
	if err != nil {
		metrics.IncFeedFetchFailure()
		metrics.ObserveIngestCycle(metrics.ResultFailure, time.Since(started))
		return 0, err
	}

	logger.Info("Ingestion cycle fetched records", zap.Int("count", len(records)))

	stored := 0
	for _, rec := range records {
		reading := NormalizeRecord(rec, time.Now())

		if err := c.Reading.Append(&reading); err != nil {
			metrics.ObserveIngestCycle(metrics.ResultFailure, time.Since(started))
			return stored, err
		}
		stored++

		if c.Alert != nil {
			if err := c.Alert.CheckAndStoreAlerts(&reading); err != nil {
				logger.Warn("Alert evaluation failed for reading", zap.Error(err))
			}
		}
	}

	metrics.AddReadingsStored(stored)
	metrics.ObserveIngestCycle(metrics.ResultSuccess, time.Since(started))
	logger.Info("Ingestion cycle completed", zap.Int("stored", stored))
	return stored, nil
}

type IIngestImpl struct {
	cold *ColdStore
}

func (ii *IIngestImpl) RunCycle(ctx context.Context) (int, error) {
	return ii.cold.runCycle(ctx)
}

func (c *ColdStore) GetIIngest() IIngest {
	return &IIngestImpl{cold: c}
}

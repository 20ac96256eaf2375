package coldstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/VIVEGHA/ColdStoragebackend/pkg/common"
	"github.com/VIVEGHA/ColdStoragebackend/pkg/feed"
	"github.com/VIVEGHA/ColdStoragebackend/pkg/models"
	_ "github.com/VIVEGHA/ColdStoragebackend/pkg/testing"
)

func TestRunCycle(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, coldObj, mockFeed, _ := GetMockColdStoreWithMemorySqliteDialector(t, true, false)
	defer ctrl.Finish()

	records := []feed.Record{
		{CreatedAt: "2026-02-11T08:00:00Z", EntryID: 1, Field1: strPtr("1"), Field2: strPtr("4.5")},
		{CreatedAt: "2026-02-11T08:01:00Z", EntryID: 2, Field1: strPtr("0"), Field2: nil},
		{CreatedAt: "not-a-timestamp", EntryID: 3, Field1: nil, Field2: strPtr("5.25\r\n")},
	}

	mockFeed.
		EXPECT().
		Fetch(gomock.Any()).
		Return(records, nil).
		Times(1)

	stored, err := coldObj.Ingest.RunCycle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stored)

	readings, err := coldObj.Reading.ListAll()
	require.NoError(t, err)
	require.Len(t, readings, 3)

	// dated records keep their instants, the undated one got stamped at
	// ingestion time and therefore sorts last
	assert.Equal(t, models.DoorStatusOpen, readings[0].DoorStatus)
	assert.Equal(t, 4.5, readings[0].Temperature)

	assert.Equal(t, models.DoorStatusClosed, readings[1].DoorStatus)
	assert.GreaterOrEqual(t, readings[1].Temperature, 33.0)
	assert.LessOrEqual(t, readings[1].Temperature, 38.0)

	assert.Equal(t, models.DoorStatusUnknown, readings[2].DoorStatus)
	assert.Equal(t, 5.25, readings[2].Temperature)
	assert.WithinDuration(t, time.Now(), readings[2].Timestamp, time.Minute)
}

func TestRunCycleFetchError(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, coldObj, mockFeed, _ := GetMockColdStoreWithMemorySqliteDialector(t, true, false)
	defer ctrl.Finish()

	mockFeed.
		EXPECT().
		Fetch(gomock.Any()).
		Return(nil, errors.New("feed down")).
		Times(1)

	stored, err := coldObj.Ingest.RunCycle(context.Background())
	require.Error(t, err)
	assert.Equal(t, 0, stored)

	readings, err := coldObj.Reading.ListAll()
	require.NoError(t, err)
	assert.Len(t, readings, 0)
}

func TestRunCycleSkipsWhenInFlight(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, coldObj, mockFeed, _ := GetMockColdStoreWithMemorySqliteDialector(t, true, false)
	defer ctrl.Finish()

	fetchEntered := make(chan struct{})
	releaseFetch := make(chan struct{})

	mockFeed.
		EXPECT().
		Fetch(gomock.Any()).
		DoAndReturn(func(ctx context.Context) ([]feed.Record, error) {
			close(fetchEntered)
			<-releaseFetch
			return []feed.Record{
				{CreatedAt: "2026-02-11T08:00:00Z", EntryID: 1, Field1: strPtr("0"), Field2: strPtr("4.0")},
			}, nil
		}).
		Times(1)

	firstDone := make(chan struct{})
	var firstStored int
	var firstErr error
	go func() {
		firstStored, firstErr = coldObj.Ingest.RunCycle(context.Background())
		close(firstDone)
	}()

	<-fetchEntered

	// second trigger while the first cycle holds the guard: dropped, not
	// queued
	stored, err := coldObj.Ingest.RunCycle(context.Background())
	assert.ErrorIs(t, err, ErrCycleInFlight)
	assert.Equal(t, 0, stored)

	close(releaseFetch)
	<-firstDone

	require.NoError(t, firstErr)
	assert.Equal(t, 1, firstStored)

	readings, err := coldObj.Reading.ListAll()
	require.NoError(t, err)
	assert.Len(t, readings, 1)
}

func TestRunCycleAlertFailureDoesNotAbort(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, coldObj, mockFeed, mockAlert := GetMockColdStoreWithMemorySqliteDialector(t, true, true)
	defer ctrl.Finish()

	records := []feed.Record{
		{CreatedAt: "2026-02-11T08:00:00Z", EntryID: 1, Field1: strPtr("1"), Field2: strPtr("40.0")},
		{CreatedAt: "2026-02-11T08:01:00Z", EntryID: 2, Field1: strPtr("0"), Field2: strPtr("4.0")},
	}

	mockFeed.
		EXPECT().
		Fetch(gomock.Any()).
		Return(records, nil).
		Times(1)

	mockAlert.
		EXPECT().
		CheckAndStoreAlerts(gomock.Any()).
		Return(errors.New("alert store down")).
		Times(2)

	stored, err := coldObj.Ingest.RunCycle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stored)

	readings, err := coldObj.Reading.ListAll()
	require.NoError(t, err)
	assert.Len(t, readings, 2)
}

func TestRunCycle_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, coldObj, mockFeed, _ := GetMockColdStoreWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	// no feed client wired
	stored, err := coldObj.Ingest.RunCycle(context.Background())
	require.Error(t, err)
	assert.Equal(t, 0, stored)

	// force the reading service to be nil to cause reading not available
	coldObj.Feed = mockFeed
	coldObj.Reading = nil

	stored, err = coldObj.Ingest.RunCycle(context.Background())
	require.Error(t, err)
	assert.Equal(t, 0, stored)
}

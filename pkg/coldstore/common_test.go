package coldstore

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/VIVEGHA/ColdStoragebackend/pkg/coldstore/mocks"
	"github.com/VIVEGHA/ColdStoragebackend/pkg/db"
)

func GetMockColdStoreWithMemorySqliteDialector(t *testing.T, useMockFeed, useMockAlert bool) (
	*gomock.Controller,
	*ColdStore,
	*mocks.MockIFeed,
	*mocks.MockIAlert,
) {
	ctrl := gomock.NewController(t)

	mockFeed := mocks.NewMockIFeed(ctrl)
	mockAlert := mocks.NewMockIAlert(ctrl)
	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations

	// tables are facility-global, wipe them so tests in this binary do not
	// observe each other's rows
	dbInstance.Conn.Exec("DELETE FROM readings")
	dbInstance.Conn.Exec("DELETE FROM alerts")
	dbInstance.Conn.Exec("DELETE FROM thresholds")

	coldInstance := &ColdStore{Db: *dbInstance}

	if useMockFeed {
		coldInstance.Feed = mockFeed
	}

	alertService := coldInstance.GetIAlert()
	if useMockAlert {
		alertService = mockAlert
	}

	coldInstance.WithServices(ServiceOpts{
		Reading:   coldInstance.GetIReading(),
		Ingest:    coldInstance.GetIIngest(),
		Analysis:  coldInstance.GetIAnalysis(),
		Alert:     alertService,
		Threshold: coldInstance.GetIThreshold(),
	})

	return ctrl, coldInstance, mockFeed, mockAlert
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}

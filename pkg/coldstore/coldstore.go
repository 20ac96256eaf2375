package coldstore

import (
	"context"
	"sync"

	"github.com/VIVEGHA/ColdStoragebackend/pkg/db"
	"github.com/VIVEGHA/ColdStoragebackend/pkg/feed"
	"github.com/VIVEGHA/ColdStoragebackend/pkg/models"
)

// IFeed is the slice of the feed client the ingestion cycle needs.
type IFeed interface {
	Fetch(ctx context.Context) ([]feed.Record, error)
}

type IReading interface {
	Append(reading *models.Reading) error
	ListAll() ([]models.Reading, error)
}

type IIngest interface {
	RunCycle(ctx context.Context) (int, error)
}

type IAnalysis interface {
	Analyze() (*models.Analysis, error)
}

type IAlert interface {
	CheckAndStoreAlerts(reading *models.Reading) error
	ListAlerts() ([]models.Alert, error)
}

type IThreshold interface {
	UpsertThresholds(input *models.Thresholds) error
	GetThresholds() (*models.Thresholds, error)
}

// ColdStore is the monitored cold room: its durable state plus the services
// operating on it. cycleMu serializes ingestion cycles across every trigger
// path.
type ColdStore struct {
	Db   db.DB
	Feed IFeed

	Reading   IReading
	Ingest    IIngest
	Analysis  IAnalysis
	Alert     IAlert
	Threshold IThreshold

	cycleMu sync.Mutex
}

type ServiceOpts struct {
	Reading   IReading
	Ingest    IIngest
	Analysis  IAnalysis
	Alert     IAlert
	Threshold IThreshold
}

func (c *ColdStore) WithServices(opts ServiceOpts) *ColdStore {
	if opts.Reading != nil {
		c.Reading = opts.Reading
	}
	if opts.Ingest != nil {
		c.Ingest = opts.Ingest
	}
	if opts.Analysis != nil {
		c.Analysis = opts.Analysis
	}
	if opts.Alert != nil {
		c.Alert = opts.Alert
	}
	if opts.Threshold != nil {
		c.Threshold = opts.Threshold
	}
	return c
}

// feedsim serves a ThingSpeak-style channel feed with synthetic cold storage
// readings. Point COLD_FEED_URL at http://<addr>/channel.json to run the
// backend against it without a real channel.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"sync/atomic"
	"time"
)

type feedSim struct {
	start       time.Time
	feeds       int
	stepSeconds int
	failRate    float64
	missingRate float64
	spikeRate   float64

	entrySeq   int64
	totalCalls int64
	failCalls  int64
}

type channelInfo struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Field1      string `json:"field1"`
	Field2      string `json:"field2"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
	LastEntryID int64  `json:"last_entry_id"`
}

type feedEntry struct {
	CreatedAt string  `json:"created_at"`
	EntryID   int64   `json:"entry_id"`
	Field1    *string `json:"field1"`
	Field2    *string `json:"field2"`
}

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

func main() {
	addr := getenvDefault("FEEDSIM_ADDR", ":3180")
	feeds := getenvIntDefault("FEEDSIM_FEEDS", 10)
	stepSeconds := getenvIntDefault("FEEDSIM_STEP_SECONDS", 60)
	failRate := getenvFloatDefault("FEEDSIM_FAIL_RATE", 0)
	missingRate := getenvFloatDefault("FEEDSIM_MISSING_RATE", 0.1)
	spikeRate := getenvFloatDefault("FEEDSIM_SPIKE_RATE", 0.05)

	sim := &feedSim{
		start:       time.Now().UTC(),
		feeds:       feeds,
		stepSeconds: stepSeconds,
		failRate:    failRate,
		missingRate: missingRate,
		spikeRate:   spikeRate,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", sim.handleHealth)
	mux.HandleFunc("/metrics", sim.handleMetrics)
	mux.HandleFunc("/channel.json", sim.handleChannel)

	log.Printf("feed simulator listening on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatal(err)
	}
}

func (s *feedSim) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *feedSim) handleMetrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"started_at":    s.start.Format(time.RFC3339),
		"total":         atomic.LoadInt64(&s.totalCalls),
		"failed":        atomic.LoadInt64(&s.failCalls),
		"last_entry_id": atomic.LoadInt64(&s.entrySeq),
	})
}

func (s *feedSim) handleChannel(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	atomic.AddInt64(&s.totalCalls, 1)

	if s.failRate > 0 && rnd.Float64() < s.failRate {
		atomic.AddInt64(&s.failCalls, 1)
		http.Error(w, "simulated upstream failure", http.StatusInternalServerError)
		return
	}

	now := time.Now().UTC()
	entries := make([]feedEntry, s.feeds)
	for i := range entries {
		offset := time.Duration((len(entries)-1-i)*s.stepSeconds) * time.Second
		entries[i] = s.nextEntry(now.Add(-offset))
	}

	writeJSON(w, map[string]any{
		"channel": channelInfo{
			ID:          3003119,
			Name:        "ColdStorage",
			Description: "Synthetic cold storage telemetry",
			Field1:      "Door Status",
			Field2:      "Temperature",
			CreatedAt:   s.start.Format(time.RFC3339),
			UpdatedAt:   now.Format(time.RFC3339),
			LastEntryID: atomic.LoadInt64(&s.entrySeq),
		},
		"feeds": entries,
	})
}

func (s *feedSim) nextEntry(at time.Time) feedEntry {
	entry := feedEntry{
		CreatedAt: at.Format(time.RFC3339),
		EntryID:   atomic.AddInt64(&s.entrySeq, 1),
	}

	if rnd.Float64() >= s.missingRate {
		door := "0"
		if rnd.Float64() < 0.2 {
			door = "1"
		}
		entry.Field1 = fieldValue(door)
	}

	if rnd.Float64() >= s.missingRate {
		temperature := rndFloat64(2.0, 8.0, 2)
		if s.spikeRate > 0 && rnd.Float64() < s.spikeRate {
			temperature = rndFloat64(9.0, 15.0, 2)
		}
		entry.Field2 = fieldValue(fmt.Sprintf("%.2f", temperature))
	}

	return entry
}

// channel exports carry a trailing CRLF in field values
func fieldValue(v string) *string {
	v = v + "\r\n"
	return &v
}

func rndFloat64(min, max float64, decimal int) float64 {
	val := min + rnd.Float64()*(max-min)
	multiplier := float64(math.Pow10(decimal))
	return float64(math.Round(float64(val)*float64(multiplier))) / multiplier
}

func getenvDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getenvIntDefault(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getenvFloatDefault(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}

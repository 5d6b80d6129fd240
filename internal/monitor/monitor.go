package monitor

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/starshatterwars/missiongen/internal/storage"
	"github.com/starshatterwars/missiongen/internal/worker"
)

// StatusFileName is the file written into the status directory.
const StatusFileName = "status.json"

// DefaultInterval is used when Dependencies.Interval is zero.
const DefaultInterval = time.Second

// Dependencies holds all dependencies for the monitor service
type Dependencies struct {
	WorkerManager *worker.Manager
	Backend       storage.Backend
	StatusDir     string
	Interval      time.Duration
	Logger        *slog.Logger
}

// Status is one snapshot of the generator process.
type Status struct {
	Time           time.Time `json:"time"`
	Generated      int       `json:"generated"`
	Failed         int       `json:"failed"`
	Catalogued     int       `json:"catalogued"`
	LastMission    string    `json:"lastMission,omitempty"`
	LastGenerateMs float32   `json:"lastGenerateMs"`
}

// Service manages status monitoring
type Service struct {
	deps      Dependencies
	log       *slog.Logger
	isRunning bool
	mu        sync.RWMutex
	stopChan  chan struct{}
	done      chan struct{}
}

// NewService creates a new monitor service
func NewService(deps Dependencies) *Service {
	if deps.Interval <= 0 {
		deps.Interval = DefaultInterval
	}
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		deps: deps,
		log:  log,
	}
}

// IsRunning returns whether the status monitor is running
func (s *Service) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// StatusPath is where the status file is written.
func (s *Service) StatusPath() string {
	return filepath.Join(s.deps.StatusDir, StatusFileName)
}

// GetStatus returns the current program status
func (s *Service) GetStatus() (Status, error) {
	counts := s.deps.WorkerManager.Counts()
	status := Status{
		Time:           time.Now(),
		Generated:      counts.Generated,
		Failed:         counts.Failed,
		LastGenerateMs: counts.LastGenerateMs,
	}

	list, err := s.deps.Backend.ListMissions()
	if err != nil {
		return status, fmt.Errorf("failed to list missions: %w", err)
	}
	status.Catalogued = len(list)
	if n := len(list); n > 0 {
		status.LastMission = list[n-1].Name
	}
	return status, nil
}

// WriteStatus replaces the status file with the current status.
func (s *Service) WriteStatus() error {
	status, err := s.GetStatus()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(status, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode status: %w", err)
	}
	return os.WriteFile(s.StatusPath(), append(data, '\n'), 0644)
}

// Start starts the status monitor goroutine
func (s *Service) Start() error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return nil
	}
	if err := os.MkdirAll(s.deps.StatusDir, 0755); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to create status directory: %w", err)
	}
	s.isRunning = true
	s.stopChan = make(chan struct{})
	s.done = make(chan struct{})
	s.mu.Unlock()

	go func() {
		defer close(s.done)
		defer func() {
			s.mu.Lock()
			s.isRunning = false
			s.mu.Unlock()
		}()

		s.log.Debug("Starting status monitor", "path", s.StatusPath(), "interval", s.deps.Interval)

		ticker := time.NewTicker(s.deps.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-s.stopChan:
				// final snapshot
				if err := s.WriteStatus(); err != nil {
					s.log.Error("Error writing status file", "error", err)
				}
				return
			case <-ticker.C:
				if err := s.WriteStatus(); err != nil {
					s.log.Error("Error writing status file", "error", err)
				}
			}
		}
	}()

	return nil
}

// Stop stops the status monitor and waits for the final status write.
func (s *Service) Stop() {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return
	}
	close(s.stopChan)
	done := s.done
	s.mu.Unlock()
	<-done
}

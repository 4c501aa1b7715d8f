// Package scheduler runs the periodic background-backup job.
package scheduler

import (
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
)

// Backuper is the slice of the storage layer the scheduler needs.
type Backuper interface {
	BackupNow() (string, error)
}

// Scheduler triggers periodic backups independent of save-triggered
// ones. Runs never overlap: a tick that arrives while a backup is still
// in flight is skipped.
type Scheduler struct {
	scheduler *gocron.Scheduler
	backuper  Backuper
	interval  time.Duration

	mu      sync.Mutex
	running bool
}

// New creates a scheduler backing up through b every interval.
func New(b Backuper, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		backuper:  b,
		interval:  interval,
	}
}

// Start begins the periodic job in the background.
func (s *Scheduler) Start() {
	s.scheduler.Every(s.interval).Do(s.runBackup)
	s.scheduler.StartAsync()
}

// Stop terminates the scheduled job.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// RunOnce triggers a single backup pass immediately, with the same
// no-overlap guarantee as the scheduled job.
func (s *Scheduler) RunOnce() {
	s.runBackup()
}

func (s *Scheduler) runBackup() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		log.Println("scheduler: backup already in flight, skipping")
		return
	}
	s.running = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	path, err := s.backuper.BackupNow()
	if err != nil {
		// Losing a periodic backup is not fatal.
		log.Printf("scheduler: background backup failed: %v", err)
		return
	}
	log.Printf("scheduler: created backup %s", path)
}

package logic

import (
	"bluebot/shared"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"time"
)

const profilerLoopSec = 60

// IProfiler periodically dumps goroutine stacks to ProfileDir. It does nothing if ProfileDir is empty.
type IProfiler interface {
	Start()
	Stop()
}

type profiler struct {
	logger          shared.ILogger
	profileDir      string
	profileKeepDays int
	interval        time.Duration
	cancel          context.CancelFunc
	done            chan struct{}
}

func NewProfiler(cfg *shared.Config, logger shared.ILogger) IProfiler {
	return &profiler{
		logger:          logger,
		profileDir:      cfg.ProfileDir,
		profileKeepDays: cfg.ProfileKeepDays,
		interval:        profilerLoopSec * time.Second,
	}
}

func (prof *profiler) Start() {
	if prof.profileDir == "" {
		return
	}
	if err := os.MkdirAll(prof.profileDir, 0755); err != nil {
		prof.logger.Errorf("Cannot create profile dir %s: %v", prof.profileDir, err)
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	prof.cancel = cancel
	prof.done = make(chan struct{})
	go prof.profilerLoop(ctx)
}

func (prof *profiler) Stop() {
	if prof.cancel == nil {
		return
	}
	prof.cancel()
	<-prof.done
}

func saveProfile(profileDir string, now time.Time) error {
	fname := fmt.Sprintf("%v.txt", now.Format("2006-01-02!15-04-05"))
	f, err := os.Create(filepath.Join(profileDir, fname))
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err = fmt.Fprintf(f, "Goroutine count: %d\n\n", runtime.NumGoroutine()); err != nil {
		return err
	}
	return pprof.Lookup("goroutine").WriteTo(f, 2)
}

func purgeOld(profileDir string, cutoff time.Time) error {
	return filepath.Walk(profileDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && info.ModTime().Before(cutoff) {
			return os.Remove(path)
		}
		return nil
	})
}

func (prof *profiler) saveProfileAndPurgeOld() error {
	now := time.Now()
	if err := saveProfile(prof.profileDir, now); err != nil {
		return err
	}
	return purgeOld(prof.profileDir, now.AddDate(0, 0, -prof.profileKeepDays))
}

func (prof *profiler) profilerLoop(ctx context.Context) {
	defer close(prof.done)
	for {
		if err := prof.saveProfileAndPurgeOld(); err != nil {
			prof.logger.Warnf("Failed to save goroutine profile: %v", err)
		}
		if sleepCtx(ctx, prof.interval) != nil {
			return
		}
	}
}

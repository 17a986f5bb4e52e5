package tasks

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// SpoolCleaner removes generated packages that outlived the retention
// window. Runs on a cron schedule wired up in the entrypoint.
type SpoolCleaner struct {
	dir       string
	retention time.Duration
}

func NewSpoolCleaner(dir string, retention time.Duration) *SpoolCleaner {
	return &SpoolCleaner{dir: dir, retention: retention}
}

// Cleanup deletes every .apkg in the spool directory older than the
// retention window.
func (s *SpoolCleaner) Cleanup() error {
	entries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read spool directory %s: %w", s.dir, err)
	}

	cutoff := time.Now().Add(-s.retention)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".apkg" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		path := filepath.Join(s.dir, entry.Name())
		if err := os.Remove(path); err != nil {
			log.Printf("Failed to remove expired package %s: %v", path, err)
			continue
		}
		removed++
	}

	if removed > 0 {
		log.Printf("Spool cleanup removed %d expired package(s)", removed)
	}
	return nil
}

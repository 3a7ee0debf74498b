package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// SaveRecording writes the raw recording bytes to a timestamped file in dir,
// creating the directory if needed. Filenames never collide because each save
// gets its own timestamp; nothing is rotated or cleaned up.
func SaveRecording(dir string, data []byte, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating recordings directory: %w", err)
	}

	name := fmt.Sprintf("meeting_%s.wav", now.Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing recording: %w", err)
	}
	return path, nil
}

// ListRecordings returns the saved recording filenames in dir, newest first.
func ListRecordings(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".wav" {
			names = append(names, e.Name())
		}
	}

	// Timestamped names sort chronologically.
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}

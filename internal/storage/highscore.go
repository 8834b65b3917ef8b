// Package storage provides persistence for Endless Dodge: the single-integer
// high-score file the simulation depends on, and a SQLite run history kept by
// the platform. Both are soft: failures are logged and never stop gameplay.
package storage

import (
	"encoding/binary"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// HighScoreFile stores one non-negative integer as a fixed-size
// little-endian record. An absent or unreadable file reads as zero.
type HighScoreFile struct {
	path   string
	logger *log.Logger
}

// NewHighScoreFile creates an adapter for the given path. A leading ~ is
// expanded to the user's home directory.
func NewHighScoreFile(path string) *HighScoreFile {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return &HighScoreFile{
		path: path,
		logger: log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "highscore",
		}),
	}
}

// Load reads the stored high score. Missing file, short file, or a negative
// value all default to zero; only the missing-file case is expected, the
// rest are logged.
func (f *HighScoreFile) Load() int {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		f.logger.Info("no high score file found, starting fresh", "path", f.path)
		return 0
	}
	if err != nil {
		f.logger.Warn("failed to read high score file, resetting to zero", "path", f.path, "error", err)
		return 0
	}
	if len(data) < 8 {
		f.logger.Warn("high score file is corrupt, resetting to zero", "path", f.path, "size", len(data))
		return 0
	}

	value := int64(binary.LittleEndian.Uint64(data))
	if value < 0 {
		return 0
	}
	return int(value)
}

// Save writes the high score. A failed write is logged and otherwise
// ignored; it never changes the in-memory value or interrupts gameplay.
func (f *HighScoreFile) Save(score int) {
	if dir := filepath.Dir(f.path); dir != "." {
		//nolint:errcheck // Best-effort; the write below reports the real failure
		os.MkdirAll(dir, 0o755)
	}

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(score))

	if err := os.WriteFile(f.path, buf[:], 0o644); err != nil {
		f.logger.Warn("failed to write high score file", "path", f.path, "error", err)
		return
	}
	f.logger.Info("new high score saved", "score", score)
}

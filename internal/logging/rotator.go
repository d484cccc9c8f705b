package logging

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

const (
	logDirPerm  = 0o755
	logFilePerm = 0o600
	bytesPerMB  = 1024 * 1024
)

// RotatorConfig configures a LogRotator.
type RotatorConfig struct {
	Dir        string
	BaseName   string // defaults to splitter.log
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// LogRotator is an io.Writer that appends to <Dir>/<BaseName> and moves the
// file aside once it would grow past MaxSizeMB.
type LogRotator struct {
	mu          sync.Mutex
	cfg         RotatorConfig
	maxSize     int64
	maxAge      time.Duration
	currentFile *os.File
	currentSize int64
	now         func() time.Time
}

// NewLogRotator creates the log directory if needed and opens the current file.
func NewLogRotator(cfg RotatorConfig) (*LogRotator, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("log directory is required")
	}
	if cfg.BaseName == "" {
		cfg.BaseName = "splitter.log"
	}
	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = 10
	}
	if err := os.MkdirAll(cfg.Dir, logDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	r := &LogRotator{
		cfg:     cfg,
		maxSize: int64(cfg.MaxSizeMB) * bytesPerMB,
		maxAge:  time.Duration(cfg.MaxAgeDays) * 24 * time.Hour,
		now:     time.Now,
	}
	if err := r.openCurrentFile(); err != nil {
		return nil, err
	}
	return r, nil
}

// Path returns the path of the file currently written to.
func (r *LogRotator) Path() string {
	return filepath.Join(r.cfg.Dir, r.cfg.BaseName)
}

func (r *LogRotator) openCurrentFile() error {
	logPath := r.Path()

	r.currentSize = 0
	if info, err := os.Stat(logPath); err == nil {
		r.currentSize = info.Size()
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	r.currentFile = file
	return nil
}

func (r *LogRotator) Write(p []byte) (n int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentFile == nil {
		if err := r.openCurrentFile(); err != nil {
			return 0, err
		}
	}

	// An empty file is never rotated, so a single oversized entry still lands somewhere.
	if r.currentSize > 0 && r.currentSize+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err = r.currentFile.Write(p)
	r.currentSize += int64(n)
	return n, err
}

func (r *LogRotator) rotate() error {
	if err := r.currentFile.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to close current log file: %v\n", err)
	}
	r.currentFile = nil

	backupPath := filepath.Join(r.cfg.Dir, fmt.Sprintf("%s.%s", r.cfg.BaseName, r.now().Format("2006-01-02-15-04-05.000")))
	if err := os.Rename(r.Path(), backupPath); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}

	if r.cfg.Compress {
		if err := compressFile(backupPath); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to compress log file %s: %v\n", backupPath, err)
		} else if err := os.Remove(backupPath); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to remove uncompressed log file %s: %v\n", backupPath, err)
		}
	}

	r.cleanup()
	return r.openCurrentFile()
}

func compressFile(path string) (err error) {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(path + ".gz")
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	gz := gzip.NewWriter(out)
	if _, err = io.Copy(gz, in); err != nil {
		return err
	}
	return gz.Close()
}

// cleanup drops backups older than MaxAgeDays, then the oldest ones beyond MaxBackups.
func (r *LogRotator) cleanup() {
	entries, err := os.ReadDir(r.cfg.Dir)
	if err != nil {
		return
	}

	var backups []os.FileInfo
	now := r.now()
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), r.cfg.BaseName+".") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if r.maxAge > 0 && now.Sub(info.ModTime()) > r.maxAge {
			_ = os.Remove(filepath.Join(r.cfg.Dir, info.Name()))
			continue
		}
		backups = append(backups, info)
	}

	if r.cfg.MaxBackups <= 0 || len(backups) <= r.cfg.MaxBackups {
		return
	}
	sort.Slice(backups, func(i, j int) bool {
		if backups[i].ModTime().Equal(backups[j].ModTime()) {
			return backups[i].Name() < backups[j].Name()
		}
		return backups[i].ModTime().Before(backups[j].ModTime())
	})
	for _, info := range backups[:len(backups)-r.cfg.MaxBackups] {
		_ = os.Remove(filepath.Join(r.cfg.Dir, info.Name()))
	}
}

// Close closes the current log file.
func (r *LogRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentFile == nil {
		return nil
	}
	err := r.currentFile.Close()
	r.currentFile = nil
	return err
}

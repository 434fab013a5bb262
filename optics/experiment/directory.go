package experiment

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

const (
	RunsDir       = "runs"
	LatestSymlink = "latest"
)

// Standard file names inside a run directory
const (
	RENDER_FILE      = "scene.png"
	ANNOTATIONS_FILE = "annotations.json"
	RANGE_PLOT_FILE  = "ranges.png"
)

type RunDir struct {
	Path      string    // Absolute path to the run directory
	ID        string    // Unique run identifier
	Timestamp time.Time // When the run was created
}

// CreateRunDirectory creates a new run directory under root/runs and points
// root/runs/latest at it. A failed symlink is logged, not returned.
func CreateRunDirectory(root string, logger *zap.Logger) (*RunDir, error) {
	runsDir := filepath.Join(root, RunsDir)
	if err := os.MkdirAll(runsDir, 0755); err != nil {
		return nil, fmt.Errorf("creating runs directory: %w", err)
	}

	now := time.Now().UTC()
	id := GenerateRunID(now)

	absPath, err := filepath.Abs(filepath.Join(runsDir, id))
	if err != nil {
		return nil, fmt.Errorf("getting absolute path: %w", err)
	}

	if err := os.Mkdir(absPath, 0755); err != nil {
		return nil, fmt.Errorf("creating run directory: %w", err)
	}

	latestPath := filepath.Join(runsDir, LatestSymlink)
	_ = os.Remove(latestPath)
	if err := os.Symlink(id, latestPath); err != nil {
		logger.Warn("failed to create latest symlink", zap.String("path", latestPath), zap.Error(err))
	}

	return &RunDir{
		Path:      absPath,
		ID:        id,
		Timestamp: now,
	}, nil
}

// GetFilePath returns the absolute path for a file in the run directory
func (r *RunDir) GetFilePath(filename string) string {
	return filepath.Join(r.Path, filename)
}

// CopyConfigFile copies the scenario file into the run directory, keeping its name
func (r *RunDir) CopyConfigFile(srcPath string) error {
	content, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	destPath := r.GetFilePath(filepath.Base(srcPath))
	if err := os.WriteFile(destPath, content, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

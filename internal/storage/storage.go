package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pfrederiksen/hockey-stats/internal/archive"
	"github.com/pfrederiksen/hockey-stats/internal/stats"
	"github.com/pfrederiksen/hockey-stats/internal/workbook"
)

const (
	ArchiveFile  = "hockey_stats.zip"
	WorkbookFile = "hockey_stats.xlsx"
)

// Storage handles persistence of crawl outputs
type Storage struct {
	dataDir string
}

// New creates a new Storage instance
func New(dataDir string) (*Storage, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}
	if dataDir == "" {
		dataDir = "."
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Storage{
		dataDir: dataDir,
	}, nil
}

// Path returns the full path of a file in the output directory
func (s *Storage) Path(name string) string {
	return filepath.Join(s.dataDir, name)
}

// Bundle holds both rendered outputs of a crawl, ready to write
type Bundle struct {
	Archive  []byte
	Workbook []byte
}

// BuildBundle renders the page archive and the workbook in memory.
// Nothing touches the filesystem, so a failure here leaves earlier outputs intact.
func BuildBundle(pages []string, records []stats.Record) (*Bundle, error) {
	zipData, err := archive.Build(pages)
	if err != nil {
		return nil, fmt.Errorf("building archive: %w", err)
	}
	xlsxData, err := workbook.Build(records)
	if err != nil {
		return nil, fmt.Errorf("building workbook: %w", err)
	}
	return &Bundle{Archive: zipData, Workbook: xlsxData}, nil
}

// Save writes the bundle to ArchiveFile and WorkbookFile, returning their paths
func (s *Storage) Save(b *Bundle) (archivePath, workbookPath string, err error) {
	archivePath, err = s.write(ArchiveFile, b.Archive)
	if err != nil {
		return "", "", err
	}
	workbookPath, err = s.write(WorkbookFile, b.Workbook)
	if err != nil {
		return "", "", err
	}
	return archivePath, workbookPath, nil
}

func (s *Storage) write(name string, data []byte) (string, error) {
	path := s.Path(name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	return path, nil
}

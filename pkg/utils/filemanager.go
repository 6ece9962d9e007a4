// =============================================================================
// Subcontract Valuations Dashboard - File Manager Utility
// =============================================================================
//
// File management helpers for the import pipeline:
//   - Workbook discovery (scan a directory for .xlsx/.xls exports)
//   - Workbook archival after a successful import
//
// ARCHIVAL STRATEGY:
//   Imported workbooks are moved to the archive directory under a unique
//   name (original stem + short uuid) so repeated exports with the same
//   file name never overwrite each other. Failed imports leave the workbook
//   where it was.
//
// =============================================================================

package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// workbookExtensions are the spreadsheet formats the importer accepts.
var workbookExtensions = map[string]bool{
	".xlsx": true,
	".xlsm": true,
	".xls":  true,
}

// =============================================================================
// DISCOVERY
// =============================================================================

// DiscoverWorkbooks scans dir (non-recursively) for spreadsheet workbooks.
func DiscoverWorkbooks(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if workbookExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return files, nil
}

// IsWorkbook reports whether path has a supported spreadsheet extension.
func IsWorkbook(path string) bool {
	return workbookExtensions[strings.ToLower(filepath.Ext(path))]
}

// =============================================================================
// ARCHIVAL
// =============================================================================

// ArchiveWorkbook moves an imported workbook into archiveDir under a unique
// name and returns the archive path.
func ArchiveWorkbook(path, archiveDir string) (string, error) {
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	short := uuid.New().String()[:8]
	archivePath := filepath.Join(archiveDir, fmt.Sprintf("%s_%s%s", stem, short, ext))

	if err := os.Rename(path, archivePath); err != nil {
		// Rename fails across devices; fall back to copy and delete.
		if err := copyFile(path, archivePath); err != nil {
			return "", fmt.Errorf("failed to copy workbook to archive: %w", err)
		}
		if err := os.Remove(path); err != nil {
			return "", fmt.Errorf("failed to remove original workbook: %w", err)
		}
	}
	return archivePath, nil
}

// copyFile copies a file from src to dst.
func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return err
	}
	return destFile.Sync()
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

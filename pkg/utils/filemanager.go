// =============================================================================
// PNL Generator - File Manager Utility
// =============================================================================
//
// This module provides file management for the generator:
//   - Writing the generated export documents
//   - Copying exports to the archive directory
//   - Error log generation for failed runs
//   - Directory management
//
// ARCHIVAL STRATEGY:
//   - Exports are written to the output directory and copied to the archive.
//   - Failed runs leave no partial export; only an error log is produced.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FileManager handles file operations for the generator.
type FileManager struct {
	// OutputDir is the directory where export files are placed.
	OutputDir string

	// ArchiveDir is the directory where exports are copied for long-term
	// storage. Archival is skipped when empty.
	ArchiveDir string
}

// NewFileManager creates a FileManager for the given directories.
func NewFileManager(outputDir, archiveDir string) *FileManager {
	return &FileManager{
		OutputDir:  outputDir,
		ArchiveDir: archiveDir,
	}
}

// EnsureDirectories creates the output and archive directories if needed.
func (fm *FileManager) EnsureDirectories() error {
	dirs := []string{fm.OutputDir}
	if fm.ArchiveDir != "" {
		dirs = append(dirs, fm.ArchiveDir)
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// WriteExport writes a generated document to the output directory and copies
// it to the archive directory.
//
// RETURNS:
//   - The path of the written export file.
//   - An error if the file cannot be written.
func (fm *FileManager) WriteExport(fileName, content string) (string, error) {
	if err := fm.EnsureDirectories(); err != nil {
		return "", err
	}

	outputPath := filepath.Join(fm.OutputDir, fileName)
	if err := os.WriteFile(outputPath, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}

	if fm.ArchiveDir != "" {
		archivePath := filepath.Join(fm.ArchiveDir, fileName)
		if err := os.WriteFile(archivePath, []byte(content), 0644); err != nil {
			return "", fmt.Errorf("failed to archive export: %w", err)
		}
	}

	return outputPath, nil
}

// WriteErrorLog writes a uniquely named error log to the output directory,
// one message per line, and returns its path. Used when a run aborts before
// producing any export.
func (fm *FileManager) WriteErrorLog(messages []string) (string, error) {
	if err := fm.EnsureDirectories(); err != nil {
		return "", err
	}

	fileName := fmt.Sprintf("errors_%s_%s.log",
		time.Now().Format("20060102_150405"),
		uuid.New().String(),
	)

	var b strings.Builder
	for _, msg := range messages {
		b.WriteString(msg)
		b.WriteString("\n")
	}

	logPath := filepath.Join(fm.OutputDir, fileName)
	if err := os.WriteFile(logPath, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write error log: %w", err)
	}

	return logPath, nil
}

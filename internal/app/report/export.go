package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/tanvir-rahman/studentinfo/internal/pkg/logger"
)

// Exporter writes report documents to the local filesystem. It is the
// concrete form of the share/export facility: callers get back a file path
// they can hand to whatever distributes the document.
type Exporter struct {
	baseDir string
}

// NewExporter creates an Exporter rooted at baseDir, creating the directory
// if needed.
func NewExporter(baseDir string) (*Exporter, error) {
	if err := os.MkdirAll(baseDir, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", baseDir).Msg("Failed to create export directory")
		return nil, fmt.Errorf("failed to create export directory %s: %w", baseDir, err)
	}

	return &Exporter{baseDir: baseDir}, nil
}

// Export writes the document under a unique file name and returns the path.
// A partially written file is removed on failure.
func (e *Exporter) Export(document string) (string, error) {
	filename := fmt.Sprintf("StudentInformationSystemReport-%s.html", uuid.New().String())
	dstPath := filepath.Join(e.baseDir, filename)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create report file")
		return "", fmt.Errorf("failed to create report file: %w", err)
	}

	if _, err := dst.WriteString(document); err != nil {
		dst.Close()
		_ = os.Remove(dstPath)
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to write report file")
		return "", fmt.Errorf("failed to write report file: %w", err)
	}

	if err := dst.Close(); err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to close report file: %w", err)
	}

	logger.Info().Str("path", dstPath).Msg("Report exported")
	return dstPath, nil
}

package repository

import (
	"github.com/evsync/spritsync-go/internal/domain/entity"
)

// ExportRepository defines the interface for writing sync-run reports.
type ExportRepository interface {
	ExportToCSV(result *entity.SyncResult, filename string, outputDir string) (string, error)
	ExportToJSON(result *entity.SyncResult, filename string, outputDir string) (string, error)
	ExportToPDF(result *entity.SyncResult, filename string, outputDir string) (string, error)
}

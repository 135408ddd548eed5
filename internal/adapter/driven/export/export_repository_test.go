package export_test

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evsync/spritsync-go/internal/adapter/driven/export"
	"github.com/evsync/spritsync-go/internal/domain/entity"
)

func sampleResult() *entity.SyncResult {
	return &entity.SyncResult{
		DaysConsidered:  2,
		Submitted:       1,
		BudgetUsed:      2,
		FinalOdometerKm: 10050,
		Days: []entity.DayOutcome{
			{
				Date:        time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
				Status:      entity.DayStatusSubmitted,
				DistanceKm:  50,
				OdometerKm:  10050,
				QuantityKwh: 9.7,
			},
			{
				Date:   time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
				Status: entity.DayStatusSkipped,
				Reason: entity.SkipToday,
			},
		},
	}
}

func TestExportToCSV(t *testing.T) {
	repo := export.NewExportRepository()

	path, err := repo.ExportToCSV(sampleResult(), "run", t.TempDir())
	require.NoError(t, err)

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "Date", records[0][0])
	assert.Equal(t, "2025-03-10", records[1][0])
	assert.Equal(t, "submitted", records[1][1])
	assert.Equal(t, "9.7", records[1][5])
	assert.Equal(t, "TODAY", records[2][2])
}

func TestExportToJSONRoundTrips(t *testing.T) {
	repo := export.NewExportRepository()

	path, err := repo.ExportToJSON(sampleResult(), "run", t.TempDir())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded entity.SyncResult
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 1, decoded.Submitted)
	assert.Len(t, decoded.Days, 2)
	assert.InDelta(t, 10050.0, decoded.FinalOdometerKm, 1e-9)
}

func TestExportToPDFWritesFile(t *testing.T) {
	repo := export.NewExportRepository()

	path, err := repo.ExportToPDF(sampleResult(), "run", t.TempDir())
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

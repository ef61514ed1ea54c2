package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartreply/internal/models"
)

func TestWriteReportRoundTrip(t *testing.T) {
	rows := []models.ReportRow{
		{
			Arquivo: "a.txt",
			ProcessResult: models.ProcessResult{
				PrimaryCategory: models.CategoryStatus,
				OverallCategory: models.OverallProductive,
				Confidence:      0.913,
				Engine:          "Heuristic",
				Reply:           "Olá!\n\nConte conosco,\tEquipe",
				TextHash:        "deadbeef",
			},
		},
	}

	path := filepath.Join(t.TempDir(), "sub", "report.txt")
	require.NoError(t, WriteReport(rows, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(string(data), "\n")
	require.Len(t, lines, 2)

	assert.Equal(t,
		"Arquivo\tCategoria binaria\tCategoria principal\tConfianca\tEngine\tHash\tResposta",
		lines[0])
	assert.Equal(t,
		"a.txt\tProdutivo\tStatus de chamado\t0.913\tHeuristic\tdeadbeef\tOlá!  Conte conosco, Equipe",
		lines[1])
}

func TestWriteReportConfidenceFormatting(t *testing.T) {
	rows := []models.ReportRow{
		{Arquivo: "b.txt", ProcessResult: models.ProcessResult{Confidence: 0.5}},
	}
	path := filepath.Join(t.TempDir(), "report.txt")
	require.NoError(t, WriteReport(rows, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\t0.500\t")
}

func TestSanitizeReportValue(t *testing.T) {
	assert.Equal(t, "a b c", sanitizeReportValue("a\tb\nc"))
	assert.Equal(t, "x", sanitizeReportValue("  x \n"))
}

func TestSummarizeRows(t *testing.T) {
	rows := []models.ReportRow{
		{ProcessResult: models.ProcessResult{OverallCategory: models.OverallProductive}},
		{ProcessResult: models.ProcessResult{OverallCategory: models.OverallProductive}},
		{ProcessResult: models.ProcessResult{OverallCategory: models.OverallUnproductive}},
	}
	summary := SummarizeRows(rows)
	assert.Equal(t, map[string]int{"Produtivo": 2, "Improdutivo": 1}, summary)
}

func TestReportFileNamePattern(t *testing.T) {
	name := ReportFileName()
	assert.Regexp(t, `^report_\d+\.txt$`, name)
}

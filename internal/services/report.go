package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"smartreply/internal/models"
)

// reportHeaders is the fixed column order of the TSV batch report.
var reportHeaders = []string{
	"Arquivo",
	"Categoria binaria",
	"Categoria principal",
	"Confianca",
	"Engine",
	"Hash",
	"Resposta",
}

// ReportFileName derives the report name from the current Unix second. Two
// uploads completing within the same second target the same file; that
// matches the historical naming scheme and is documented as a known race.
func ReportFileName() string {
	return fmt.Sprintf("report_%d.txt", time.Now().Unix())
}

// WriteReport writes rows as a tab-separated file at path, creating parent
// directories as needed. Tabs and newlines inside values become spaces so the
// tabular structure survives arbitrary reply text.
func WriteReport(rows []models.ReportRow, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(reportHeaders, "\t"))
	for _, row := range rows {
		values := []string{
			row.Arquivo,
			row.OverallCategory,
			row.PrimaryCategory,
			fmt.Sprintf("%.3f", row.Confidence),
			row.Engine,
			row.TextHash,
			row.Reply,
		}
		for i, v := range values {
			values[i] = sanitizeReportValue(v)
		}
		lines = append(lines, strings.Join(values, "\t"))
	}

	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}

func sanitizeReportValue(v string) string {
	v = strings.ReplaceAll(v, "\t", " ")
	v = strings.ReplaceAll(v, "\n", " ")
	return strings.TrimSpace(v)
}

// SummarizeRows counts rows per overall category.
func SummarizeRows(rows []models.ReportRow) map[string]int {
	summary := make(map[string]int)
	for _, row := range rows {
		summary[row.OverallCategory]++
	}
	return summary
}

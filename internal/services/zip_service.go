package services

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"smartreply/internal/models"
	"smartreply/internal/nlp"
)

type zipEntry struct {
	name    string
	content string
}

// HandleZipUpload processes a ZIP payload: filters usable .txt/.pdf entries,
// classifies their extracted text under the bounded worker gate, writes the
// TSV report, and records one audit event per row. It returns the rows, the
// report filename and the per-overall-category summary.
func (s *BatchService) HandleZipUpload(ctx context.Context, data []byte) ([]models.ReportRow, string, map[string]int, error) {
	if err := s.EnsurePayloadLimit(int64(len(data))); err != nil {
		return nil, "", nil, err
	}

	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, "", nil, &RequestError{
			Status:  http.StatusBadRequest,
			Code:    "invalid_zip",
			Message: "Arquivo ZIP invalido.",
		}
	}

	entries := s.collectZipEntries(reader)
	if len(entries) == 0 {
		return nil, "", nil, &RequestError{
			Status:  http.StatusBadRequest,
			Code:    "empty_zip",
			Message: "Nenhum .txt ou .pdf valido encontrado no ZIP.",
		}
	}

	texts := make([]string, len(entries))
	for i, e := range entries {
		texts[i] = e.content
	}
	results := s.ClassifyMany(ctx, texts)

	rows := make([]models.ReportRow, len(entries))
	for i, e := range entries {
		rows[i] = models.ReportRow{Arquivo: e.name, ProcessResult: results[i]}
		s.audit.RecordClassification("/batch_upload", e.name, results[i], true)
	}

	reportName := ReportFileName()
	reportPath := filepath.Join(s.cfg.ReportsDir, reportName)
	if err := WriteReport(rows, reportPath); err != nil {
		return nil, "", nil, fmt.Errorf("write batch report: %w", err)
	}

	return rows, reportName, SummarizeRows(rows), nil
}

// collectZipEntries walks the archive in order, skipping directories,
// unsupported extensions and unreadable or oversized entries, and stops once
// the batch item cap is reached.
func (s *BatchService) collectZipEntries(reader *zip.Reader) []zipEntry {
	entries := make([]zipEntry, 0, len(reader.File))
	for _, f := range reader.File {
		if len(entries) >= s.cfg.MaxBatchItems {
			break
		}
		if strings.HasSuffix(f.Name, "/") || f.FileInfo().IsDir() {
			continue
		}
		lower := strings.ToLower(f.Name)
		if !strings.HasSuffix(lower, ".txt") && !strings.HasSuffix(lower, ".pdf") {
			continue
		}

		fileBytes, err := readZipFile(f)
		if err != nil {
			log.Warnf("skipping unreadable zip entry %s: %v", f.Name, err)
			continue
		}
		if len(fileBytes) == 0 || int64(len(fileBytes)) > s.cfg.MaxUploadBytes() {
			continue
		}

		entries = append(entries, zipEntry{
			name:    f.Name,
			content: nlp.ExtractText(f.Name, fileBytes),
		})
	}
	return entries
}

func readZipFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

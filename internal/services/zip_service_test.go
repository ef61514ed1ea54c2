package services

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartreply/internal/models"
)

func buildZip(t *testing.T, entries map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range entries {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func requireRequestStatus(t *testing.T, err error, status int) {
	t.Helper()
	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr), "expected RequestError, got %v", err)
	assert.Equal(t, status, reqErr.Status)
}

func TestHandleZipUploadClassifiesEntries(t *testing.T) {
	cfg := testConfig(t)
	svc := newTestBatchService(t, cfg, nil)

	data := buildZip(t, map[string]string{
		"status.txt":  "qual o status do chamado 42?",
		"natal.txt":   "feliz natal e boas festas",
		"skip/":       "",
		"notas.docx":  "ignorado",
		"broken.pdf":  "not really a pdf",
		"empty.txt":   "",
		"nested/.txt": "anexo do contrato em pdf",
	})

	rows, reportName, summary, err := svc.HandleZipUpload(context.Background(), data)
	require.NoError(t, err)

	// status.txt, natal.txt, broken.pdf (extracts to "") and nested/.txt
	require.Len(t, rows, 4)
	assert.Regexp(t, `^report_\d+\.txt$`, reportName)

	byName := make(map[string]models.ReportRow, len(rows))
	for _, row := range rows {
		byName[row.Arquivo] = row
	}
	assert.Equal(t, models.CategoryStatus, byName["status.txt"].PrimaryCategory)
	assert.Equal(t, models.OverallUnproductive, byName["natal.txt"].OverallCategory)
	// unreadable PDF degrades to empty text, which still classifies
	assert.Equal(t, models.CategoryStatus, byName["broken.pdf"].PrimaryCategory)
	assert.InDelta(t, 0.55, byName["broken.pdf"].Confidence, 1e-9)

	total := 0
	for _, count := range summary {
		total += count
	}
	assert.Equal(t, len(rows), total)
	assert.Equal(t, 1, summary[models.OverallUnproductive])

	// report exists and has header + one line per row
	reportData, err := os.ReadFile(filepath.Join(cfg.ReportsDir, reportName))
	require.NoError(t, err)
	assert.Len(t, strings.Split(string(reportData), "\n"), len(rows)+1)

	// one audit event per row
	auditData, err := os.ReadFile(cfg.AuditLogPath)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(auditData)), "\n"), len(rows))
}

func TestHandleZipUploadPreservesEntryOrder(t *testing.T) {
	cfg := testConfig(t)
	svc := newTestBatchService(t, cfg, nil)

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	names := []string{"um.txt", "dois.txt", "tres.txt"}
	for _, name := range names {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte("conteudo " + name))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	rows, _, _, err := svc.HandleZipUpload(context.Background(), buf.Bytes())
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for i, name := range names {
		assert.Equal(t, name, rows[i].Arquivo)
	}
}

func TestHandleZipUploadRejectsNoUsableEntries(t *testing.T) {
	svc := newTestBatchService(t, testConfig(t), nil)

	data := buildZip(t, map[string]string{"relatorio.docx": "conteudo"})
	_, _, _, err := svc.HandleZipUpload(context.Background(), data)
	requireRequestStatus(t, err, http.StatusBadRequest)
}

func TestHandleZipUploadRejectsCorruptArchive(t *testing.T) {
	svc := newTestBatchService(t, testConfig(t), nil)

	_, _, _, err := svc.HandleZipUpload(context.Background(), []byte("isto nao e um zip"))
	requireRequestStatus(t, err, http.StatusBadRequest)
}

func TestHandleZipUploadRejectsOversizedPayload(t *testing.T) {
	cfg := testConfig(t)
	cfg.MaxUploadMB = 0
	svc := newTestBatchService(t, cfg, nil)

	data := buildZip(t, map[string]string{"a.txt": "conteudo"})
	_, _, _, err := svc.HandleZipUpload(context.Background(), data)
	requireRequestStatus(t, err, http.StatusRequestEntityTooLarge)
}

func TestHandleZipUploadStopsAtItemCap(t *testing.T) {
	cfg := testConfig(t)
	cfg.MaxBatchItems = 2
	svc := newTestBatchService(t, cfg, nil)

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, name := range []string{"a.txt", "b.txt", "c.txt", "d.txt"} {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte("status do chamado"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	rows, _, _, err := svc.HandleZipUpload(context.Background(), buf.Bytes())
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

package apihandlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"smartreply/internal/nlp"
)

// IndexHandler renders the front page.
func (h *APIHandler) IndexHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{})
}

// WebProcessHandler handles the HTML form: an uploaded .txt/.pdf file takes
// precedence over pasted text.
func (h *APIHandler) WebProcessHandler(c *gin.Context) {
	content := ""

	if fileHeader, err := c.FormFile("email_file"); err == nil && fileHeader != nil {
		f, err := fileHeader.Open()
		if err != nil {
			c.HTML(http.StatusBadRequest, "index.html", gin.H{"error": "Falha ao ler o arquivo enviado."})
			return
		}
		raw, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			c.HTML(http.StatusBadRequest, "index.html", gin.H{"error": "Falha ao ler o arquivo enviado."})
			return
		}
		if err := h.App.Batch.EnsurePayloadLimit(int64(len(raw))); err != nil {
			RespondError(c, err)
			return
		}
		content = nlp.ExtractText(fileHeader.Filename, raw)
	}

	if content == "" {
		if cleaned := strings.TrimSpace(c.PostForm("email_text")); cleaned != "" {
			if err := h.App.Batch.EnsurePayloadLimit(int64(len(cleaned))); err != nil {
				RespondError(c, err)
				return
			}
			content = cleaned
		}
	}

	if content == "" {
		c.HTML(http.StatusBadRequest, "index.html", gin.H{
			"error": "Envie um arquivo .txt/.pdf ou cole o texto do e-mail.",
		})
		return
	}

	result := h.App.Batch.ProcessSingle(c.Request.Context(), content, "/process")
	c.HTML(http.StatusOK, "index.html", gin.H{
		"input_text":       content,
		"category":         result.OverallCategory,
		"primary_category": result.PrimaryCategory,
		"confidence":       result.Confidence,
		"engine":           result.Engine,
		"suggested_reply":  result.Reply,
		"success_message":  "E-mail processado com sucesso!",
	})
}

// BatchUploadHandler processes a multipart ZIP upload and renders the report
// page with a download link, a bounded row preview and the category summary.
func (h *APIHandler) BatchUploadHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("emails_zip")
	if err != nil {
		BadRequest(c, "Envie o campo multipart 'emails_zip' com um arquivo ZIP.")
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		BadRequest(c, "Falha ao ler o arquivo enviado.")
		return
	}
	data, err := io.ReadAll(f)
	f.Close()
	if err != nil {
		BadRequest(c, "Falha ao ler o arquivo enviado.")
		return
	}

	rows, reportName, summary, err := h.App.Batch.HandleZipUpload(c.Request.Context(), data)
	if err != nil {
		RespondError(c, err)
		return
	}

	previewLimit := h.App.Config.BatchPreviewLimit
	if previewLimit < 1 {
		previewLimit = 1
	}
	if len(rows) > previewLimit {
		rows = rows[:previewLimit]
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"batch_done":          true,
		"report_url":          "/reports/" + reportName,
		"rows":                rows,
		"summary":             summary,
		"zip_success_message": "ZIP processado e relatório disponível!",
	})
}

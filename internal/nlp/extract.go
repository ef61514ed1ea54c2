package nlp

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf8"

	dpdf "github.com/dslipak/pdf"
	lpdf "github.com/ledongthuc/pdf"
	log "github.com/sirupsen/logrus"
)

// ExtractText derives plain text from uploaded bytes. PDF files go through a
// primary extractor with a second library as fallback; anything else is
// treated as UTF-8 with invalid sequences dropped. The function is total: it
// returns "" on every failure and never panics.
func ExtractText(filename string, data []byte) string {
	if strings.HasSuffix(strings.ToLower(filename), ".pdf") {
		return extractPDF(data)
	}
	return string(bytes.ToValidUTF8(data, nil))
}

func extractPDF(data []byte) string {
	if text, ok := extractPDFPrimary(data); ok {
		return text
	}
	if text, ok := extractPDFSecondary(data); ok {
		return text
	}
	return ""
}

// Both PDF libraries are known to panic on malformed input, so each attempt
// runs behind a recover.
func extractPDFPrimary(data []byte) (text string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Warnf("primary pdf extraction panicked: %v", r)
			ok = false
		}
	}()

	reader, err := lpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", false
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", false
	}
	buf, err := io.ReadAll(plain)
	if err != nil {
		return "", false
	}
	return sanitizeUTF8(buf), true
}

func extractPDFSecondary(data []byte) (text string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Warnf("secondary pdf extraction panicked: %v", r)
			ok = false
		}
	}()

	reader, err := dpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", false
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", false
	}
	buf, err := io.ReadAll(plain)
	if err != nil {
		return "", false
	}
	return sanitizeUTF8(buf), true
}

func sanitizeUTF8(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	return string(bytes.ToValidUTF8(data, nil))
}

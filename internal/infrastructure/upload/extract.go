package upload

import (
	"bytes"
	"errors"
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// ExtractText returns the readable text of an uploaded file. PDF and DOCX are
// decoded; anything else, including documents that fail to decode, is read as
// UTF-8 with invalid bytes dropped. It never fails.
func ExtractText(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	mt := mimetype.Detect(data)
	switch {
	case mt.Is(mimePDF):
		if text, err := extractPDF(data); err == nil && strings.TrimSpace(text) != "" {
			return text
		}
	case mt.Is(mimeDOCX):
		if text, err := extractDOCX(data); err == nil && strings.TrimSpace(text) != "" {
			return text
		}
	}
	return decodeLossy(data)
}

func extractPDF(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", errPDFPanic
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		t, err := p.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(t)
		b.WriteString("\n")
	}
	return b.String(), nil
}

var errPDFPanic = errors.New("pdf decoder panicked")

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>|<w:br/>|<w:br />`)
	docxTag          = regexp.MustCompile(`<[^>]+>`)
)

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	defer doc.Close()

	xml := doc.Editable().GetContent()
	xml = docxParagraphEnd.ReplaceAllString(xml, "\n")
	return html.UnescapeString(docxTag.ReplaceAllString(xml, "")), nil
}

func decodeLossy(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	return strings.ToValidUTF8(string(data), "")
}

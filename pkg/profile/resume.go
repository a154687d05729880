package profile

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"

	"github.com/talentproph/talentpro/pkg/apperr"
)

// MaxResumeSize caps resume uploads at 5 MiB.
const MaxResumeSize = 5 << 20

// maxDocumentXML caps the inflated body of a docx.
const maxDocumentXML = 4 * MaxResumeSize

var (
	ErrResumeFormat   = apperr.New(apperr.KindValidation, "unsupported file format: only pdf and docx are allowed")
	ErrResumeTooLarge = apperr.New(apperr.KindValidation, "resume must be 5 MiB or smaller")
	ErrResumeEmpty    = apperr.New(apperr.KindValidation, "no readable text found in the resume")
)

var (
	xmlTags     = regexp.MustCompile(`<[^>]+>`)
	inlineSpace = regexp.MustCompile(`[ \t\r\f\v]+`)
	blankLines  = regexp.MustCompile(`\n+`)
)

// ExtractResumeText returns the plain text of a .pdf or .docx upload.
func ExtractResumeText(filename string, data []byte) (string, error) {
	if len(data) > MaxResumeSize {
		return "", ErrResumeTooLarge
	}
	var (
		text string
		err  error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		text, err = pdfText(data)
	case ".docx":
		text, err = docxText(data)
	default:
		return "", ErrResumeFormat
	}
	if errors.Is(err, ErrResumeTooLarge) {
		return "", ErrResumeTooLarge
	}
	if err != nil {
		return "", apperr.Validation("could not read resume: " + err.Error())
	}
	if text == "" {
		return "", ErrResumeEmpty
	}
	return text, nil
}

func pdfText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", err
	}
	return collapseWhitespace(buf.String()), nil
}

func docxText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		if f.UncompressedSize64 > maxDocumentXML {
			return "", ErrResumeTooLarge
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		doc, err := io.ReadAll(io.LimitReader(rc, maxDocumentXML+1))
		rc.Close()
		if err != nil {
			return "", err
		}
		if len(doc) > maxDocumentXML {
			return "", ErrResumeTooLarge
		}
		s := strings.ReplaceAll(string(doc), "</w:p>", "\n")
		s = strings.ReplaceAll(s, "<w:tab/>", "\t")
		return collapseWhitespace(xmlTags.ReplaceAllString(s, " ")), nil
	}
	return "", errors.New("word/document.xml not found")
}

func collapseWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = inlineSpace.ReplaceAllString(s, " ")
	s = blankLines.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}

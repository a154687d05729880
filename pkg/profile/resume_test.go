package profile

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docx(t *testing.T, body string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(body))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestExtractResumeText(t *testing.T) {
	testCases := []struct {
		name     string
		filename string
		data     []byte
		want     string
		wantErr  error
	}{
		{
			name:     "docx paragraphs",
			filename: "cv.DOCX",
			data:     docx(t, `<w:document><w:p><w:r><w:t>Maria  Santos</w:t></w:r></w:p><w:p><w:t>Go, PostgreSQL</w:t></w:p></w:document>`),
			want:     "Maria Santos \n Go, PostgreSQL",
		},
		{name: "unsupported extension", filename: "cv.txt", data: []byte("hello"), wantErr: ErrResumeFormat},
		{name: "too large", filename: "cv.pdf", data: make([]byte, MaxResumeSize+1), wantErr: ErrResumeTooLarge},
		{
			name:     "docx inflating past the cap",
			filename: "cv.docx",
			data:     docx(t, "<w:document>"+strings.Repeat(" ", maxDocumentXML)+"</w:document>"),
			wantErr:  ErrResumeTooLarge,
		},
		{name: "empty docx", filename: "cv.docx", data: docx(t, `<w:document></w:document>`), wantErr: ErrResumeEmpty},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ExtractResumeText(tc.filename, tc.data)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExtractResumeText_CompressedUploadStaysSmall(t *testing.T) {
	data := docx(t, "<w:document>"+strings.Repeat(" ", maxDocumentXML)+"</w:document>")
	require.Less(t, len(data), MaxResumeSize, "the upload itself passes the size check")

	_, err := ExtractResumeText("cv.docx", data)
	assert.ErrorIs(t, err, ErrResumeTooLarge)
}

func TestExtractResumeText_Corrupt(t *testing.T) {
	_, err := ExtractResumeText("cv.pdf", []byte("not a pdf"))
	assert.Error(t, err)
}

package doctext

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resumeContent = `BT /F1 12 Tf 72 720 Td (Ana Silva) Tj 0 -16 Td (ana@example.com) Tj 0 -16 Td [(Senior) -250 (Go) -250 (Engineer)] TJ ET`

// writePDF writes a one-page PDF whose content stream is content.
func writePDF(t *testing.T, dir, content string) string {
	t.Helper()
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	path := filepath.Join(dir, "resume.pdf")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
	return path
}

// writeDOCX writes a minimal document with one paragraph per line.
func writeDOCX(t *testing.T, dir string, paragraphs ...string) string {
	t.Helper()
	var body bytes.Buffer
	body.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		fmt.Fprintf(&body, `<w:p><w:r><w:t xml:space="preserve">%s</w:t></w:r></w:p>`, p)
	}
	body.WriteString(`</w:body></w:document>`)

	path := filepath.Join(dir, "resume.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("[Content_Types].xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<?xml version="1.0"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"/>`))
	require.NoError(t, err)
	w, err = zw.Create(docxBody)
	require.NoError(t, err)
	_, err = w.Write(body.Bytes())
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return path
}

func TestExtractTXT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.TXT")
	require.NoError(t, os.WriteFile(path, []byte("\n  Bo Chen\nJunior SRE\n"), 0o600))

	text, err := Extract(path)
	require.NoError(t, err)
	assert.Equal(t, "Bo Chen\nJunior SRE", text)
}

func TestExtractDOCX(t *testing.T) {
	path := writeDOCX(t, t.TempDir(), "Ana Silva", "ana@example.com", "Senior Go Engineer")

	text, err := Extract(path)
	require.NoError(t, err)
	assert.Equal(t, "Ana Silva\nana@example.com\nSenior Go Engineer", text)
}

func TestExtractDOCX_NotAZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.docx")
	require.NoError(t, os.WriteFile(path, []byte("plain text pretending"), 0o600))

	_, err := Extract(path)
	assert.ErrorContains(t, err, "open docx")
}

func TestExtractPDF(t *testing.T) {
	path := writePDF(t, t.TempDir(), resumeContent)

	text, err := Extract(path)
	require.NoError(t, err)
	assert.Equal(t, "Ana Silva\nana@example.com\nSenior Go Engineer", text)
}

func TestExtractPDF_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4\nnot really"), 0o600))

	_, err := Extract(path)
	assert.Error(t, err)
}

func TestExtractUnsupported(t *testing.T) {
	for _, name := range []string{"resume.doc", "resume.rtf", "resume"} {
		path := filepath.Join(t.TempDir(), name)
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

		_, err := Extract(path)
		assert.ErrorIs(t, err, ErrUnsupportedFormat, name)
	}
}

func TestExtractEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0o600))

	_, err := Extract(path)
	assert.ErrorIs(t, err, ErrNoText)
}

func TestShownText(t *testing.T) {
	cases := map[string]string{
		"tj":          `BT (Hello) Tj ET`,
		"tj array":    `BT [(Hel) 20 (lo)] TJ ET`,
		"hex latin":   `BT <48656C6C6F> Tj ET`,
		"hex utf16":   `BT <FEFF00480065006C006C006F> Tj ET`,
		"octal":       `BT (\110ello) Tj ET`,
		"comment":     "% a comment (ignored) Tj\nBT (Hello) Tj ET",
		"dict operand": `/Span << /MCID 0 >> BDC BT (Hello) Tj ET EMC`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, "Hello\n", shownText([]byte(content)))
		})
	}

	assert.Equal(t, "Hello (draft)\n", shownText([]byte(`BT (Hello \(draft\)) Tj ET`)))
	assert.Equal(t, "one\ntwo\n", shownText([]byte(`BT (one) Tj T* (two) Tj ET`)))
	assert.Equal(t, "a b\n", shownText([]byte(`BT [(a) -300 (b)] TJ ET`)))
}

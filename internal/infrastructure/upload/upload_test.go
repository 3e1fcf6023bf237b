package upload

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_PlainText(t *testing.T) {
	in := "Jane Doe\njane@example.com\nPython, React\n5 years experience"
	assert.Equal(t, in, ExtractText([]byte(in)))
}

func TestExtractText_DropsInvalidUTF8(t *testing.T) {
	in := []byte("Bob\xff\xfe Smith\n3 years")
	assert.Equal(t, "Bob Smith\n3 years", ExtractText(in))
}

func TestExtractText_Empty(t *testing.T) {
	assert.Equal(t, "", ExtractText(nil))
}

func TestExtractText_BrokenPDFFallsBackToRawText(t *testing.T) {
	in := []byte("%PDF-1.4\nnot really a pdf\nPython 2 years")
	out := ExtractText(in)
	assert.Contains(t, out, "Python 2 years")
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "cv.pdf", SanitizeFilename("cv.pdf"))
	assert.Equal(t, "passwd", SanitizeFilename("../../etc/passwd"))
	assert.Equal(t, "cv.txt", SanitizeFilename(`C:\Users\me\cv.txt`))
	assert.Equal(t, "cv.txt", SanitizeFilename("c\x00v.txt"))

	for _, in := range []string{"", "  ", "..", "/"} {
		_, err := uuid.Parse(SanitizeFilename(in))
		assert.NoError(t, err, "input %q", in)
	}
}

func TestLocalStorage_SaveWritesInsideDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	s, err := NewLocalStorage(dir)
	require.NoError(t, err)

	p, err := s.Save(context.Background(), "../evil.txt", []byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "evil.txt"), p)

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(b))
}

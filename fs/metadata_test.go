package fs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmgilman/go/annotate/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadata_Times(t *testing.T) {
	p := filepath.Join(t.TempDir(), "file")
	writeFile(t, p, "hello")

	when := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, os.Chtimes(p, when, when))

	md, err := Stat(p)
	require.NoError(t, err)
	assert.True(t, md.Modified().Equal(when))

	accessed, err := md.Accessed()
	if errors.Is(err, errors.ErrUnsupported) {
		assert.Contains(t, err.Error(), `while processing path "`+p+`": access time is not available`)
		return
	}
	require.NoError(t, err)
	assert.True(t, accessed.Equal(when))
}

func TestMetadata_Created(t *testing.T) {
	p := filepath.Join(t.TempDir(), "file")
	before := time.Now().Add(-time.Minute)
	writeFile(t, p, "hello")

	md, err := Stat(p)
	require.NoError(t, err)

	created, err := md.Created()
	if err != nil {
		// Not every filesystem records a birth time.
		assert.True(t, errors.Is(err, errors.ErrUnsupported))
		assert.Equal(t, errors.CodePlatform, errors.GetCode(err))
		assert.Equal(t, `while processing path "`+p+`": creation time is not available on this platform: unsupported operation`, err.Error())
		return
	}
	assert.True(t, created.After(before))
}

func TestMetadata_CreatedRemoved(t *testing.T) {
	p := filepath.Join(t.TempDir(), "file")
	writeFile(t, p, "hello")

	md, err := Stat(p)
	require.NoError(t, err)
	require.NoError(t, os.Remove(p))

	_, err = md.Created()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `while processing path "`+p+`": `)
}

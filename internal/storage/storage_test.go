package storage

import (
	"context"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAferoStore(t *testing.T) {
	memFs := afero.NewMemMapFs()
	store := NewAferoStore(memFs)
	ctx := context.Background()

	outPath := "out/site/conversation.html"
	html := `<div class="discord-messages"></div>`

	t.Run("Save creates parent directories", func(t *testing.T) {
		n, err := store.Save(ctx, outPath, strings.NewReader(html))
		require.NoError(t, err)
		assert.Equal(t, int64(len(html)), n)

		isDir, err := afero.IsDir(memFs, "out/site")
		require.NoError(t, err)
		assert.True(t, isDir)
	})

	t.Run("Save overwrites", func(t *testing.T) {
		_, err := store.Save(ctx, outPath, strings.NewReader("<p></p>"))
		require.NoError(t, err)

		data, err := afero.ReadFile(memFs, outPath)
		require.NoError(t, err)
		assert.Equal(t, "<p></p>", string(data))
	})

	t.Run("ReadAll", func(t *testing.T) {
		data, err := ReadAll(ctx, store, outPath)
		require.NoError(t, err)
		assert.Equal(t, "<p></p>", string(data))
	})

	t.Run("ReadAll missing file", func(t *testing.T) {
		_, err := ReadAll(ctx, store, "nothing.json")
		require.Error(t, err)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("Fs is the wrapped filesystem", func(t *testing.T) {
		assert.Same(t, memFs, store.Fs())
	})
}

var errDiskFull = errors.New("disk full")

// failingCloseFs hands out files whose Close fails, like a flush that never
// reaches the disk.
type failingCloseFs struct {
	afero.Fs
}

func (f failingCloseFs) Create(name string) (afero.File, error) {
	file, err := f.Fs.Create(name)
	if err != nil {
		return nil, err
	}
	return failingCloseFile{File: file}, nil
}

type failingCloseFile struct {
	afero.File
}

func (f failingCloseFile) Close() error {
	_ = f.File.Close()
	return errDiskFull
}

func TestAferoStore_SaveReportsCloseError(t *testing.T) {
	store := NewAferoStore(failingCloseFs{Fs: afero.NewMemMapFs()})

	_, err := store.Save(context.Background(), "out/page.html", strings.NewReader("<p></p>"))

	require.Error(t, err)
	assert.ErrorIs(t, err, errDiskFull)
	assert.Contains(t, err.Error(), "close out/page.html")
}

package archive

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestName(t *testing.T) {
	at := time.Date(2021, time.October, 1, 9, 5, 7, 0, time.UTC)
	got := Name(filepath.Join("data", "in", "inputs.csv"), at)
	require.Equal(t, filepath.Join("data", "in", "20211001090507_inputs.csv"), got)
	require.Equal(t, "20211001090507_inputs.csv", Name("inputs.csv", at))
}

func TestFileArchiver(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "inputs.csv")
	require.NoError(t, os.WriteFile(src, []byte("Name\n"), 0o600))

	at := time.Date(2030, time.January, 2, 3, 4, 5, 0, time.UTC)
	dst, err := FileArchiver{}.Archive(src, at)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "20300102030405_inputs.csv"), dst)

	_, err = os.Stat(src)
	require.True(t, errors.Is(err, fs.ErrNotExist))
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, "Name\n", string(data))
}

func TestFileArchiver_Missing(t *testing.T) {
	_, err := FileArchiver{}.Archive(filepath.Join(t.TempDir(), "nope.csv"), time.Now())
	require.Error(t, err)
	require.True(t, errors.Is(err, fs.ErrNotExist))
}

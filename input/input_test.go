package input_test

import (
	"bytes"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	require "github.com/alecthomas/assert/v2"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"

	"github.com/alecthomas/lustream/input"
)

const fixture = "^ab/xy<n>$ ^cd<v>+ef<adv>$\n[<b>]N1<SN>{^i$}\n"

func compress(t *testing.T, compression input.Compression, data []byte) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	var w io.WriteCloser
	var err error
	switch compression {
	case input.Gzip:
		w = gzip.NewWriter(buf)
	case input.Zstd:
		w, err = zstd.NewWriter(buf)
	case input.XZ:
		w, err = xz.NewWriter(buf)
	default:
		return data
	}
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	for _, compression := range []input.Compression{input.None, input.Gzip, input.Zstd, input.XZ} {
		t.Run(string(compression), func(t *testing.T) {
			data := compress(t, compression, []byte(fixture))
			require.Equal(t, compression, input.Detect(data))
			path := filepath.Join(dir, "stream."+string(compression))
			require.NoError(t, os.WriteFile(path, data, 0600))
			actual, err := input.ReadFile(path)
			require.NoError(t, err)
			require.Equal(t, fixture, string(actual))
		})
	}
}

func TestOpenName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stream.txt")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0600))
	r, err := input.Open(path)
	require.NoError(t, err)
	defer r.Close()
	named, ok := r.(interface{ Name() string })
	require.True(t, ok)
	require.Equal(t, path, named.Name())
}

func TestReadFileMissing(t *testing.T) {
	_, err := input.ReadFile(filepath.Join(t.TempDir(), "missing"))
	require.IsError(t, err, fs.ErrNotExist)
}

func TestReadEmptyAndShort(t *testing.T) {
	for _, data := range []string{"", "^", "\x1f"} {
		r, err := input.NewReader(bytes.NewReader([]byte(data)))
		require.NoError(t, err)
		actual, err := io.ReadAll(r)
		require.NoError(t, err)
		require.Equal(t, data, string(actual))
	}
}

func TestCorruptGzip(t *testing.T) {
	_, err := input.NewReader(bytes.NewReader([]byte{0x1f, 0x8b, 0x00}))
	require.Error(t, err)
}

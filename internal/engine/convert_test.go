package engine

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConverter(t *testing.T, runner CommandRunner) *Converter {
	t.Helper()
	return &Converter{
		Runner:        runner,
		Java:          "java",
		Jar:           "mst.jar",
		EdgeListClass: "tools.MtxToEdgeList",
		GrToMtxClass:  "tools.GrToMtx",
		CacheDir:      filepath.Join(t.TempDir(), "cache"),
	}
}

func TestConverter_ConvertsOnce(t *testing.T) {
	src := filepath.Join(t.TempDir(), "g.mtx")
	require.NoError(t, os.WriteFile(src, []byte("%%MatrixMarket\n"), 0o644))

	runner := &fakeRunner{}
	runner.respond = func(argv []string) (*ProcessResult, error) {
		touchOutput(t, argv)
		return ok("")
	}
	c := newTestConverter(t, runner)

	first, err := c.Convert(context.Background(), src)
	require.NoError(t, err)
	second, err := c.Convert(context.Background(), src)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, filepath.Join(c.CacheDir, "g.mtx.edgelist"), first)
	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{"java", "-cp", "mst.jar", "tools.MtxToEdgeList", "--input", src, "--output", first}, runner.calls[0])
}

func TestConverter_ReusesFreshArtifact(t *testing.T) {
	src := filepath.Join(t.TempDir(), "g.mtx")
	require.NoError(t, os.WriteFile(src, []byte("%%MatrixMarket\n"), 0o644))

	runner := &fakeRunner{}
	runner.respond = func(argv []string) (*ProcessResult, error) {
		touchOutput(t, argv)
		return ok("")
	}
	c := newTestConverter(t, runner)

	dst := c.ArtifactPath(src)
	require.NoError(t, os.MkdirAll(c.CacheDir, 0o755))
	require.NoError(t, os.WriteFile(dst, []byte("0 1 1\n"), 0o644))
	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(src, old, old))

	got, err := c.Convert(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, dst, got)
	assert.Empty(t, runner.calls)

	// a fresh converter with a newer source must convert again
	c2 := newTestConverter(t, runner)
	c2.CacheDir = c.CacheDir
	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(src, future, future))

	_, err = c2.Convert(context.Background(), src)
	require.NoError(t, err)
	assert.Len(t, runner.calls, 1)
}

func TestConverter_Failure(t *testing.T) {
	src := filepath.Join(t.TempDir(), "broken.mtx")
	require.NoError(t, os.WriteFile(src, []byte("junk"), 0o644))

	runner := &fakeRunner{respond: func([]string) (*ProcessResult, error) {
		return failed(1, "NumberFormatException")
	}}
	c := newTestConverter(t, runner)

	_, err := c.Convert(context.Background(), src)
	require.ErrorIs(t, err, ErrConversion)
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Contains(t, exitErr.Output, "NumberFormatException")

	// failures are not cached
	_, err = c.Convert(context.Background(), src)
	assert.ErrorIs(t, err, ErrConversion)
	assert.Len(t, runner.calls, 2)
}

func TestConverter_ConvertDir(t *testing.T) {
	raw := t.TempDir()
	out := filepath.Join(t.TempDir(), "mtx")
	for _, name := range []string{"a.gr", "b.gr", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(raw, name), []byte("p sp 2 1\n"), 0o644))
	}

	runner := &fakeRunner{respond: func(argv []string) (*ProcessResult, error) {
		if strings.HasSuffix(argAfter(argv, "--input"), "b.gr") {
			return failed(2, "bad header")
		}
		return ok("")
	}}
	c := newTestConverter(t, runner)

	converted, failedCount, err := c.ConvertDir(context.Background(), raw, out)
	require.NoError(t, err)
	assert.Equal(t, 1, converted)
	assert.Equal(t, 1, failedCount)
	assert.DirExists(t, out)

	require.Len(t, runner.calls, 2)
	assert.Equal(t, "tools.GrToMtx", runner.calls[0][3])
	assert.Equal(t, filepath.Join(out, "a.mtx"), argAfter(runner.calls[0], "--output"))
}

func TestConverter_ConvertDirEmpty(t *testing.T) {
	runner := &fakeRunner{respond: func([]string) (*ProcessResult, error) { return ok("") }}
	c := newTestConverter(t, runner)

	converted, failedCount, err := c.ConvertDir(context.Background(), t.TempDir(), filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	assert.Zero(t, converted)
	assert.Zero(t, failedCount)
	assert.Empty(t, runner.calls)
}

func TestConverter_FailureRemovesPartialArtifact(t *testing.T) {
	src := filepath.Join(t.TempDir(), "g.mtx")
	require.NoError(t, os.WriteFile(src, []byte("%%MatrixMarket\n"), 0o644))

	runner := &fakeRunner{}
	runner.respond = func(argv []string) (*ProcessResult, error) {
		out := argAfter(argv, "--output")
		require.NoError(t, os.MkdirAll(filepath.Dir(out), 0o755))
		require.NoError(t, os.WriteFile(out, []byte("0 1 1.0\n0 2"), 0o644))
		return failed(1, "java.lang.OutOfMemoryError")
	}
	c := newTestConverter(t, runner)

	_, err := c.Convert(context.Background(), src)
	require.ErrorIs(t, err, ErrConversion)
	assert.NoFileExists(t, c.ArtifactPath(src))

	// a later run must convert again instead of reusing the truncated file
	c2 := newTestConverter(t, runner)
	c2.CacheDir = c.CacheDir
	_, err = c2.Convert(context.Background(), src)
	assert.ErrorIs(t, err, ErrConversion)
	assert.Len(t, runner.calls, 2)
}

func TestConverter_LaunchFailureRemovesPartialArtifact(t *testing.T) {
	src := filepath.Join(t.TempDir(), "g.mtx")
	require.NoError(t, os.WriteFile(src, []byte("%%MatrixMarket\n"), 0o644))

	runner := &fakeRunner{}
	runner.respond = func(argv []string) (*ProcessResult, error) {
		touchOutput(t, argv)
		return nil, context.DeadlineExceeded
	}
	c := newTestConverter(t, runner)

	_, err := c.Convert(context.Background(), src)
	require.ErrorIs(t, err, ErrConversion)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NoFileExists(t, c.ArtifactPath(src))
}

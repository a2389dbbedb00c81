package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/daryltucker/boruvka-bench/internal/output"
)

// Converter runs the JVM format conversion tools.
type Converter struct {
	Runner        CommandRunner
	Java          string
	Jar           string
	EdgeListClass string
	GrToMtxClass  string
	// CacheDir receives edge-list artifacts.
	CacheDir string

	done map[string]string
}

// ArtifactPath is where the edge list for input is cached.
func (c *Converter) ArtifactPath(input string) string {
	return filepath.Join(c.CacheDir, filepath.Base(input)+".edgelist")
}

// Convert returns an edge-list artifact for a matrix-market input. An
// artifact already on disk is reused unless the source is newer than it,
// and a path converted once in this process is never converted again.
// Failures wrap ErrConversion; the caller skips the input.
func (c *Converter) Convert(ctx context.Context, input string) (string, error) {
	if path, ok := c.done[input]; ok {
		return path, nil
	}

	dst := c.ArtifactPath(input)
	if fresh(dst, input) {
		output.Logger.Debug("Reusing converted graph", "artifact", dst)
		c.remember(input, dst)
		return dst, nil
	}

	if err := os.MkdirAll(c.CacheDir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %w", ErrConversion, err)
	}

	output.Logger.Info("Converting graph to edge list", "graph", filepath.Base(input))
	if err := c.run(ctx, c.EdgeListClass, input, dst); err != nil {
		return "", err
	}
	c.remember(input, dst)
	return dst, nil
}

func (c *Converter) remember(input, dst string) {
	if c.done == nil {
		c.done = make(map[string]string)
	}
	c.done[input] = dst
}

// ConvertDir converts every .gr file in inDir into a .mtx file in outDir.
// Individual failures are logged and do not stop the batch.
func (c *Converter) ConvertDir(ctx context.Context, inDir, outDir string) (converted, failed int, err error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return 0, 0, fmt.Errorf("failed to create output directory %s: %w", outDir, err)
	}

	grFiles, err := filepath.Glob(filepath.Join(inDir, "*.gr"))
	if err != nil {
		return 0, 0, err
	}
	if len(grFiles) == 0 {
		output.Logger.Warn("No .gr files found", "dir", inDir)
		return 0, 0, nil
	}

	output.Logger.Info("Converting graphs", "count", len(grFiles))
	for _, gr := range grFiles {
		if ctx.Err() != nil {
			return converted, failed, ctx.Err()
		}
		base := strings.TrimSuffix(filepath.Base(gr), filepath.Ext(gr))
		mtx := filepath.Join(outDir, base+".mtx")

		output.Logger.Info("Converting", "from", base+".gr", "to", base+".mtx")
		if err := c.run(ctx, c.GrToMtxClass, gr, mtx); err != nil {
			failed++
			continue
		}
		converted++
	}
	output.Logger.Info("Conversion complete", "converted", converted, "failed", failed)
	return converted, failed, nil
}

func (c *Converter) run(ctx context.Context, class, input, dst string) error {
	argv := []string{c.Java, "-cp", c.Jar, class, "--input", input, "--output", dst}
	res, err := c.Runner.Run(ctx, argv)
	if err != nil {
		discard(dst)
		output.Logger.Error("Conversion failed", "input", input, "error", err)
		return fmt.Errorf("%w: %s: %w", ErrConversion, filepath.Base(input), err)
	}
	if res.ExitCode != 0 {
		discard(dst)
		exitErr := &ExitError{Argv: argv, Code: res.ExitCode, Output: res.Combined()}
		output.Logger.Error("Conversion failed",
			"input", input,
			"status", res.ExitCode,
			"output", Truncate(exitErr.Output),
		)
		return fmt.Errorf("%w: %s: %w", ErrConversion, filepath.Base(input), exitErr)
	}
	return nil
}

// discard removes partial output left by a failed conversion.
func discard(dst string) {
	if err := os.Remove(dst); err != nil && !errors.Is(err, os.ErrNotExist) {
		output.Logger.Warn("Failed to remove partial conversion output", "path", dst, "error", err)
	}
}

// fresh reports whether dst exists and is not older than src.
func fresh(dst, src string) bool {
	dstInfo, err := os.Stat(dst)
	if err != nil {
		return false
	}
	srcInfo, err := os.Stat(src)
	if errors.Is(err, os.ErrNotExist) {
		return true
	}
	if err != nil {
		return false
	}
	return !dstInfo.ModTime().Before(srcInfo.ModTime())
}

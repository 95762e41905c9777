package ddsplane

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestTransformFileRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.dds")
	midPath := filepath.Join(dir, "mid.dds")
	outPath := filepath.Join(dir, "out.dds")

	data := makeDXT1File(t, 16, 16, blockCount(16, 16))
	if err := os.WriteFile(inPath, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := TransformFile(inPath, midPath, nil); err != nil {
		t.Fatalf("TransformFile: %v", err)
	}
	if err := UntransformFile(midPath, outPath, nil); err != nil {
		t.Fatalf("UntransformFile: %v", err)
	}

	got, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("file round-trip mismatch")
	}

	// Only the three .dds files may remain: no staging leftovers.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 3 {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("unexpected directory contents: %v", names)
	}
}

func TestTransformFileFailureLeavesNoOutput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	inPath := filepath.Join(dir, "garbage.dds")
	outPath := filepath.Join(dir, "out.dds")

	if err := os.WriteFile(inPath, []byte("0123456789"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := TransformFile(inPath, outPath, nil); !errors.Is(err, ErrMalformedHeader) {
		t.Fatalf("expected ErrMalformedHeader, got %v", err)
	}
	if _, err := os.Stat(outPath); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("output file exists after failed transform")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the input file, found %d entries", len(entries))
	}
}

func TestTransformFileIoErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.dds")
	data := makeDXT1File(t, 8, 8, 4)
	if err := os.WriteFile(inPath, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	t.Run("missing-input", func(t *testing.T) {
		t.Parallel()

		err := TransformFile(filepath.Join(dir, "nope.dds"), filepath.Join(dir, "out.dds"), nil)
		if !errors.Is(err, ErrOpenFile) {
			t.Fatalf("expected ErrOpenFile, got %v", err)
		}
	})

	t.Run("missing-output-dir", func(t *testing.T) {
		t.Parallel()

		err := TransformFile(inPath, filepath.Join(dir, "no-such-dir", "out.dds"), nil)
		if !errors.Is(err, ErrCreateFile) {
			t.Fatalf("expected ErrCreateFile, got %v", err)
		}
	})
}

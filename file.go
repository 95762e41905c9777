package ddsplane

import (
	"fmt"
	"os"
	"path/filepath"
)

// TransformFile reads a DXT1 DDS file, applies the forward plane transform
// and writes the result to outPath. The output is staged in a temporary
// file and renamed into place, so a failure never leaves a partial file.
func TransformFile(inPath, outPath string, opts *Options) error {
	return processFile(inPath, outPath, opts, Transform)
}

// UntransformFile reads a plane-transformed file, restores the original
// block interleaving and writes the result to outPath atomically.
func UntransformFile(inPath, outPath string, opts *Options) error {
	return processFile(inPath, outPath, opts, Untransform)
}

func processFile(inPath, outPath string, opts *Options, fn func([]byte, *Options) ([]byte, error)) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrOpenFile, inPath, err)
	}

	out, err := fn(data, opts)
	if err != nil {
		return fmt.Errorf("%q: %w", inPath, err)
	}

	return writeFileAtomic(outPath, out)
}

// writeFileAtomic stages the payload in a temporary file in the destination
// directory and renames it into place. Staging next to the destination keeps
// the rename on one filesystem.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrCreateFile, path, err)
	}

	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: %q: %v", ErrWriteOutput, path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: %q: %v", ErrWriteOutput, path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: %q: %v", ErrWriteOutput, path, err)
	}

	return nil
}

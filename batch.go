package ddsplane

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Op selects the per-file operation for batch processing.
type Op int

const (
	// OpTransform splits blocks into planes.
	OpTransform Op = iota
	// OpUntransform restores blocks from planes.
	OpUntransform
)

// BatchOptions configures ProcessTree. Nil means defaults.
type BatchOptions struct {
	// Options are the transform options applied to every file.
	Options *Options
	// Workers caps the number of files processed concurrently.
	// Zero or negative uses GOMAXPROCS.
	Workers int
	// Log receives per-file progress lines. Nil uses the standard logger.
	Log *log.Logger
}

func (o *BatchOptions) options() *Options {
	if o == nil {
		return nil
	}
	return o.Options
}

func (o *BatchOptions) workers() int {
	if o == nil || o.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return o.Workers
}

func (o *BatchOptions) logf(format string, args ...any) {
	if o != nil && o.Log != nil {
		o.Log.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}

// FileError records one failed file in a batch.
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string { return fmt.Sprintf("%s: %v", e.Path, e.Err) }

func (e FileError) Unwrap() error { return e.Err }

// BatchResult tallies one ProcessTree run.
type BatchResult struct {
	Processed int64
	Failed    int64
	Errors    []FileError
}

// ProcessTree discovers every .dds file under inDir, mirrors the directory
// structure under outDir and applies op to each file. Files are independent
// tasks over the immutable discovered list; one file failing never aborts
// the others. The returned error covers discovery only, per-file failures
// are reported in the result.
func ProcessTree(op Op, inDir, outDir string, opts *BatchOptions) (*BatchResult, error) {
	paths, err := discoverDDS(inDir)
	if err != nil {
		return nil, err
	}

	var (
		res BatchResult
		mu  sync.Mutex
	)

	g := new(errgroup.Group)
	g.SetLimit(opts.workers())
	for _, path := range paths {
		g.Go(func() error {
			if err := processOne(op, inDir, outDir, path, opts.options()); err != nil {
				atomic.AddInt64(&res.Failed, 1)
				mu.Lock()
				res.Errors = append(res.Errors, FileError{Path: path, Err: err})
				mu.Unlock()
				opts.logf("error: %v", err)
				return nil
			}
			atomic.AddInt64(&res.Processed, 1)
			opts.logf("processed: %s", path)
			return nil
		})
	}
	_ = g.Wait()

	return &res, nil
}

func processOne(op Op, inDir, outDir, path string, opts *Options) error {
	rel, err := filepath.Rel(inDir, path)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrWalkInput, path, err)
	}

	outPath := filepath.Join(outDir, rel)
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrCreateFile, filepath.Dir(outPath), err)
	}

	if op == OpUntransform {
		return UntransformFile(path, outPath, opts)
	}
	return TransformFile(path, outPath, opts)
}

// discoverDDS lists every file with a .dds extension (case-insensitive)
// under root.
func discoverDDS(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".dds") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrWalkInput, root, err)
	}

	return paths, nil
}

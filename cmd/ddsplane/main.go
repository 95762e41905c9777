package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/woozymasta/ddsplane"
)

func main() {
	var (
		doTransform   = flag.Bool("t", false, "transform: split DXT1 blocks into endpoint and index planes")
		doUntransform = flag.Bool("u", false, "untransform: restore original DXT1 blocks from planes")
		stats         = flag.Bool("s", false, "report compressed-size estimates for a file instead of writing output")
		recurse       = flag.Bool("r", false, "treat the two paths as directories and process every .dds beneath")
		lenient       = flag.Bool("lenient", false, "log geometry mismatches instead of failing")
		anyFourCC     = flag.Bool("any-fourcc", false, "process any pixel format byte-identically, not just DXT1")
		workers       = flag.Int("workers", 0, "concurrent files in -r mode (0 = number of CPUs)")
	)
	flag.Usage = usage
	flag.Parse()

	opts := &ddsplane.Options{Lenient: *lenient, AnyFourCC: *anyFourCC}

	switch {
	case *stats:
		if flag.NArg() != 1 {
			usage()
			os.Exit(1)
		}
		if err := printStats(flag.Arg(0), opts); err != nil {
			fail(err)
		}

	case *doTransform == *doUntransform:
		fmt.Fprintln(os.Stderr, "ddsplane: exactly one of -t or -u is required")
		usage()
		os.Exit(1)

	case *recurse:
		if flag.NArg() != 2 {
			usage()
			os.Exit(1)
		}
		op := ddsplane.OpTransform
		if *doUntransform {
			op = ddsplane.OpUntransform
		}
		res, err := ddsplane.ProcessTree(op, flag.Arg(0), flag.Arg(1), &ddsplane.BatchOptions{
			Options: opts,
			Workers: *workers,
			Log:     log.New(os.Stdout, "", 0),
		})
		if err != nil {
			fail(err)
		}
		fmt.Printf("\nProcessing complete:\n  processed: %d\n  errors:    %d\n", res.Processed, res.Failed)
		if res.Failed > 0 {
			os.Exit(1)
		}

	default:
		if flag.NArg() != 2 {
			usage()
			os.Exit(1)
		}
		var err error
		if *doTransform {
			err = ddsplane.TransformFile(flag.Arg(0), flag.Arg(1), opts)
		} else {
			err = ddsplane.UntransformFile(flag.Arg(0), flag.Arg(1), opts)
		}
		if err != nil {
			fail(err)
		}
	}
}

func printStats(path string, opts *ddsplane.Options) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	rep, err := ddsplane.EstimateRatio(data, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	fmt.Printf("%s: %d bytes\n", path, rep.OriginalSize)
	fmt.Printf("  zstd: %8d -> %8d bytes (%6.2f%% -> %6.2f%%)\n",
		rep.ZstdOriginal, rep.ZstdTransformed,
		rep.Percent(rep.ZstdOriginal), rep.Percent(rep.ZstdTransformed))
	fmt.Printf("  lz4:  %8d -> %8d bytes (%6.2f%% -> %6.2f%%)\n",
		rep.LZ4Original, rep.LZ4Transformed,
		rep.Percent(rep.LZ4Original), rep.Percent(rep.LZ4Transformed))

	return nil
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "ddsplane:", err)
	os.Exit(1)
}

func usage() {
	fmt.Fprint(os.Stderr, `Usage:
  ddsplane -t [flags] input.dds output.dds   split blocks into planes
  ddsplane -u [flags] input.dds output.dds   restore blocks from planes
  ddsplane -t|-u -r [flags] in-dir out-dir   process a directory tree
  ddsplane -s [flags] input.dds              compression ratio estimate

Flags:
`)
	flag.PrintDefaults()
}

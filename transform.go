package ddsplane

import (
	"fmt"
	"log"
)

// Options configures transform validation. Nil means defaults: strict
// geometry checking and DXT1-only input.
type Options struct {
	// Lenient downgrades geometry mismatches from hard errors to logged
	// warnings. The forward transform then proceeds on the payload as-is;
	// the inverse falls back to the length-derived block count whenever the
	// block region is a whole number of blocks, whether the payload exceeds
	// or falls short of the declared geometry, so lenient round trips stay
	// exact in both directions.
	Lenient bool
	// AnyFourCC skips the BC1 pixel-format gate and transforms any payload
	// byte-identically in 8-byte blocks. Useful for other 8-byte-block
	// formats such as ATI1/BC4.
	AnyFourCC bool
	// Log receives lenient-mode warnings. Nil uses the standard logger.
	Log *log.Logger
}

func (o *Options) isLenient() bool {
	return o != nil && o.Lenient
}

func (o *Options) anyFourCC() bool {
	return o != nil && o.AnyFourCC
}

func (o *Options) warnf(format string, args ...any) {
	if o != nil && o.Log != nil {
		o.Log.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}

// inspect runs the header inspector and applies the pixel-format gate.
func inspect(data []byte, opts *Options) (*HeaderInfo, error) {
	info, err := InspectHeader(data)
	if err != nil {
		return nil, err
	}
	if !info.BC1 && !opts.anyFourCC() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, info.FormatLabel)
	}

	return info, nil
}

// Transform splits every 8-byte block after the DDS header into its 4-byte
// endpoint and 4-byte index fields and regroups them as two contiguous
// planes: header, all endpoints in block order, all indices in block order.
// The output has exactly the length of the input.
func Transform(data []byte, opts *Options) ([]byte, error) {
	info, err := inspect(data, opts)
	if err != nil {
		return nil, err
	}

	blocks := data[info.DataOffset:]
	if len(blocks)%blockBytes != 0 {
		return nil, fmt.Errorf("%w: %d bytes after header, not a multiple of %d",
			ErrTruncatedBlockStream, len(blocks), blockBytes)
	}

	n := len(blocks) / blockBytes
	if err := checkGeometry(info, n, opts); err != nil {
		return nil, err
	}

	out := make([]byte, len(data))
	copy(out, info.Raw)

	endpoints := out[info.DataOffset : info.DataOffset+n*endpointBytes]
	indices := out[info.DataOffset+n*endpointBytes:]
	for i := 0; i < n; i++ {
		block := blocks[i*blockBytes : (i+1)*blockBytes]
		copy(endpoints[i*endpointBytes:(i+1)*endpointBytes], block[:endpointBytes])
		copy(indices[i*endpointBytes:(i+1)*endpointBytes], block[endpointBytes:])
	}

	return out, nil
}

// Untransform re-interleaves the two planes produced by Transform back into
// the original 8-byte blocks. The block count comes from the declared image
// geometry, not from the stream length: the plane boundary is not
// self-delimiting in the transformed layout.
func Untransform(data []byte, opts *Options) ([]byte, error) {
	info, err := inspect(data, opts)
	if err != nil {
		return nil, err
	}

	planes := data[info.DataOffset:]
	n := info.BlockCount()
	expected := n * blockBytes

	if len(planes) != expected {
		if !opts.isLenient() {
			if len(planes) < expected {
				return nil, fmt.Errorf("%w: %dx%d implies %d blocks (%d bytes), have %d bytes",
					ErrTruncatedPlaneData, info.Width, info.Height, n, expected, len(planes))
			}
			return nil, fmt.Errorf("%w: %dx%d implies %d blocks (%d bytes), payload has %d bytes",
				ErrGeometryMismatch, info.Width, info.Height, n, expected, len(planes))
		}
		if len(planes)%blockBytes != 0 {
			return nil, fmt.Errorf("%w: %d bytes after header, not a multiple of %d",
				ErrTruncatedPlaneData, len(planes), blockBytes)
		}
		opts.warnf("ddsplane: %dx%d implies %d blocks, payload has %d; using payload count",
			info.Width, info.Height, n, len(planes)/blockBytes)
		n = len(planes) / blockBytes
	}

	out := make([]byte, info.DataOffset+n*blockBytes)
	copy(out, info.Raw)

	endpoints := planes[:n*endpointBytes]
	indices := planes[n*endpointBytes : n*blockBytes]
	dst := out[info.DataOffset:]
	for i := 0; i < n; i++ {
		copy(dst[i*blockBytes:i*blockBytes+endpointBytes], endpoints[i*endpointBytes:(i+1)*endpointBytes])
		copy(dst[i*blockBytes+endpointBytes:(i+1)*blockBytes], indices[i*endpointBytes:(i+1)*endpointBytes])
	}

	return out, nil
}

// checkGeometry compares the geometry-derived block count against the block
// count actually present in the stream.
func checkGeometry(info *HeaderInfo, actualBlocks int, opts *Options) error {
	expected := info.BlockCount()
	if actualBlocks == expected {
		return nil
	}
	if opts.isLenient() {
		opts.warnf("ddsplane: %dx%d implies %d blocks, payload has %d",
			info.Width, info.Height, expected, actualBlocks)
		return nil
	}

	return fmt.Errorf("%w: %dx%d implies %d blocks (%d bytes), payload has %d blocks (%d bytes)",
		ErrGeometryMismatch, info.Width, info.Height,
		expected, expected*blockBytes, actualBlocks, actualBlocks*blockBytes)
}

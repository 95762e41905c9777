package ddsplane

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// RatioReport compares how well general-purpose compressors do on the
// original stream versus its plane-transformed counterpart. All sizes are
// in bytes.
type RatioReport struct {
	OriginalSize    int
	ZstdOriginal    int
	ZstdTransformed int
	LZ4Original     int
	LZ4Transformed  int
}

// Percent returns size as a percentage of the original stream length.
func (r *RatioReport) Percent(size int) float64 {
	if r.OriginalSize == 0 {
		return 0
	}
	return float64(size) / float64(r.OriginalSize) * 100
}

// EstimateRatio transforms data in memory and reports the compressed sizes
// of the raw and transformed streams under zstd and LZ4. Nothing compressed
// is ever written anywhere; the measurement answers whether the plane
// transform helps a downstream compressor for this particular file.
func EstimateRatio(data []byte, opts *Options) (*RatioReport, error) {
	transformed, err := Transform(data, opts)
	if err != nil {
		return nil, err
	}

	rep := &RatioReport{OriginalSize: len(data)}
	if rep.ZstdOriginal, err = zstdSize(data); err != nil {
		return nil, err
	}
	if rep.ZstdTransformed, err = zstdSize(transformed); err != nil {
		return nil, err
	}
	if rep.LZ4Original, err = lz4Size(data); err != nil {
		return nil, err
	}
	if rep.LZ4Transformed, err = lz4Size(transformed); err != nil {
		return nil, err
	}

	return rep, nil
}

func zstdSize(data []byte) (int, error) {
	enc, err := zstd.NewWriter(
		nil,
		zstd.WithEncoderConcurrency(1),
		zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
		zstd.WithLowerEncoderMem(true),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: zstd: %v", ErrCompressProbe, err)
	}

	out := enc.EncodeAll(data, nil)
	_ = enc.Close()

	return len(out), nil
}

func lz4Size(data []byte) (int, error) {
	buf := make([]byte, lz4.CompressBlockBound(len(data)))
	n, err := lz4.CompressBlockHC(data, buf, 0, nil, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: LZ4: %v", ErrCompressProbe, err)
	}
	if n == 0 {
		// Incompressible input; a real container would store it as-is.
		return len(data), nil
	}

	return n, nil
}

package ddsplane

import "errors"

var (
	// ErrNotDDS indicates the stream does not start with the DDS magic.
	ErrNotDDS = errors.New("not a DDS file")
	// ErrMalformedHeader indicates the stream is shorter than its declared
	// header or the declared header size is unreasonable.
	ErrMalformedHeader = errors.New("malformed DDS header")
	// ErrUnsupportedFormat indicates a pixel format without 8-byte blocks.
	ErrUnsupportedFormat = errors.New("unsupported pixel format")
	// ErrTruncatedBlockStream indicates the block region is not a multiple
	// of the DXT1 block size.
	ErrTruncatedBlockStream = errors.New("truncated block stream")
	// ErrTruncatedPlaneData indicates the endpoint or index plane is shorter
	// than the block count implied by the image geometry.
	ErrTruncatedPlaneData = errors.New("truncated plane data")
	// ErrGeometryMismatch indicates the geometry-derived block count
	// disagrees with the block region length.
	ErrGeometryMismatch = errors.New("block geometry mismatch")
	// ErrOpenFile indicates input file open failed.
	ErrOpenFile = errors.New("open file failed")
	// ErrCreateFile indicates output file creation failed.
	ErrCreateFile = errors.New("create file failed")
	// ErrWriteOutput indicates staging or renaming the output failed.
	ErrWriteOutput = errors.New("write output failed")
	// ErrWalkInput indicates directory discovery failed.
	ErrWalkInput = errors.New("walk input tree failed")
	// ErrCompressProbe indicates a ratio-probe compressor failed.
	ErrCompressProbe = errors.New("compression probe failed")
	// ErrSizeOverflow indicates a size or dimension exceeds supported limits.
	ErrSizeOverflow = errors.New("size overflow")
)

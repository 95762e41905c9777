package ddsplane

import (
	"fmt"

	"github.com/woozymasta/bcn"
)

const (
	// blockBytes is the size of one DXT1 block.
	blockBytes = 8
	// endpointBytes is the color endpoint field within a block; the
	// remaining 4 bytes are the 2-bit-per-texel index field.
	endpointBytes = 4

	// dxgiBC1 is DXGI_FORMAT_BC1_UNORM, carried by DX10 extension headers.
	dxgiBC1 = 71
)

// blockCount returns the number of 4x4 texel blocks covering a width x
// height image. Partial edge blocks count as whole blocks.
func blockCount(width, height int) int {
	return ((width + 3) / 4) * ((height + 3) / 4)
}

// classifyFormat reports whether the pixel format uses BC1-class 8-byte
// blocks, plus a short label for diagnostics.
func classifyFormat(header *bcn.DDSHeader, dx10 *bcn.DDSHeaderDX10) (bool, string) {
	if dx10 != nil {
		return dx10.DXGIFormat == dxgiBC1, fmt.Sprintf("DXGI %d", dx10.DXGIFormat)
	}

	pf := header.PixelFormat
	if (pf.Flags & bcn.DDSPFFourCC) != 0 {
		fourCC := intToFourCC(pf.FourCC)
		return fourCC == "DXT1", fourCC
	}

	return false, "non-FourCC"
}

func intToFourCC(value uint32) string {
	return string([]byte{
		byte(value & 0xff),
		byte((value >> 8) & 0xff),
		byte((value >> 16) & 0xff),
		byte((value >> 24) & 0xff),
	})
}

func makeFourCC(a, b, c, d byte) uint32 {
	return uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24
}

// makeDXT1Header builds a minimal single-level DXT1 DDS header, used to
// synthesize test streams.
func makeDXT1Header(width, height int) (*bcn.DDSHeader, error) {
	w32, err := u32FromInt(width)
	if err != nil {
		return nil, err
	}
	h32, err := u32FromInt(height)
	if err != nil {
		return nil, err
	}
	linear, err := u32FromInt(blockCount(width, height) * blockBytes)
	if err != nil {
		return nil, err
	}

	hdr := &bcn.DDSHeader{
		Size:              bcn.DDSHeaderSize,
		Flags:             bcn.DDSFlagCaps | bcn.DDSFlagHeight | bcn.DDSFlagWidth | bcn.DDSFlagPixelFormat | bcn.DDSFlagLinearSize,
		Height:            h32,
		Width:             w32,
		PitchOrLinearSize: linear,
		Depth:             1,
		MipMapCount:       1,
		Caps:              bcn.DDSCapsTexture,
	}
	hdr.PixelFormat.Size = bcn.DDSPixelFormatSize
	hdr.PixelFormat.Flags = bcn.DDSPFFourCC
	hdr.PixelFormat.FourCC = makeFourCC('D', 'X', 'T', '1')

	return hdr, nil
}

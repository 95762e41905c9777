package ddsplane

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/woozymasta/bcn"
)

const (
	ddsMagic = "DDS "
	// minHeaderSize is the DDS magic plus the fixed 124-byte header.
	minHeaderSize = int(4 + bcn.DDSHeaderSize)
	// dx10HeaderSize is the DX10 extension appended after the fixed header.
	dx10HeaderSize = 20
)

// HeaderInfo describes the container prefix of a DXT1 DDS stream. It is a
// read-only view into the inspected stream; Raw aliases the input bytes.
type HeaderInfo struct {
	// Raw is the first DataOffset bytes of the stream, verbatim. Both
	// transform directions copy it to the output unchanged.
	Raw []byte
	// Width and Height are the image dimensions in texels.
	Width  uint32
	Height uint32
	// DataOffset is where the block stream starts: 4 bytes of magic plus
	// the stored header size, plus the DX10 extension when present.
	DataOffset int
	// BC1 reports whether the pixel format uses BC1-class 8-byte blocks.
	BC1 bool
	// FormatLabel is a short pixel-format description for diagnostics,
	// e.g. "DXT1", "DXT5" or "DXGI 71".
	FormatLabel string
}

// BlockCount returns ceil(w/4)*ceil(h/4), the number of 8-byte blocks
// implied by the image dimensions. Partial edge blocks are whole blocks.
func (h *HeaderInfo) BlockCount() int {
	return blockCount(int(h.Width), int(h.Height))
}

// InspectHeader parses the minimal DDS prefix needed to locate the block
// stream: magic, stored header size, image dimensions and pixel format.
// The header is otherwise treated as opaque bytes.
func InspectHeader(data []byte) (*HeaderInfo, error) {
	if len(data) < minHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrMalformedHeader, len(data), minHeaderSize)
	}
	if string(data[:4]) != ddsMagic {
		return nil, fmt.Errorf("%w: magic %q", ErrNotDDS, data[:4])
	}

	headerSize := binary.LittleEndian.Uint32(data[4:8])
	if headerSize == 0 || uint64(headerSize) > uint64(maxInt32-4) {
		return nil, fmt.Errorf("%w: declared header size %d", ErrMalformedHeader, headerSize)
	}

	dataOffset := 4 + int(headerSize)
	if dataOffset < minHeaderSize {
		return nil, fmt.Errorf("%w: data offset %d, minimum %d", ErrMalformedHeader, dataOffset, minHeaderSize)
	}
	if dataOffset > len(data) {
		return nil, fmt.Errorf("%w: data offset %d beyond stream of %d bytes", ErrMalformedHeader, dataOffset, len(data))
	}

	r := bytes.NewReader(data)
	header, err := bcn.ReadDDSHeader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}
	dx10, err := bcn.ReadDDSHeaderDX10(r, header)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}
	if dx10 != nil {
		dataOffset += dx10HeaderSize
		if dataOffset > len(data) {
			return nil, fmt.Errorf("%w: data offset %d beyond stream of %d bytes", ErrMalformedHeader, dataOffset, len(data))
		}
	}

	bc1, label := classifyFormat(header, dx10)

	return &HeaderInfo{
		Raw:         data[:dataOffset],
		Width:       header.Width,
		Height:      header.Height,
		DataOffset:  dataOffset,
		BC1:         bc1,
		FormatLabel: label,
	}, nil
}

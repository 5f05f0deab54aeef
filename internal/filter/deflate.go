package filter

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"

	"github.com/hdf5ro/hdf5/internal/message"
)

// Deflate implements the DEFLATE filter (ID 1). Chunks are normally
// zlib-framed, but some producers write gzip framing instead; Decode sniffs
// the header and accepts both.
type Deflate struct{}

// NewDeflate creates a DEFLATE filter. The filter's client data carries the
// writer's compression level, which is irrelevant for decoding.
func NewDeflate(clientData []uint32) *Deflate {
	_ = clientData
	return &Deflate{}
}

func (f *Deflate) ID() uint16 {
	return message.FilterDeflate
}

// Decode inflates input into a dynamically grown buffer. The decompressed
// length is not declared anywhere in the chunk record, so output growth is
// unbounded by design. A truncated tail (io.ErrUnexpectedEOF after some
// output) is tolerated: everything inflated up to that point is returned.
func (f *Deflate) Decode(input []byte) ([]byte, error) {
	if len(input) < 2 {
		return nil, fmt.Errorf("deflate: chunk too short (%d bytes)", len(input))
	}

	var (
		r   io.ReadCloser
		err error
	)
	if input[0] == 0x1f && input[1] == 0x8b {
		r, err = gzip.NewReader(bytes.NewReader(input))
	} else {
		r, err = zlib.NewReader(bytes.NewReader(input))
	}
	if err != nil {
		return nil, fmt.Errorf("deflate: opening stream: %w", err)
	}
	defer r.Close()

	var out bytes.Buffer
	if _, err := io.Copy(&out, r); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) && out.Len() > 0 {
			return out.Bytes(), nil
		}
		return nil, fmt.Errorf("deflate: inflating: %w", err)
	}

	return out.Bytes(), nil
}

package message

import (
	"fmt"

	binpkg "github.com/hdf5ro/hdf5/internal/binary"
)

// LinkInfo represents a link-info message (type 0x0002), present on groups
// that store their membership through Link messages rather than a v1
// symbol table. The fractal-heap and B-tree v2 indices it points to are not
// followed by this reader — group members are found by scanning the
// group's inline Link messages instead.
type LinkInfo struct {
	Version                 uint8
	TrackCreationOrder      bool
	IndexCreationOrder      bool
	MaxCreationIndex        uint64 // valid only if TrackCreationOrder
	FractalHeapAddress      uint64
	NameIndexBTreeAddress   uint64
	OrderIndexBTreeAddress  uint64 // valid only if IndexCreationOrder
}

func (m *LinkInfo) Type() Type { return TypeLinkInfo }

func parseLinkInfo(data []byte, r *binpkg.Reader) (*LinkInfo, error) {
	if len(data) < 2 {
		return nil, fmt.Errorf("%w: link info message too short", ErrMalformed)
	}

	li := &LinkInfo{
		Version: data[0],
	}

	flags := data[1]
	li.TrackCreationOrder = flags&0x01 != 0
	li.IndexCreationOrder = flags&0x02 != 0

	offset := 2
	if li.TrackCreationOrder {
		if offset+8 > len(data) {
			return nil, fmt.Errorf("%w: link info max creation index truncated", ErrMalformed)
		}
		li.MaxCreationIndex = decodeUint(data[offset:offset+8], 8, r.ByteOrder())
		offset += 8
	}

	offsetSize := r.OffsetSize()

	if offset+offsetSize > len(data) {
		return nil, fmt.Errorf("%w: link info fractal heap address truncated", ErrMalformed)
	}
	li.FractalHeapAddress = decodeUint(data[offset:], offsetSize, r.ByteOrder())
	offset += offsetSize

	if offset+offsetSize > len(data) {
		return nil, fmt.Errorf("%w: link info name index address truncated", ErrMalformed)
	}
	li.NameIndexBTreeAddress = decodeUint(data[offset:], offsetSize, r.ByteOrder())
	offset += offsetSize

	if li.IndexCreationOrder {
		if offset+offsetSize > len(data) {
			return nil, fmt.Errorf("%w: link info order index address truncated", ErrMalformed)
		}
		li.OrderIndexBTreeAddress = decodeUint(data[offset:], offsetSize, r.ByteOrder())
		offset += offsetSize
	}

	return li, nil
}

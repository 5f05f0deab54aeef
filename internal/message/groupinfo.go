package message

import (
	"fmt"

	binpkg "github.com/hdf5ro/hdf5/internal/binary"
)

// GroupInfo represents a group-info message (type 0x000A): hints about a
// group's expected size, used by HDF5 to decide between compact and dense
// link storage. Decoded opportunistically whenever present; nothing in
// this reader's traversal depends on its values.
type GroupInfo struct {
	Version            uint8
	MaxCompactLinks    uint16 // valid only if flags bit 0 set
	MinDenseLinks      uint16 // valid only if flags bit 0 set
	EstimatedNumLinks  uint16 // valid only if flags bit 1 set
	EstimatedLinkNameLen uint16
}

func (m *GroupInfo) Type() Type { return TypeGroupInfo }

func parseGroupInfo(data []byte, r *binpkg.Reader) (*GroupInfo, error) {
	_ = r
	if len(data) < 2 {
		return nil, fmt.Errorf("%w: group info message too short", ErrMalformed)
	}

	gi := &GroupInfo{
		Version: data[0],
	}
	flags := data[1]
	offset := 2

	if flags&0x01 != 0 {
		if offset+4 > len(data) {
			return nil, fmt.Errorf("%w: group info link-count hints truncated", ErrMalformed)
		}
		gi.MaxCompactLinks = uint16(data[offset]) | uint16(data[offset+1])<<8
		gi.MinDenseLinks = uint16(data[offset+2]) | uint16(data[offset+3])<<8
		offset += 4
	}

	if flags&0x02 != 0 {
		if offset+4 > len(data) {
			return nil, fmt.Errorf("%w: group info estimate hints truncated", ErrMalformed)
		}
		gi.EstimatedNumLinks = uint16(data[offset]) | uint16(data[offset+1])<<8
		gi.EstimatedLinkNameLen = uint16(data[offset+2]) | uint16(data[offset+3])<<8
		offset += 4
	}

	return gi, nil
}

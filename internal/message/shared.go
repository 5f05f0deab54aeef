package message

import (
	"fmt"

	binpkg "github.com/hdf5ro/hdf5/internal/binary"
)

// Shared represents a shared-message reference: rather than storing a
// message's payload inline, the object header stores a pointer (version,
// type, address) to the message's actual encoding elsewhere in the file.
//
// Dereferencing a shared message is not performed automatically during
// object-header decoding — it is exposed only as an on-demand accessor via
// Resolve, per this reader's narrower, non-eager link/message model.
type Shared struct {
	Version     uint8
	MessageType Type
	Address     uint64
}

func (m *Shared) Type() Type { return m.MessageType }

func parseShared(data []byte, r *binpkg.Reader, nominalType Type) (*Shared, error) {
	if len(data) < 2 {
		return nil, fmt.Errorf("%w: shared message too short", ErrMalformed)
	}

	s := &Shared{
		Version:     data[0],
		MessageType: nominalType,
	}

	// Version 1 has 6 reserved bytes before the address; version 2/3 place
	// the address immediately after the version/type bytes.
	offset := 2
	if s.Version == 1 {
		offset = 8
	}

	offsetSize := r.OffsetSize()
	if offset+offsetSize > len(data) {
		return nil, fmt.Errorf("%w: shared message address truncated", ErrMalformed)
	}
	s.Address = decodeUint(data[offset:], offsetSize, r.ByteOrder())

	return s, nil
}

// Resolve seeks to the shared message's address and decodes the real
// message stored there, using its nominal type to pick the right decoder.
func (m *Shared) Resolve(r *binpkg.Reader) (Message, error) {
	sr := r.At(int64(m.Address))

	// A message stored at a shared-message address is encoded the same way
	// as an inline message body: no header/flags wrapper, just the raw
	// payload for its type. Since payload length isn't recorded in the
	// Shared tuple, callers that need exact bounds should instead read the
	// surrounding object header directly; here we decode greedily against
	// the remainder of the reader's underlying source.
	data, err := sr.ReadBytes(unresolvedPayloadGuess)
	if err != nil {
		return nil, fmt.Errorf("reading shared message payload at %d: %w", m.Address, err)
	}
	return Parse(m.MessageType, data, 0, r)
}

// unresolvedPayloadGuess bounds how much trailing data Resolve reads when
// dereferencing a shared message outside of its enclosing object header.
const unresolvedPayloadGuess = 4096

package message

import (
	"encoding/binary"
	"fmt"
	"time"

	binpkg "github.com/hdf5ro/hdf5/internal/binary"
)

// ObjectModTime represents an object modification time message, either the
// legacy human-readable form (type 0x0012, a 14-byte ASCII timestamp) or
// the compact v2 form (type 0x000E, a little-endian Unix timestamp).
type ObjectModTime struct {
	legacy bool
	when   time.Time
}

func (m *ObjectModTime) Type() Type {
	if m.legacy {
		return TypeObjectModTimeOld
	}
	return TypeObjectModTime
}

// Time returns the decoded modification time.
func (m *ObjectModTime) Time() time.Time { return m.when }

func parseObjectModTime(typ Type, data []byte, r *binpkg.Reader) (*ObjectModTime, error) {
	if typ == TypeObjectModTimeOld {
		// Legacy format: "YYYYMMDDHHMMSS" ASCII, no version byte.
		if len(data) < 14 {
			return nil, fmt.Errorf("%w: legacy object mod time message too short", ErrMalformed)
		}
		t, err := time.Parse("20060102150405", string(data[:14]))
		if err != nil {
			return nil, fmt.Errorf("parsing legacy object mod time: %w", err)
		}
		return &ObjectModTime{legacy: true, when: t}, nil
	}

	// Version 1: version byte + 3 reserved bytes + 4-byte Unix timestamp.
	if len(data) < 8 {
		return nil, fmt.Errorf("%w: object mod time message too short", ErrMalformed)
	}
	seconds := binary.LittleEndian.Uint32(data[4:8])
	return &ObjectModTime{when: time.Unix(int64(seconds), 0).UTC()}, nil
}

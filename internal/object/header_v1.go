package object

import (
	"fmt"

	"github.com/hdf5ro/hdf5/internal/binary"
)

// readV1 handles the version 1 object header prefix. Version 1 object
// headers are only reachable through a v0/v1 superblock's root-group
// symbol-table entry, which this reader does not resolve, so detecting
// one here always means the caller asked for something out of scope.
func readV1(r *binary.Reader, address uint64) (*Header, error) {
	version, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	if version != 1 {
		return nil, fmt.Errorf("%w: expected version 1, got %d", ErrUnsupportedVersion, version)
	}
	return nil, fmt.Errorf("%w: v1 object header at address %d", ErrUnsupportedVersion, address)
}

package message

import (
	"fmt"

	binpkg "github.com/hdf5ro/hdf5/internal/binary"
)

// SymbolTable represents a symbol table message (type 0x0011), the legacy
// group-membership pointer pair (B-tree + local heap). It appears only in
// version-1 object headers, which this reader rejects, so the message is
// decoded for completeness but never drives traversal.
type SymbolTable struct {
	BTreeAddress    uint64 // Address of B-tree for group members
	LocalHeapAddress uint64 // Address of local heap for member names
}

func (m *SymbolTable) Type() Type { return TypeSymbolTable }

func parseSymbolTable(data []byte, r *binpkg.Reader) (*SymbolTable, error) {
	offsetSize := r.OffsetSize()

	if len(data) < 2*offsetSize {
		return nil, fmt.Errorf("%w: symbol table message too short", ErrMalformed)
	}

	return &SymbolTable{
		BTreeAddress:     decodeUint(data[0:offsetSize], offsetSize, r.ByteOrder()),
		LocalHeapAddress: decodeUint(data[offsetSize:2*offsetSize], offsetSize, r.ByteOrder()),
	}, nil
}

// Package btree implements HDF5 B-tree structures.
package btree

import (
	"errors"
	"fmt"

	"github.com/hdf5ro/hdf5/internal/binary"
)

// GroupEntry represents an entry in a v1 group B-tree.
//
// Retained as a distinct type from ChunkEntry even though this reader
// never populates it: v1 symbol-table groups require a local heap to
// resolve member names, and v1 object headers (the only place a v1
// group's symbol table message appears) are rejected outright, so full
// traversal is unreachable. ReadGroupEntries still distinguishes
// node_type so a misrouted chunk B-tree doesn't get silently misparsed
// as a group index.
type GroupEntry struct {
	Name          string
	ObjectAddress uint64
	LinkType      uint32 // 0=hard link, 1=soft link, 2=external (unsupported)
	SoftLinkValue string
}

// ErrV1GroupsUnsupported is returned for a v1 (symbol-table) group B-tree:
// resolving its entries requires a local heap, which this reader does not
// implement since v1 object headers are rejected before this path is ever
// reached in practice.
var ErrV1GroupsUnsupported = errors.New("btree: v1 symbol-table groups are not supported")

// ReadGroupEntries reads the node_type byte of the B-tree at btreeAddr and,
// if it identifies a group (symbol-table) index, returns
// ErrV1GroupsUnsupported rather than attempting local-heap-dependent
// traversal.
func ReadGroupEntries(r *binary.Reader, btreeAddr uint64) ([]GroupEntry, error) {
	nr := r.At(int64(btreeAddr))

	sig, err := nr.ReadBytes(4)
	if err != nil {
		return nil, fmt.Errorf("reading btree signature: %w", err)
	}
	if string(sig) != "TREE" {
		return nil, fmt.Errorf("%w: signature %q, expected \"TREE\"", ErrMalformedNode, string(sig))
	}

	nodeType, err := nr.ReadUint8()
	if err != nil {
		return nil, err
	}
	if nodeType != 0 {
		return nil, fmt.Errorf("%w: unexpected B-tree node type: %d (expected 0 for group)", ErrWrongNodeType, nodeType)
	}

	return nil, ErrV1GroupsUnsupported
}

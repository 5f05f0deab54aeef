package btree

import (
	"errors"
	"fmt"

	"github.com/hdf5ro/hdf5/internal/binary"
)

// undefinedAddress is the v1 B-tree sentinel for "no sibling/address".
const undefinedAddress uint64 = 0xFFFFFFFFFFFFFFFF

// ErrWrongNodeType is returned when a B-tree node's node_type does not match
// the kind of index being read (1 = chunk, 0 = group symbol table).
var ErrWrongNodeType = errors.New("btree: unexpected node type")

// ErrMalformedNode is returned when a node fails a structural check, such
// as a missing TREE signature.
var ErrMalformedNode = errors.New("btree: malformed node")

// ChunkEntry represents a chunk in the B-tree index.
type ChunkEntry struct {
	// Offset contains the chunk coordinates in dataset element space.
	// For a 2D dataset with chunks [10,10], chunk at offset [20,30]
	// covers elements [20:30, 30:40].
	Offset []uint64

	// FilterMask indicates which filters were disabled for this chunk.
	// Bit i = 1 means filter i was skipped.
	FilterMask uint32

	// Size is the size of the chunk data on disk (possibly compressed).
	Size uint32

	// Address is the file offset where chunk data is stored.
	Address uint64
}

// ChunkIndex contains all chunks for a dataset.
type ChunkIndex struct {
	// NDims is the number of dataset dimensions (not including the extra +1
	// slot that chunk B-tree keys carry).
	NDims int

	// Entries contains all chunk entries, in B-tree in-order traversal order.
	Entries []ChunkEntry
}

// ReadChunkIndex reads a v1 B-tree chunk index rooted at btreeAddr.
// ndims is the number of dataset dimensions (not including the +1 used in
// B-tree keys for the trailing element slot).
func ReadChunkIndex(r *binary.Reader, btreeAddr uint64, ndims int) (*ChunkIndex, error) {
	v := &chunkVisitor{r: r, ndims: ndims, visited: make(map[uint64]bool)}

	// The root is visited through the same chain walk as any other node,
	// so a root that has acquired right siblings is still fully read.
	if err := v.visitChain(btreeAddr); err != nil {
		return nil, err
	}

	return &ChunkIndex{NDims: ndims, Entries: v.entries}, nil
}

type chunkVisitor struct {
	r       *binary.Reader
	ndims   int
	visited map[uint64]bool
	entries []ChunkEntry
}

// visit implements the recursive descent plus right-sibling walk described
// for chunk B-tree traversal: every child is visited, and at each level the
// right-sibling chain is additionally followed to pick up nodes a corrupt
// or unusual entry list might not otherwise reach. Node addresses are
// deduplicated so a sibling chain that loops back to an already-visited
// node cannot cause repeated work.
func (v *chunkVisitor) visit(node *chunkNode) error {
	if node.level == 0 {
		v.entries = append(v.entries, node.leafEntries...)
		return nil
	}

	for _, addr := range node.childAddrs {
		if err := v.visitChain(addr); err != nil {
			return err
		}
	}
	return nil
}

// visitChain visits the node at addr and then walks its right-sibling chain,
// skipping any address already visited in this traversal.
func (v *chunkVisitor) visitChain(addr uint64) error {
	for addr != undefinedAddress {
		if v.visited[addr] {
			return nil
		}
		v.visited[addr] = true

		child, err := readChunkNode(v.r, addr, v.ndims)
		if err != nil {
			return err
		}
		if err := v.visit(child); err != nil {
			return err
		}

		addr = child.rightSibling
	}
	return nil
}

// chunkNode is one parsed v1 B-tree node for chunked storage.
type chunkNode struct {
	level        uint8
	rightSibling uint64

	// Populated for level > 0: addresses of this node's children.
	childAddrs []uint64

	// Populated for level == 0: the chunk entries stored in this leaf.
	leafEntries []ChunkEntry
}

// readChunkNode reads and parses a single v1 B-tree node for chunk storage
// (node_type = 1) at address, without recursing into children.
func readChunkNode(r *binary.Reader, address uint64, ndims int) (*chunkNode, error) {
	nr := r.At(int64(address))

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
	if nodeType != 1 {
		return nil, fmt.Errorf("%w: unexpected B-tree node type: got %d, expected 1 (chunk)", ErrWrongNodeType, nodeType)
	}

	nodeLevel, err := nr.ReadUint8()
	if err != nil {
		return nil, err
	}

	entriesUsed, err := nr.ReadUint16()
	if err != nil {
		return nil, err
	}

	// address_left is only meaningful for a left-to-right linear scan; this
	// reader walks exclusively via address_right per the traversal above.
	if _, err := nr.ReadOffset(); err != nil {
		return nil, err
	}
	rightSibling, err := nr.ReadOffset()
	if err != nil {
		return nil, err
	}

	node := &chunkNode{level: nodeLevel, rightSibling: rightSibling}

	for i := uint16(0); i < entriesUsed; i++ {
		chunkSize, err := nr.ReadUint32()
		if err != nil {
			return nil, fmt.Errorf("reading chunk size: %w", err)
		}
		filterMask, err := nr.ReadUint32()
		if err != nil {
			return nil, fmt.Errorf("reading filter mask: %w", err)
		}

		// Chunk-origin coordinates plus one trailing element-size slot.
		offsets := make([]uint64, ndims+1)
		for j := 0; j <= ndims; j++ {
			offsets[j], err = nr.ReadUint64()
			if err != nil {
				return nil, fmt.Errorf("reading chunk offset %d: %w", j, err)
			}
		}

		childAddr, err := nr.ReadOffset()
		if err != nil {
			return nil, fmt.Errorf("reading child pointer: %w", err)
		}

		if nodeLevel == 0 {
			if childAddr != undefinedAddress && chunkSize > 0 {
				node.leafEntries = append(node.leafEntries, ChunkEntry{
					Offset:     offsets[:ndims],
					FilterMask: filterMask,
					Size:       chunkSize,
					Address:    childAddr,
				})
			}
		} else {
			node.childAddrs = append(node.childAddrs, childAddr)
		}
	}

	// Trailing key_n: bounds the last child but carries no entry of its own.
	if entriesUsed > 0 {
		if _, err := nr.ReadUint32(); err != nil {
			return nil, err
		}
		if _, err := nr.ReadUint32(); err != nil {
			return nil, err
		}
		for j := 0; j <= ndims; j++ {
			if _, err := nr.ReadUint64(); err != nil {
				return nil, err
			}
		}
	}

	return node, nil
}

// FindChunk finds the chunk entry that contains the given offset.
// Returns nil if no chunk contains the offset.
func (idx *ChunkIndex) FindChunk(offset []uint64, chunkDims []uint32) *ChunkEntry {
	for i := range idx.Entries {
		entry := &idx.Entries[i]
		match := true
		for d := 0; d < len(offset) && d < len(entry.Offset); d++ {
			chunkStart := entry.Offset[d]
			chunkEnd := chunkStart + uint64(chunkDims[d])
			if offset[d] < chunkStart || offset[d] >= chunkEnd {
				match = false
				break
			}
		}
		if match {
			return entry
		}
	}
	return nil
}

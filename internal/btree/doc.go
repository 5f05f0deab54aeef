// Package btree implements the v1 B-tree structures used for chunked
// dataset storage, plus enough of the group (symbol-table) B-tree to
// recognize and reject it.
//
// # B-tree Versions
//
// HDF5 defines two B-tree versions. This package implements only the v1
// form (signature "TREE"): the v2 form (signature "BTHD", used for
// fixed/extensible-array and v2-B-tree chunk indices in data layout
// version 4) is out of scope.
//
// # Chunk Indexing
//
//   - [ReadChunkIndex] reads a v1 B-tree chunk index, following both child
//     pointers and the right-sibling chain at each level
//   - [ChunkEntry] contains the chunk offset, address, size, and filter mask
//   - [ChunkIndex] provides a FindChunk method for coordinate-based lookup
//
// # Group Indexing
//
// v0/v1 superblock files index group members with a B-tree + local-heap
// combination. Since v1 object headers (the only place a v1 group's
// symbol-table message can appear) are rejected outright, full traversal
// is unreachable; [ReadGroupEntries] only distinguishes node_type so a
// misrouted chunk B-tree isn't silently misparsed as a group index.
//
// # Key Types
//
//   - [ChunkEntry]: a single chunk with its file address and metadata
//   - [ChunkIndex]: collection of chunk entries with lookup capability
//   - [GroupEntry]: a group member (name, address, link type) — unpopulated
package btree

// Package layout provides storage layout handlers for reading HDF5 dataset data.
//
// HDF5 datasets store their raw bytes using one of three storage layout
// classes; this package exposes a unified [Layout] interface over them.
//
// # Storage Layouts
//
//   - Compact (class 0): data embedded directly in the data-layout message
//     inside the object header. Implemented by [Compact].
//
//   - Contiguous (class 1): data in a single contiguous byte range
//     [address, address+size). Implemented by [Contiguous].
//
//   - Chunked (class 2): data split into fixed-shape tiles indexed by a v1
//     B-tree keyed on chunk coordinates, each tile independently passed
//     through the filter pipeline. Implemented by [Chunked]. The v4 chunk
//     index formats (fixed array, extensible array, v2 B-tree) are not
//     supported.
//
// # Reading Data
//
// Use [New] to create the appropriate layout handler:
//
//	layout, err := layout.New(layoutMsg, dataspaceMsg, datatypeMsg, filterPipelineMsg, reader)
//	data, err := layout.Read()
//
// For chunked storage, Read returns the decoded chunks concatenated in the
// B-tree's in-order traversal order; within each chunk, elements follow the
// datatype's byte representation in row-major order. Each chunk's filter
// mask selects which pipeline filters apply to that chunk alone.
package layout

// Package layout provides storage layout handlers for reading HDF5 dataset data.
package layout

import (
	"fmt"

	"github.com/hdf5ro/hdf5/internal/binary"
	"github.com/hdf5ro/hdf5/internal/btree"
	"github.com/hdf5ro/hdf5/internal/filter"
	"github.com/hdf5ro/hdf5/internal/message"
)

// Layout is the interface for reading dataset data from the storage classes.
type Layout interface {
	// Read reads all data from the layout.
	Read() ([]byte, error)

	// Class returns the layout class.
	Class() message.LayoutClass
}

// New creates a Layout from a DataLayout message.
func New(
	layout *message.DataLayout,
	dataspace *message.Dataspace,
	datatype *message.Datatype,
	filterPipeline *message.FilterPipeline,
	reader *binary.Reader,
) (Layout, error) {
	if layout == nil {
		return nil, fmt.Errorf("nil layout message")
	}

	switch layout.Class {
	case message.LayoutCompact:
		return NewCompact(layout), nil

	case message.LayoutContiguous:
		return NewContiguous(layout, dataspace, datatype, reader), nil

	case message.LayoutChunked:
		return NewChunked(layout, dataspace, datatype, filterPipeline, reader)

	default:
		return nil, fmt.Errorf("unsupported layout class: %d", layout.Class)
	}
}

// calculateDataSize calculates the total size of data in bytes.
func calculateDataSize(dataspace *message.Dataspace, datatype *message.Datatype) uint64 {
	if dataspace == nil || datatype == nil {
		return 0
	}
	return dataspace.NumElements() * uint64(datatype.Size)
}

// Chunked represents chunked storage: dataset bytes live in fixed-shape
// tiles indexed by a v1 B-tree keyed on chunk coordinates.
type Chunked struct {
	layout    *message.DataLayout
	dataspace *message.Dataspace
	datatype  *message.Datatype
	pipeline  *filter.Pipeline
	reader    *binary.Reader
}

// NewChunked creates a new chunked layout handler. The filter pipeline is
// constructed up front so an unsupported required filter surfaces at
// dataset-open time, not mid-read.
func NewChunked(
	layout *message.DataLayout,
	dataspace *message.Dataspace,
	datatype *message.Datatype,
	filterPipeline *message.FilterPipeline,
	reader *binary.Reader,
) (*Chunked, error) {
	var pipeline *filter.Pipeline
	var err error
	if filterPipeline != nil {
		pipeline, err = filter.NewPipeline(filterPipeline)
		if err != nil {
			return nil, fmt.Errorf("creating filter pipeline: %w", err)
		}
	}

	return &Chunked{
		layout:    layout,
		dataspace: dataspace,
		datatype:  datatype,
		pipeline:  pipeline,
		reader:    reader,
	}, nil
}

func (c *Chunked) Class() message.LayoutClass {
	return message.LayoutChunked
}

// Read walks the chunk B-tree and returns the decoded chunks concatenated
// in the tree's in-order traversal order. Within each chunk, elements
// follow the datatype's byte representation in row-major order.
func (c *Chunked) Read() ([]byte, error) {
	dims := c.dataspace.Dimensions
	if len(dims) == 0 {
		dims = []uint64{1}
	}

	if len(c.layout.ChunkDims) == 0 {
		return nil, fmt.Errorf("chunked layout has no chunk dimensions")
	}

	if c.reader.IsUndefinedOffset(c.layout.ChunkIndexAddr) {
		// No chunks were ever allocated.
		return nil, nil
	}

	chunkIndex, err := btree.ReadChunkIndex(c.reader, c.layout.ChunkIndexAddr, len(dims))
	if err != nil {
		return nil, fmt.Errorf("reading chunk index: %w", err)
	}

	elemSize := uint64(c.datatype.Size)
	output := make([]byte, 0, calculateDataSize(c.dataspace, c.datatype))

	for _, entry := range chunkIndex.Entries {
		chunkData, err := c.readChunkData(entry)
		if err != nil {
			return nil, fmt.Errorf("reading chunk at offset %v: %w", entry.Offset, err)
		}

		if c.pipeline != nil && !c.pipeline.Empty() {
			chunkData, err = c.pipeline.Decode(chunkData, entry.FilterMask)
			if err != nil {
				return nil, fmt.Errorf("decoding chunk at offset %v: %w", entry.Offset, err)
			}
		}

		if elemSize > 0 && uint64(len(chunkData))%elemSize != 0 {
			return nil, fmt.Errorf("chunk at offset %v: %d decoded bytes is not a multiple of element size %d",
				entry.Offset, len(chunkData), elemSize)
		}

		output = append(output, chunkData...)
	}

	return output, nil
}

// readChunkData reads the raw (possibly compressed) chunk bytes from disk.
func (c *Chunked) readChunkData(entry btree.ChunkEntry) ([]byte, error) {
	if entry.Address == 0 || c.reader.IsUndefinedOffset(entry.Address) {
		return nil, fmt.Errorf("invalid chunk address")
	}

	nr := c.reader.At(int64(entry.Address))
	return nr.ReadBytes(int(entry.Size))
}

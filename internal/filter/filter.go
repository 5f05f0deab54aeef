package filter

import (
	"errors"
	"fmt"

	"github.com/hdf5ro/hdf5/internal/message"
)

// ErrUnsupportedFilter is returned when the pipeline names a non-optional
// filter with no registered decoder.
var ErrUnsupportedFilter = errors.New("unsupported filter")

// Filter is the interface implemented by all HDF5 filters.
type Filter interface {
	// ID returns the filter identifier.
	ID() uint16

	// Decode transforms encoded data to decoded form.
	Decode(input []byte) ([]byte, error)
}

// Registry maps filter IDs to filter constructors. Callers may register
// additional decoders before opening files.
var Registry = map[uint16]func([]uint32) Filter{
	message.FilterDeflate:    func(cd []uint32) Filter { return NewDeflate(cd) },
	message.FilterShuffle:    func(cd []uint32) Filter { return NewShuffle(cd) },
	message.FilterFletcher32: func(cd []uint32) Filter { return NewFletcher32(cd) },
}

// filterNames maps known filter IDs to their names for better error messages.
var filterNames = map[uint16]string{
	message.FilterDeflate:     "deflate/gzip",
	message.FilterShuffle:     "shuffle",
	message.FilterFletcher32:  "Fletcher32",
	message.FilterSZIP:        "SZIP",
	message.FilterNBit:        "N-bit",
	message.FilterScaleOffset: "scale-offset",
}

// New creates a filter from a FilterInfo. An unregistered filter marked
// optional yields (nil, nil) and is simply skipped by the pipeline; an
// unregistered required filter is an error.
func New(info message.FilterInfo) (Filter, error) {
	constructor, ok := Registry[info.ID]
	if !ok {
		if info.IsOptional() {
			return nil, nil
		}
		if name, known := filterNames[info.ID]; known {
			return nil, fmt.Errorf("%w: %s (ID %d)", ErrUnsupportedFilter, name, info.ID)
		}
		return nil, fmt.Errorf("%w: ID %d", ErrUnsupportedFilter, info.ID)
	}
	return constructor(info.ClientData), nil
}

package filter

import (
	"fmt"

	"github.com/hdf5ro/hdf5/internal/message"
)

// Pipeline holds the instantiated decoders for one dataset's filter
// pipeline, in the message's stored order.
type Pipeline struct {
	filters []Filter
	// indices holds each entry's position in the message, which is the
	// bit a chunk's filter mask uses for it.
	indices []int
}

// NewPipeline creates a filter pipeline from a FilterPipeline message.
// Optional filters with no registered decoder are dropped here; required
// ones fail construction.
func NewPipeline(fp *message.FilterPipeline) (*Pipeline, error) {
	if fp == nil || len(fp.Filters) == 0 {
		return &Pipeline{}, nil
	}

	p := &Pipeline{
		filters: make([]Filter, 0, len(fp.Filters)),
	}

	for i, info := range fp.Filters {
		f, err := New(info)
		if err != nil {
			return nil, fmt.Errorf("creating filter %d: %w", info.ID, err)
		}
		if f != nil {
			p.filters = append(p.filters, f)
			p.indices = append(p.indices, i)
		}
	}

	return p, nil
}

// Decode applies the filter pipeline to one chunk's stored bytes. Filters
// run in reverse of stored order (compression was applied last when
// writing, so it is undone first). filterMask bit i suppresses filter i,
// in stored order, for this chunk alone.
func (p *Pipeline) Decode(input []byte, filterMask uint32) ([]byte, error) {
	if len(p.filters) == 0 {
		return input, nil
	}

	data := input

	for i := len(p.filters) - 1; i >= 0; i-- {
		if filterMask&(1<<uint(p.indices[i])) != 0 {
			continue
		}

		var err error
		data, err = p.filters[i].Decode(data)
		if err != nil {
			return nil, fmt.Errorf("filter %d decode: %w", p.filters[i].ID(), err)
		}
	}

	return data, nil
}

// Empty returns true if the pipeline has no filters.
func (p *Pipeline) Empty() bool {
	return len(p.filters) == 0
}

// Len returns the number of filters in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.filters)
}

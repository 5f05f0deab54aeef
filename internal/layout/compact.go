package layout

import (
	"github.com/hdf5ro/hdf5/internal/message"
)

// Compact represents compact storage layout: the dataset's raw bytes are
// embedded directly in the data-layout message, so reading never touches
// the file again.
type Compact struct {
	data []byte
}

// NewCompact creates a compact layout handler over the bytes captured from
// the layout message.
func NewCompact(layout *message.DataLayout) *Compact {
	return &Compact{data: layout.CompactData}
}

func (c *Compact) Class() message.LayoutClass {
	return message.LayoutCompact
}

// Read returns a copy of the embedded data.
func (c *Compact) Read() ([]byte, error) {
	result := make([]byte, len(c.data))
	copy(result, c.data)
	return result, nil
}

// Size returns the size of the compact data in bytes.
func (c *Compact) Size() int {
	return len(c.data)
}

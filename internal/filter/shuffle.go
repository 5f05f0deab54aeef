package filter

import (
	"github.com/hdf5ro/hdf5/internal/message"
)

// Shuffle implements the byte shuffle filter (ID 2). Writers rearrange
// element bytes so that matching byte positions are grouped together,
// which compresses better; Decode undoes the rearrangement.
type Shuffle struct {
	elemSize int
}

// NewShuffle creates a new shuffle filter.
// Client data: [0] = element size in bytes
func NewShuffle(clientData []uint32) *Shuffle {
	elemSize := 1
	if len(clientData) > 0 && clientData[0] > 0 {
		elemSize = int(clientData[0])
	}
	return &Shuffle{elemSize: elemSize}
}

func (f *Shuffle) ID() uint16 {
	return message.FilterShuffle
}

// Decode reverses the shuffle: input holds [all byte 0s][all byte 1s]...,
// output holds whole elements back to back.
func (f *Shuffle) Decode(input []byte) ([]byte, error) {
	if f.elemSize <= 1 {
		return input, nil
	}

	numBytes := len(input)
	numElems := numBytes / f.elemSize

	if numElems == 0 {
		return input, nil
	}

	output := make([]byte, numBytes)

	// Byte j of element i sits at offset j*numElems+i in shuffled form.
	for i := 0; i < numElems; i++ {
		for j := 0; j < f.elemSize; j++ {
			output[i*f.elemSize+j] = input[j*numElems+i]
		}
	}

	return output, nil
}

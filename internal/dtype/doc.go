// Package dtype converts raw HDF5 dataset/attribute bytes to Go values.
//
// Message-level datatype decoding (package message) understands every HDF5
// datatype class, but this package's data-assembly path is narrower: only
// fixed-point and floating-point scalars are converted. Every other class
// (string, compound, array, enum, bitfield, opaque, variable-length) is a
// valid datatype message but returns [ErrUnsupportedDatatype] the moment
// [Convert] or [GoType] is called on it.
//
// # Type Mapping
//
//	HDF5 Class        | Go Type
//	------------------|------------------
//	Fixed-point (int)  | int8/16/32/64 or uint8/16/32/64 based on size and signedness
//	Floating-point     | float32 (4 bytes) or float64 (8 bytes)
//
// # Reading Data
//
//	var values []float64
//	err := dtype.Convert(datatype, rawBytes, numElements, &values)
//
// # Key Functions
//
//   - [GoType]: returns the reflect.Type for a fixed-point/float-point datatype
//   - [Convert]: converts raw bytes to Go values
//   - [ByteOrder]: returns the binary.ByteOrder for a datatype
//   - [ElementSize]: returns the size of a single element in bytes
package dtype

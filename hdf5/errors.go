// Package hdf5 provides a pure Go implementation for reading HDF5 files.
package hdf5

import (
	"errors"

	"github.com/hdf5ro/hdf5/internal/btree"
	"github.com/hdf5ro/hdf5/internal/dtype"
	"github.com/hdf5ro/hdf5/internal/filter"
	"github.com/hdf5ro/hdf5/internal/message"
	"github.com/hdf5ro/hdf5/internal/object"
	"github.com/hdf5ro/hdf5/internal/superblock"
)

// Error kinds surfaced by the public API. Decode errors returned from this
// package wrap one of these sentinels (plus whatever lower-level detail
// produced it), so callers can dispatch with errors.Is. An error that maps
// to none of the kinds, such as a plain I/O error from the underlying file,
// is returned unwrapped.
var (
	// ErrNotHDF5 means the HDF5 signature was not found at any candidate
	// superblock offset.
	ErrNotHDF5 = errors.New("not an HDF5 file")

	// ErrUnsupportedVersion means a versioned structure (superblock,
	// object-header prefix, data layout, fill value) was encountered at a
	// version this reader does not implement.
	ErrUnsupportedVersion = errors.New("unsupported format version")

	// ErrChecksumMismatch means a superblock or object-header checksum did
	// not verify.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrUnsupportedDatatype means data was read from a dataset or
	// attribute whose datatype class is outside fixed-point/floating-point.
	ErrUnsupportedDatatype = errors.New("unsupported datatype class")

	// ErrUnsupportedFilter means the filter pipeline names a non-optional
	// filter this reader has no decoder for.
	ErrUnsupportedFilter = errors.New("unsupported filter")

	// ErrUnsupportedLink means an external link was followed.
	ErrUnsupportedLink = errors.New("external links are not supported")

	// ErrMalformedStructure means a structural assertion failed: a wrong
	// magic value, a nonsensical count, or a truncated record.
	ErrMalformedStructure = errors.New("malformed structure")

	ErrNotFound    = errors.New("object not found")
	ErrNotDataset  = errors.New("object is not a dataset")
	ErrNotGroup    = errors.New("object is not a group")
	ErrInvalidPath = errors.New("invalid path")
	ErrClosed      = errors.New("file is closed")
	ErrLinkDepth   = errors.New("maximum link depth exceeded")

	// Specific not-found errors for different object types
	ErrDatasetNotFound   = errors.New("dataset not found")
	ErrGroupNotFound     = errors.New("group not found")
	ErrAttributeNotFound = errors.New("attribute not found")
)

// MaxLinkDepth is the maximum number of soft links that can be followed in
// a single path resolution. This prevents unbounded recursion from link
// cycles the visited-set check does not catch.
const MaxLinkDepth = 100

// kinds pairs each internal sentinel with the public kind it maps to.
var kinds = []struct {
	internal error
	public   error
}{
	{superblock.ErrNotHDF5, ErrNotHDF5},
	{superblock.ErrChecksumMismatch, ErrChecksumMismatch},
	{object.ErrChecksumMismatch, ErrChecksumMismatch},
	{superblock.ErrUnsupportedVersion, ErrUnsupportedVersion},
	{object.ErrUnsupportedVersion, ErrUnsupportedVersion},
	{message.ErrUnsupportedDataLayout, ErrUnsupportedVersion},
	{dtype.ErrUnsupportedDatatype, ErrUnsupportedDatatype},
	{filter.ErrUnsupportedFilter, ErrUnsupportedFilter},
	{superblock.ErrInvalidSuperblock, ErrMalformedStructure},
	{object.ErrInvalidHeader, ErrMalformedStructure},
	{message.ErrMalformed, ErrMalformedStructure},
	{btree.ErrMalformedNode, ErrMalformedStructure},
	{btree.ErrWrongNodeType, ErrMalformedStructure},
}

// classify wraps err with the public sentinel for its kind, so errors.Is
// works against this package's taxonomy without callers importing internal
// packages. Errors already carrying a public sentinel, and errors with no
// matching kind (I/O failures and the like), pass through unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}
	for _, k := range kinds {
		if errors.Is(err, k.public) {
			return err
		}
	}
	for _, k := range kinds {
		if errors.Is(err, k.internal) {
			return &kindError{kind: k.public, err: err}
		}
	}
	return err
}

// kindError attaches a public kind sentinel to an internal error chain.
type kindError struct {
	kind error
	err  error
}

func (e *kindError) Error() string { return e.err.Error() }

func (e *kindError) Unwrap() []error { return []error{e.kind, e.err} }

// Package object handles parsing of HDF5 object headers.
//
// Every HDF5 object (group or dataset) has an object header holding its
// metadata as a sequence of typed messages. This package decodes version-2
// headers (signature "OHDR"), including header-continuation blocks and the
// trailing lookup3 checksum, and rejects version-1 headers — those appear
// only behind v0/v1 superblocks, whose root groups this reader does not
// resolve.
//
// # Usage
//
// Read an object header at a known absolute address:
//
//	header, err := object.Read(reader, objectAddress)
//
// Access specific messages:
//
//	dataspace := header.Dataspace()
//	datatype := header.Datatype()
//	layout := header.DataLayout()
//	filterPipeline := header.FilterPipeline()
//
// Or use generic message access:
//
//	msg := header.GetMessage(message.TypeDataspace)
//	allAttrs := header.GetMessages(message.TypeAttribute)
//
// Hard-link targets are decoded on demand with [ReadLinkTarget], which
// seeks on a scoped cursor so the caller's position is never disturbed.
//
// # Errors
//
//   - [ErrInvalidHeader]: header format not recognized
//   - [ErrUnsupportedVersion]: version-1 header, or a bad version byte
//   - [ErrChecksumMismatch]: v2 checksum verification failed
package object

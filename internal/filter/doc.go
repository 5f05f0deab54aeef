// Package filter implements the HDF5 filter pipeline for data decompression.
//
// Chunked datasets pass their stored bytes through an ordered list of
// filters. When reading, the filters run in reverse of their stored order,
// and each chunk carries a 32-bit mask whose bit i suppresses filter i for
// that chunk alone.
//
// Implemented filters:
//
//   - DEFLATE (ID 1): inflation via github.com/klauspost/compress, accepting
//     both zlib and gzip framing.
//   - Shuffle (ID 2): byte unshuffling.
//   - Fletcher32 (ID 3): checksum verification.
//
// SZIP (ID 4), N-bit (ID 5) and scale-offset (ID 6) are recognized by name
// but have no decoder; a pipeline that requires one of them fails with
// [ErrUnsupportedFilter], while optional occurrences are skipped. The
// [Registry] maps filter IDs to constructors and may be extended.
package filter

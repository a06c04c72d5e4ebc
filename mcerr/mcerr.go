// Package mcerr defines the sentinel errors this library distinguishes:
// invalid world, end-of-data, unsupported compression. I/O failures carry no
// sentinel; callers wrap the os package's own error. Compound-tag decode failures are not wrapped in a
// sentinel here — spec.md requires they be surfaced "unchanged," so callers
// wrap the nbt package's own error with fmt.Errorf("...: %w", err).
package mcerr

import "errors"

// ErrInvalidWorld means a world directory is missing level.dat or region/.
var ErrInvalidWorld = errors.New("invalid world: missing level.dat or region directory")

// ErrEndOfData means a fixed-size header, length-prefixed payload, or packed
// long run was truncated.
var ErrEndOfData = errors.New("unexpected end of data")

// ErrUnsupportedCompression means a chunk's compression discriminator byte
// was not 1 (gzip), 2 (zlib), or 3 (uncompressed).
var ErrUnsupportedCompression = errors.New("unsupported compression type")

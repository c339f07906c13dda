package id3chapters

import (
	"github.com/simonhull/id3chapters/internal/types"
)

// Error kinds, usable with errors.Is on returned errors and Warning.Err.
var (
	ErrInvalidTagIdentifier         = types.ErrInvalidTagIdentifier
	ErrUnsupportedUnsynchronisation = types.ErrUnsupportedUnsynchronisation
	ErrUnsupportedVersion           = types.ErrUnsupportedVersion
	ErrTruncatedRead                = types.ErrTruncatedRead
	ErrFrameWalkOutOfBounds         = types.ErrFrameWalkOutOfBounds
	ErrUnknownTextEncoding          = types.ErrUnknownTextEncoding
	ErrNestedFrameOutOfBounds       = types.ErrNestedFrameOutOfBounds
	ErrSynchsafeOverflow            = types.ErrSynchsafeOverflow
)

// TruncatedReadError is an alias to types.TruncatedReadError.
// Re-exporting from internal/types to maintain public API.
type TruncatedReadError = types.TruncatedReadError

// OutOfBoundsError is an alias to types.OutOfBoundsError.
// Re-exporting from internal/types to maintain public API.
type OutOfBoundsError = types.OutOfBoundsError

// Warning is an alias to types.Warning.
// Re-exporting from internal/types to maintain public API.
type Warning = types.Warning

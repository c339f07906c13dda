package id3chapters

import (
	"github.com/simonhull/id3chapters/internal/types"
)

// TagHeader is an alias to types.TagHeader.
// Re-exporting from internal/types to maintain public API.
type TagHeader = types.TagHeader

// Version is an alias to types.Version.
type Version = types.Version

// TagFlags is an alias to types.TagFlags.
type TagFlags = types.TagFlags

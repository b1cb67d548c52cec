package render

import (
	"fmt"
	"io"
	"strings"
)

// CacheHumanData holds the data for human cache output.
type CacheHumanData struct {
	Path      string
	Exists    bool
	Prompted  bool
	SessionID string // may be empty
	UpdatedAt string // RFC3339, may be empty

	// Cached project data summary (may be zero values)
	PackageName string
	DefaultHost string
	Keywords    int
	Files       int
}

// WriteCacheHuman writes human-readable cache output.
func WriteCacheHuman(w io.Writer, data CacheHumanData) error {
	yesNo := func(b bool) string {
		if b {
			return "yes"
		}
		return "no"
	}

	var b strings.Builder
	b.WriteString("=== cache ===\n")
	fmt.Fprintf(&b, "path: %s\n", data.Path)
	fmt.Fprintf(&b, "exists: %s\n", yesNo(data.Exists))
	fmt.Fprintf(&b, "prompted: %s\n", yesNo(data.Prompted))
	if data.SessionID != "" {
		fmt.Fprintf(&b, "session_id: %s\n", data.SessionID)
	}
	if data.UpdatedAt != "" {
		fmt.Fprintf(&b, "updated_at: %s\n", data.UpdatedAt)
	}

	if data.PackageName != "" || data.DefaultHost != "" || data.Keywords > 0 || data.Files > 0 {
		b.WriteString("\n=== data ===\n")
		if data.PackageName != "" {
			fmt.Fprintf(&b, "package_name: %s\n", data.PackageName)
		}
		if data.DefaultHost != "" {
			fmt.Fprintf(&b, "default_host: %s\n", data.DefaultHost)
		}
		fmt.Fprintf(&b, "files: %d\n", data.Files)
		fmt.Fprintf(&b, "keywords: %d\n", data.Keywords)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Package render provides output formatting for swapgen commands.
package render

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/sirap-group/swapgen/internal/errors"
	"github.com/sirap-group/swapgen/internal/project"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// EncodeMetadata renders meta in the given format.
// JSON is indented with two spaces; both formats end with a newline.
// Returns E_USAGE for unknown formats.
func EncodeMetadata(meta project.Metadata, format string) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		data, err := json.MarshalIndent(meta, "", "  ")
		if err != nil {
			return nil, errors.Wrap(errors.EInternal, "failed to encode metadata as json", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(meta); err != nil {
			return nil, errors.Wrap(errors.EInternal, "failed to encode metadata as yaml", err)
		}
		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(errors.EInternal, "failed to encode metadata as yaml", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, errors.NewWithDetails(errors.EUsage, "unknown output format: "+format,
			map[string]string{"format": format})
	}
}

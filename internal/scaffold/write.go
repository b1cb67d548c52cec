package scaffold

import "github.com/sirap-group/swapgen/internal/fs"

// WriteResult tells whether a template was written.
type WriteResult string

const (
	Created     WriteResult = "created"
	Overwritten WriteResult = "overwritten"
	Skipped     WriteResult = "skipped"
)

// WriteTemplate writes content to path atomically, creating parent
// directories. An existing file is left alone unless force is set.
func WriteTemplate(fsys fs.FS, path, content string, force bool) (WriteResult, error) {
	exists, err := fs.Exists(fsys, path)
	if err != nil {
		return "", err
	}
	if exists && !force {
		return Skipped, nil
	}

	if err := fs.WriteFileMkdir(fsys, path, []byte(content), 0644); err != nil {
		return "", err
	}

	if exists {
		return Overwritten, nil
	}
	return Created, nil
}

package fs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// tempPattern names the temp files created next to the target during atomic writes.
const tempPattern = ".swapgen-tmp-*"

// WriteFileAtomic replaces path with data through a sibling temp file and a
// rename, so readers see either the old or the new content. On failure the
// temp file is removed and any existing file is left untouched. The parent
// directory must exist.
func WriteFileAtomic(fsys FS, path string, data []byte, perm os.FileMode) (err error) {
	tmp, w, err := fsys.CreateTemp(filepath.Dir(path), tempPattern)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = fsys.Remove(tmp)
		}
	}()

	_, err = w.Write(data)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	if err = fsys.Chmod(tmp, perm); err != nil {
		return err
	}
	return fsys.Rename(tmp, path)
}

// WriteFileMkdir creates the parent directories of path, then writes data
// with WriteFileAtomic.
func WriteFileMkdir(fsys FS, path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	return WriteFileAtomic(fsys, path, data, perm)
}

// WriteJSONAtomic writes v as two-space indented JSON ending in a newline.
func WriteJSONAtomic(fsys FS, path string, v any, perm os.FileMode) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return WriteFileAtomic(fsys, path, append(data, '\n'), perm)
}

package commands

import (
	"github.com/sirap-group/swapgen/internal/errors"
	"github.com/sirap-group/swapgen/internal/fs"
	"github.com/sirap-group/swapgen/internal/render"
)

// Cache implements the `swapgen cache` command.
// Prints the cache location, the prompted flag and a summary of cached data.
func Cache(env Env) error {
	st := env.store()

	exists, err := fs.Exists(env.FS, st.CachePath())
	if err != nil {
		return errors.Wrap(errors.EStoreCorrupt, "failed to stat cache.json", err)
	}
	c, err := st.LoadCache()
	if err != nil {
		return err
	}

	return render.WriteCacheHuman(env.Stdout, render.CacheHumanData{
		Path:        st.CachePath(),
		Exists:      exists,
		Prompted:    c.Prompted,
		SessionID:   c.SessionID,
		UpdatedAt:   c.UpdatedAt,
		PackageName: c.Data.PackageName,
		DefaultHost: c.Data.DefaultHost,
		Files:       len(c.Data.Files),
		Keywords:    len(c.Data.Keywords),
	})
}

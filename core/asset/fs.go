package asset

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
)

const indexFile = "index.html"

type fsLoader struct {
	fsys fs.FS
}

// FS serves assets from fsys. Directories resolve to their index.html and
// are never listed.
func FS(fsys fs.FS) Loader {
	return &fsLoader{fsys: fsys}
}

// Dir serves assets from a directory on the local filesystem.
// Panics at startup if root doesn't exist or isn't a directory.
func Dir(root string) Loader {
	info, err := os.Stat(root)
	if err != nil {
		panic(fmt.Sprintf("asset.Dir: %v", err))
	}
	if !info.IsDir() {
		panic(fmt.Sprintf("asset.Dir: path is not a directory: %s", root))
	}
	return FS(os.DirFS(root))
}

func (l *fsLoader) Load(ctx context.Context, name string) (*Asset, error) {
	clean, err := cleanName(name)
	if err != nil {
		return nil, err
	}

	f, info, err := l.open(clean)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		_ = f.Close()
		clean = path.Join(clean, indexFile)
		f, info, err = l.open(clean)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			_ = f.Close()
			return nil, ErrNotFound
		}
	}

	return &Asset{
		Name:        clean,
		Content:     f,
		Length:      info.Size(),
		ContentType: ContentType(clean),
		ModTime:     info.ModTime(),
	}, nil
}

func (l *fsLoader) open(name string) (fs.File, fs.FileInfo, error) {
	f, err := l.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		if errors.Is(err, fs.ErrInvalid) {
			return nil, nil, fmt.Errorf("%w: %s", ErrInvalidPath, name)
		}
		return nil, nil, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return f, info, nil
}

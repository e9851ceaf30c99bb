package dot

import (
	"bytes"
	"fmt"

	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/vfs"

	"github.com/mandelsoft/kgassert/pkg/graph"
	"github.com/mandelsoft/kgassert/pkg/utils"
)

// ReadFile reads a graph from a file of the given file system (the os
// file system if nil). Without an explicit id the file path is used.
func ReadFile(fs vfs.FileSystem, path string, id ...graph.Id) (*graph.Graph, error) {
	fs = utils.OptionalDefaulted(vfs.FileSystem(osfs.OsFs), fs)
	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := Parse(utils.OptionalDefaulted(graph.Id(path), id...), f)
	if err != nil {
		return nil, fmt.Errorf("cannot read graph %q: %w", path, err)
	}
	return g, nil
}

// WriteFile writes a graph description to a file of the given file system
// (the os file system if nil).
func WriteFile(fs vfs.FileSystem, path string, g *graph.Graph) error {
	fs = utils.OptionalDefaulted(vfs.FileSystem(osfs.OsFs), fs)
	var buf bytes.Buffer
	err := Render(g, &buf)
	if err != nil {
		return err
	}
	return vfs.WriteFile(fs, path, buf.Bytes(), 0o644)
}

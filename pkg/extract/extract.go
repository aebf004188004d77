// Package extract runs the whole conversion of a dump file into key files.
package extract

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gregLibert/mfc-keys/pkg/keyfile"
	"github.com/gregLibert/mfc-keys/pkg/mifare"
)

// ErrIO marks failures to read the dump or to write a key file.
var ErrIO = errors.New("i/o error")

// Options describes one conversion.
type Options struct {
	Input     string
	Format    keyfile.Format
	OutputDir string
}

// Result is what a successful Run decoded and wrote.
type Result struct {
	UID      mifare.UID
	Geometry mifare.Geometry
	Keys     mifare.KeySet
	Files    []string
}

// Run reads the dump, prints the key table to out, and writes the key files.
//
// The dump size is checked before anything is decoded or written. If writing
// fails part way, the files already written stay on disk and have been
// reported on out.
func Run(opts Options, out io.Writer) (*Result, error) {
	data, geometry, err := ReadDump(opts.Input)
	if err != nil {
		return nil, err
	}

	uid, keys, err := mifare.Decode(data, geometry)
	if err != nil {
		return nil, fmt.Errorf("decode '%s': %w", opts.Input, err)
	}

	fmt.Fprintln(out, keys.Describe(uid, geometry))
	fmt.Fprintln(out)

	bufs := keyfile.Encode(uid, keys, opts.Format)

	dir := opts.OutputDir
	if dir == "" {
		dir = "."
	}

	files, err := keyfile.WriteFiles(dir, bufs, func(path string) {
		fmt.Fprintf(out, "Wrote keys to: %s\n", path)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	return &Result{
		UID:      uid,
		Geometry: geometry,
		Keys:     keys,
		Files:    files,
	}, nil
}

// ReadDump loads a whole dump file after checking that its size matches a
// known card geometry.
func ReadDump(path string) ([]byte, mifare.Geometry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: can not open file '%s': %w", ErrIO, path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: can not stat file '%s': %w", ErrIO, path, err)
	}
	if info.IsDir() {
		return nil, 0, fmt.Errorf("%w: '%s' is a directory", ErrIO, path)
	}

	geometry, err := mifare.GeometryFromSize(int(info.Size()))
	if err != nil {
		return nil, 0, fmt.Errorf("file '%s' is not the correct size: %w", path, err)
	}

	data := make([]byte, geometry.Size())
	if _, err := io.ReadFull(f, data); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, 0, fmt.Errorf("read '%s': %w", path, mifare.ErrTruncatedRead)
		}
		return nil, 0, fmt.Errorf("%w: can not read file '%s': %w", ErrIO, path, err)
	}

	return data, geometry, nil
}

package keyfile

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFiles writes every buffer to dir, replacing existing files of the same
// name. It stops at the first failure; files written before it are left in
// place. onWritten, if not nil, is called with the path of each completed file.
func WriteFiles(dir string, bufs []NamedBuffer, onWritten func(path string)) ([]string, error) {
	var written []string

	for _, buf := range bufs {
		path := filepath.Join(dir, buf.Name)
		if err := writeFile(path, buf.Data); err != nil {
			return written, err
		}
		written = append(written, path)
		if onWritten != nil {
			onWritten(path)
		}
	}

	return written, nil
}

func writeFile(path string, data []byte) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("can not open file '%s' for writing: %w", path, err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("can not close file '%s': %w", path, cerr)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("can not write the file '%s': %w", path, err)
	}
	return nil
}

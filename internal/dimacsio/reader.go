package dimacsio

import (
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// openReader opens filename, transparently ungzipping it when gzipped is
// set or the name ends in .gz.
func openReader(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped || strings.HasSuffix(filename, ".gz") {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			file.Close()
			return nil, err
		}
	}
	return rc, nil
}

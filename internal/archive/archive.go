// Package archive packages raw crawled pages into a single zip file.
package archive

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zip"
)

// EntryName returns the archive entry name for the i-th page, counting from 1
func EntryName(i int) string {
	return fmt.Sprintf("%d.html", i)
}

// Write streams pages to w as a zip archive with entries 1.html, 2.html, ... in order
func Write(w io.Writer, pages []string) error {
	zw := zip.NewWriter(w)

	for i, page := range pages {
		name := EntryName(i + 1)
		entry, err := zw.Create(name)
		if err != nil {
			return fmt.Errorf("creating entry %s: %w", name, err)
		}
		if _, err := io.WriteString(entry, page); err != nil {
			return fmt.Errorf("writing entry %s: %w", name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("closing archive: %w", err)
	}
	return nil
}

// Build returns the archive for pages as a byte slice
func Build(pages []string) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, pages); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package classfiletest

import (
	"bytes"

	"github.com/klauspost/compress/zip"
)

// Entry is one file of a test archive.
type Entry struct {
	Name string
	Data []byte
}

// ClassEntry returns the archive entry of a built class, named after its internal name.
func ClassEntry(internalName string, b *Builder) Entry {
	return Entry{Name: internalName + ".class", Data: b.Bytes()}
}

// Jar serializes entries into a zip archive. A name ending with / is written as a
// directory entry.
func Jar(entries ...Entry) ([]byte, error) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, e := range entries {
		f, err := w.Create(e.Name)
		if err != nil {
			return nil, err
		}
		if _, err := f.Write(e.Data); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

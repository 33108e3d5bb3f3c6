package project

import (
	"archive/zip"
	"bytes"
)

// archiveWriter accumulates the generated files under a single root folder.
// Write errors are deferred to finish so the generation flow stays linear.
type archiveWriter struct {
	buf  bytes.Buffer
	zw   *zip.Writer
	root string
	err  error
}

func newArchiveWriter(root string) *archiveWriter {
	a := &archiveWriter{root: root}
	a.zw = zip.NewWriter(&a.buf)
	return a
}

func (a *archiveWriter) add(name, content string) {
	a.addBytes(name, []byte(content))
}

func (a *archiveWriter) addBytes(name string, data []byte) {
	if a.err != nil {
		return
	}
	dst, err := a.zw.Create(a.root + "/" + name)
	if err != nil {
		a.err = err
		return
	}
	if _, err := dst.Write(data); err != nil {
		a.err = err
	}
}

func (a *archiveWriter) finish() ([]byte, error) {
	if a.err != nil {
		a.zw.Close()
		return nil, a.err
	}
	if err := a.zw.Close(); err != nil {
		return nil, err
	}
	return a.buf.Bytes(), nil
}

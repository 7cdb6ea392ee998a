package target

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/iox/jsonx"

	"scene-converter/internal/common"
)

// Extension is the file extension of written documents.
const Extension = ".json"

// OutputPath returns the path of the document named name written next to
// the input scene.
func OutputPath(inputPath, name string) string {
	return filepath.Join(filepath.Dir(inputPath), name+Extension)
}

// Write serializes doc as indented JSON to w.
func Write(doc *Document, w io.Writer) error {
	return jsonx.WriteIndent(normalize(doc), w)
}

// Marshal serializes doc as indented JSON.
func Marshal(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(doc, &buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// WriteFile writes doc to path. The document is first written to a
// temporary file in the same directory and renamed into place, so path
// either keeps its previous content or holds the complete document.
func WriteFile(doc *Document, path string) (err error) {
	data, err := Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal scene: %w", err)
	}

	dir := filepath.Dir(path)
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	tmp, err := os.CreateTemp(dir, "."+base+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create output file in %s: %w", dir, err)
	}

	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}

	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}

	return nil
}

// normalize returns a shallow copy of doc whose lists are non-nil.
func normalize(doc *Document) *Document {
	out := *doc
	out.Materials = common.NonNil(out.Materials)
	out.Entities = common.NonNil(out.Entities)
	out.EnvLight = common.NonNil(out.EnvLight)

	return &out
}

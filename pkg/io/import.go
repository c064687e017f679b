package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/mazetrace/pkg/errors"
	"github.com/matzehuels/mazetrace/pkg/maze"
)

// Format is a maze file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the encoding from a file extension. Unknown
// extensions fail with INVALID_INPUT.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errs.New(errs.ErrCodeInvalidInput,
			"unsupported maze file %q: want .json or .toml", filepath.Base(path))
	}
}

// Read decodes a maze description from r in the given format.
func Read(r io.Reader, format Format) (*maze.Description, error) {
	switch format {
	case FormatJSON:
		return ReadJSON(r)
	case FormatTOML:
		return ReadTOML(r)
	default:
		return nil, errs.New(errs.ErrCodeInvalidInput, "unsupported format %q", format)
	}
}

// ReadJSON decodes a JSON maze description from r. Unknown fields are
// rejected so that typos such as "wall" surface instead of silently yielding
// an open grid. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*maze.Description, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var d maze.Description
	if err := dec.Decode(&d); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "decode json")
	}
	return &d, nil
}

// ReadTOML decodes a TOML maze description from r. Like [ReadJSON], keys
// that do not map to a field are rejected.
func ReadTOML(r io.Reader) (*maze.Description, error) {
	var d maze.Description
	md, err := toml.NewDecoder(r).Decode(&d)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "decode toml")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errs.New(errs.ErrCodeInvalidInput, "decode toml: unknown key %q", undecoded[0].String())
	}
	return &d, nil
}

// Import reads the maze file at path, choosing the decoder by extension.
func Import(path string) (*maze.Description, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f, format)
}

package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/mazetrace/pkg/errors"
	"github.com/matzehuels/mazetrace/pkg/maze"
)

// Write encodes d to w in the given format.
func Write(d *maze.Description, w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		return WriteJSON(d, w)
	case FormatTOML:
		return WriteTOML(d, w)
	default:
		return errs.New(errs.ErrCodeInvalidInput, "unsupported format %q", format)
	}
}

// WriteJSON encodes d as indented JSON. The output can be re-read with
// [ReadJSON].
func WriteJSON(d *maze.Description, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteTOML encodes d as TOML. The output can be re-read with [ReadTOML].
func WriteTOML(d *maze.Description, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(d); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Export writes d to path, choosing the encoder by extension.
func Export(d *maze.Description, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(d, f, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

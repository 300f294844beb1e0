// cmd/ndslab/config.go
//
// Geometry documents describe an array shape and an optional hyperslab
// selection. YAML is the default encoding; files ending in .json are
// decoded as JSON instead.
//
// Example (YAML):
//
//	sizes: [10, 10, 10]
//	selection:
//	  offset: [1, 0, 0]
//	  stride: [2, 1, 1]
//	  count:  [4, 10, 10]
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/matteodg/ndslab/index"
)

// geometryDoc mirrors the on-disk geometry document.
type geometryDoc struct {
	Sizes     []int64       `json:"sizes" yaml:"sizes"`
	Selection *selectionDoc `json:"selection,omitempty" yaml:"selection,omitempty"`
}

// selectionDoc mirrors the optional hyperslab selection block; stride and
// block may be omitted and default to all ones.
type selectionDoc struct {
	Offset []int64 `json:"offset" yaml:"offset"`
	Stride []int64 `json:"stride,omitempty" yaml:"stride,omitempty"`
	Count  []int64 `json:"count" yaml:"count"`
	Block  []int64 `json:"block,omitempty" yaml:"block,omitempty"`
}

// loadGeometry reads and decodes a geometry document and builds the
// matching index: dense when no selection block is present, hyperslab
// otherwise.
func loadGeometry(path string) (index.Index, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read geometry: %w", err)
	}
	doc, err := decodeGeometry(raw, filepath.Ext(path))
	if err != nil {
		return nil, err
	}

	return buildIndex(doc)
}

// decodeGeometry unmarshals raw document bytes according to the file
// extension: .json via goccy/go-json, anything else as YAML.
func decodeGeometry(raw []byte, ext string) (*geometryDoc, error) {
	var doc geometryDoc
	if strings.EqualFold(ext, ".json") {
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("decode geometry json: %w", err)
		}
		return &doc, nil
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode geometry yaml: %w", err)
	}

	return &doc, nil
}

// buildIndex constructs the index described by doc. Validation of sizes
// and selection vectors happens in the index constructors.
func buildIndex(doc *geometryDoc) (index.Index, error) {
	if doc.Selection == nil {
		return index.NewStride(doc.Sizes)
	}

	return index.NewHyperslab(doc.Sizes, index.Selection{
		Offset: doc.Selection.Offset,
		Stride: doc.Selection.Stride,
		Count:  doc.Selection.Count,
		Block:  doc.Selection.Block,
	})
}

// parseVector parses a comma-separated list of integers, e.g. "4,3,2".
func parseVector(s string) ([]int64, error) {
	parts := strings.Split(s, ",")
	out := make([]int64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse vector %q: %w", s, err)
		}
		out = append(out, v)
	}

	return out, nil
}

// formatVector renders a vector as a comma-separated list, the inverse
// of parseVector.
func formatVector(v []int64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatInt(x, 10)
	}

	return strings.Join(parts, ",")
}

// emitJSON writes val to stdout as indented JSON.
func emitJSON(val any) error {
	out, err := json.MarshalIndent(val, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	fmt.Println(string(out))

	return nil
}

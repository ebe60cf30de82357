// Package dataset reads raw points from CSV or YAML/JSON documents and writes
// batch results as JSON for renderers.
//
// Readers never judge coordinates: a cell that is not a number becomes NaN,
// and the engine reports the point as invalid under its input index.
package dataset

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hyperpath/batch"
	"github.com/katalvlaran/hyperpath/transform"
)

const labelColumn = "label"

// CSVOption tunes ReadCSV.
type CSVOption func(*csvOptions)

type csvOptions struct {
	header bool
}

// WithHeader marks the first record as a header even when it has no
// "label" column.
func WithHeader() CSVOption {
	return func(o *csvOptions) { o.header = true }
}

// ReadCSV parses one point per record.
//
// The first record is a header when it has a column named "label" (any case)
// or when WithHeader is given; the label column supplies point labels, every
// other column is a coordinate in order. Any other first record is a point,
// so a malformed first row is reported by the engine instead of vanishing.
// Records may be ragged; trailing empty cells are ignored. Blank lines are
// skipped.
func ReadCSV(r io.Reader, opts ...CSVOption) ([]transform.RawPoint, error) {
	var o csvOptions
	for _, opt := range opts {
		opt(&o)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataset: read csv: %w", err)
	}
	if len(records) == 0 {
		return []transform.RawPoint{}, nil
	}

	labelAt := labelIndex(records[0])
	if o.header || labelAt >= 0 {
		records = records[1:]
	}

	points := make([]transform.RawPoint, 0, len(records))
	for _, rec := range records {
		rec = trimTrailingEmpty(rec)
		var p transform.RawPoint
		for i, cell := range rec {
			if i == labelAt {
				p.Label = strings.TrimSpace(cell)
				continue
			}
			p.Coords = append(p.Coords, parseCell(cell))
		}
		points = append(points, p)
	}

	return points, nil
}

// labelIndex returns the position of the "label" column in a header, or -1.
func labelIndex(rec []string) int {
	for i, name := range rec {
		if strings.EqualFold(strings.TrimSpace(name), labelColumn) {
			return i
		}
	}

	return -1
}

func trimTrailingEmpty(rec []string) []string {
	for len(rec) > 0 && strings.TrimSpace(rec[len(rec)-1]) == "" {
		rec = rec[:len(rec)-1]
	}

	return rec
}

func parseCell(cell string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return math.NaN()
	}

	return f
}

// yamlPoint is one entry of a YAML/JSON points document. Both fields stay
// nodes so a badly shaped entry fails alone instead of the whole document.
type yamlPoint struct {
	Label  yaml.Node `yaml:"label"`
	Coords yaml.Node `yaml:"coords"`
}

// ReadYAML parses a sequence of {label, coords} mappings. JSON documents are
// accepted as well. Non-scalar or non-numeric coordinates become NaN; an
// entry that is not a mapping, or whose coords is not a sequence, yields a
// point without coordinates so the engine reports it under its index.
func ReadYAML(r io.Reader) ([]transform.RawPoint, error) {
	var doc []yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("dataset: read yaml: %w", err)
	}

	points := make([]transform.RawPoint, len(doc))
	for i := range doc {
		points[i] = yamlToPoint(&doc[i])
	}

	return points, nil
}

func yamlToPoint(n *yaml.Node) transform.RawPoint {
	var yp yamlPoint
	if n.Kind != yaml.MappingNode || n.Decode(&yp) != nil {
		return transform.RawPoint{}
	}

	var p transform.RawPoint
	if yp.Label.Kind == yaml.ScalarNode && yp.Label.ShortTag() != "!!null" {
		p.Label = yp.Label.Value
	}
	if yp.Coords.Kind != yaml.SequenceNode {
		return p
	}

	p.Coords = make([]float64, len(yp.Coords.Content))
	for j, c := range yp.Coords.Content {
		p.Coords[j] = math.NaN()
		if tag := c.ShortTag(); c.Kind == yaml.ScalarNode && (tag == "!!int" || tag == "!!float") {
			var f float64
			if err := c.Decode(&f); err == nil {
				p.Coords[j] = f
			}
		}
	}

	return p
}

// JSON output documents.
type (
	jsonResult struct {
		Paths        []jsonPath    `json:"paths"`
		Failures     []jsonFailure `json:"failures"`
		MaxExtraDims int           `json:"max_extra_dims"`
	}
	jsonPath struct {
		Label     string      `json:"label"`
		Truncated bool        `json:"truncated"`
		Points    []jsonPoint `json:"points"`
	}
	jsonPoint struct {
		X       float64 `json:"x"`
		Y       float64 `json:"y"`
		Z       float64 `json:"z"`
		Dim     int     `json:"dim"`
		Clamped bool    `json:"clamped"`
	}
	jsonFailure struct {
		Index  int    `json:"index"`
		Label  string `json:"label"`
		Reason string `json:"reason"`
	}
)

// WriteJSON renders res as an indented JSON document.
func WriteJSON(w io.Writer, res batch.Result) error {
	out := jsonResult{
		Paths:        make([]jsonPath, 0, len(res.Paths)),
		Failures:     make([]jsonFailure, 0, len(res.Failures)),
		MaxExtraDims: res.MaxExtraDims,
	}
	for _, p := range res.Paths {
		jp := jsonPath{Label: p.Label, Truncated: p.Truncated, Points: make([]jsonPoint, 0, len(p.Steps))}
		for _, s := range p.Steps {
			jp.Points = append(jp.Points, jsonPoint{X: s.Pos.X, Y: s.Pos.Y, Z: s.Pos.Z, Dim: s.Dim, Clamped: s.Clamped})
		}
		out.Paths = append(out.Paths, jp)
	}
	for _, f := range res.Failures {
		out.Failures = append(out.Failures, jsonFailure{Index: f.Index, Label: f.Label, Reason: f.Err.Error()})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("dataset: write json: %w", err)
	}

	return nil
}

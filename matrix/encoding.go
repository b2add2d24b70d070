package matrix

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// document is the structured (JSON/YAML/TOML) envelope of a cost matrix.
type document struct {
	Costs [][]Cost `json:"costs" yaml:"costs" toml:"costs"`
}

// yamlDocument decodes cells through pointers: yaml.v3 never hands a null
// node to an Unmarshaler, so a nil entry is how "~" reaches us.
type yamlDocument struct {
	Costs [][]*Cost `yaml:"costs"`
}

// tomlDocument mirrors document with the integer convention TOML needs
// (no null in TOML).
type tomlDocument struct {
	Costs [][]int64 `toml:"costs"`
}

// Decode reads a cost matrix in the given format.
func Decode(r io.Reader, f Format) (*Costs, error) {
	switch f {
	case FormatText:
		return ReadText(r)
	case FormatJSON:
		var doc document
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		return FromRows(doc.Costs)
	case FormatYAML:
		var doc yamlDocument
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		return FromRows(fromYAML(doc))
	case FormatTOML:
		var doc document
		if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
		return FromRows(doc.Costs)
	default:
		return nil, ErrUnknownFormat
	}
}

// Encode writes m in the given format.
func Encode(w io.Writer, m *Costs, f Format) error {
	if m == nil {
		return ErrNilMatrix
	}
	switch f {
	case FormatText:
		return WriteText(w, m)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(document{Costs: m.Table()})
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(document{Costs: m.Table()}); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(toTOML(m))
	default:
		return ErrUnknownFormat
	}
}

// fromYAML replaces nil cells with Blocked.
func fromYAML(doc yamlDocument) [][]Cost {
	rows := make([][]Cost, len(doc.Costs))
	for i, row := range doc.Costs {
		rows[i] = make([]Cost, len(row))
		for j, c := range row {
			if c == nil {
				rows[i][j] = Blocked()
				continue
			}
			rows[i][j] = *c
		}
	}

	return rows
}

// toTOML converts m to the integer convention (-1 = blocked).
func toTOML(m *Costs) tomlDocument {
	doc := tomlDocument{Costs: make([][]int64, m.n)}
	var (
		i, j int
		w    int
		ok   bool
	)
	for i = 0; i < m.n; i++ {
		doc.Costs[i] = make([]int64, m.n)
		for j = 0; j < m.n; j++ {
			if w, ok = m.data[i*m.n+j].Value(); ok {
				doc.Costs[i][j] = int64(w)
			} else {
				doc.Costs[i][j] = -1
			}
		}
	}

	return doc
}

// ReadText parses the line-per-row text format. Every non-empty,
// non-comment line is one row; tokens are parsed with ParseCost.
//
// Errors: ErrBadShape for empty input, ErrNonSquare for ragged rows,
// ErrSyntax / ErrNegativeCost (wrapped with the line number).
func ReadText(r io.Reader) (*Costs, error) {
	var (
		rows   [][]Cost
		sc     = bufio.NewScanner(r)
		lineNo int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		row := make([]Cost, len(fields))
		for j, tok := range fields {
			c, err := ParseCost(tok)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			row[j] = c
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return FromRows(rows)
}

// WriteText writes m in the line-per-row text format.
func WriteText(w io.Writer, m *Costs) error {
	if m == nil {
		return ErrNilMatrix
	}
	_, err := io.WriteString(w, m.String())

	return err
}

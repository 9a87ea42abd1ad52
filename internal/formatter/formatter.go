// Package formatter renders cache entries for non-interactive output.
package formatter

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pelletier/go-toml/v2"

	"github.com/oakwood-commons/ccx/internal/cache"
)

// Format names an output format.
type Format string

const (
	FormatTable Format = "table"
	FormatList  Format = "list"
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
	FormatTOML  Format = "toml"
)

// Formats lists every supported format.
var Formats = []Format{FormatTable, FormatList, FormatYAML, FormatJSON, FormatTOML}

// ParseFormat validates a user supplied format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	names := make([]string, len(Formats))
	for i, known := range Formats {
		names[i] = string(known)
	}
	return "", fmt.Errorf("unknown output format %q (valid: %s)", s, strings.Join(names, ", "))
}

// Record is the serialized form of an entry.
type Record struct {
	Name        string   `json:"name" yaml:"name" toml:"name"`
	Type        string   `json:"type" yaml:"type" toml:"type"`
	Value       string   `json:"value" yaml:"value" toml:"value"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Advanced    bool     `json:"advanced" yaml:"advanced" toml:"advanced"`
	Allowed     []string `json:"allowed,omitempty" yaml:"allowed,omitempty" toml:"allowed,omitempty"`
}

// Records converts entries, preserving order.
func Records(entries []*cache.Entry) []Record {
	out := make([]Record, len(entries))
	for i, e := range entries {
		out[i] = Record{
			Name:        e.Name,
			Type:        e.Type.String(),
			Value:       e.Value,
			Description: e.Description,
			Advanced:    e.Advanced,
			Allowed:     e.Allowed,
		}
	}
	return out
}

// Write renders entries to w in format f.
func Write(w io.Writer, entries []*cache.Entry, f Format) error {
	switch f {
	case FormatTable:
		return writeTable(w, entries)
	case FormatList:
		return writeList(w, entries)
	case FormatYAML:
		s, err := FormatYAMLDoc(Records(entries), YAMLFormatOptions{LiteralBlockStrings: true})
		if err != nil {
			return fmt.Errorf("failed to marshal yaml: %w", err)
		}
		_, err = io.WriteString(w, s)
		return err
	case FormatJSON:
		b, err := json.MarshalIndent(Records(entries), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal json: %w", err)
		}
		_, err = w.Write(append(b, '\n'))
		return err
	case FormatTOML:
		// TOML has no top-level arrays, so entries become [[entry]] tables.
		b, err := toml.Marshal(struct {
			Entry []Record `toml:"entry"`
		}{Records(entries)})
		if err != nil {
			return fmt.Errorf("failed to marshal toml: %w", err)
		}
		_, err = w.Write(b)
		return err
	}
	return fmt.Errorf("unknown output format %q", f)
}

func writeTable(w io.Writer, entries []*cache.Entry) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Type", "Value", "Advanced"})
	table.SetAutoWrapText(false)
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{e.Name, e.Type.String(), e.Value, strconv.FormatBool(e.Advanced)}
	}
	table.AppendBulk(rows)
	table.Render()
	return nil
}

// writeList prints NAME:TYPE=VALUE lines, each preceded by its description
// as a comment.
func writeList(w io.Writer, entries []*cache.Entry) error {
	var b strings.Builder
	for _, e := range entries {
		if e.Description != "" {
			b.WriteString(cache.CommentMarker)
			b.WriteString(e.Description)
			b.WriteByte('\n')
		}
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

package formatter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/ccx/internal/cache"
)

func sampleEntries() []*cache.Entry {
	build := cache.NewEntry("CMAKE_BUILD_TYPE", cache.Enum, "Choose the type of build.", "Debug")
	build.Allowed = []string{"Debug", "Release"}
	bt := cache.NewEntry("BUILD_TESTING", cache.Bool, "", "ON")
	bt.Advanced = true
	return []*cache.Entry{bt, build}
}

func render(t *testing.T, f Format) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleEntries(), f))
	return buf.String()
}

var wantRecords = []Record{
	{Name: "BUILD_TESTING", Type: "BOOL", Value: "ON", Advanced: true},
	{Name: "CMAKE_BUILD_TYPE", Type: "ENUM", Value: "Debug", Description: "Choose the type of build.", Allowed: []string{"Debug", "Release"}},
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" YAML ")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseFormat("csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "table, list, yaml, json, toml")
}

func TestWriteTable(t *testing.T) {
	out := render(t, FormatTable)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "CMAKE_BUILD_TYPE")
	assert.Contains(t, out, "ENUM")
	assert.Contains(t, out, "true")
	assert.Less(t, strings.Index(out, "BUILD_TESTING"), strings.Index(out, "CMAKE_BUILD_TYPE"), "input order is kept")
}

func TestWriteList(t *testing.T) {
	want := "BUILD_TESTING:BOOL=ON\n//Choose the type of build.\nCMAKE_BUILD_TYPE:ENUM=Debug\n"
	assert.Equal(t, want, render(t, FormatList))
}

func TestWriteStructuredFormats(t *testing.T) {
	decoders := map[Format]func([]byte) ([]Record, error){
		FormatJSON: func(b []byte) ([]Record, error) {
			var out []Record
			return out, json.Unmarshal(b, &out)
		},
		FormatYAML: func(b []byte) ([]Record, error) {
			var out []Record
			return out, yaml.Unmarshal(b, &out)
		},
		FormatTOML: func(b []byte) ([]Record, error) {
			var doc struct {
				Entry []Record `toml:"entry"`
			}
			return doc.Entry, toml.Unmarshal(b, &doc)
		},
	}
	for f, decode := range decoders {
		t.Run(string(f), func(t *testing.T) {
			got, err := decode([]byte(render(t, f)))
			require.NoError(t, err)
			if diff := cmp.Diff(wantRecords, got); diff != "" {
				t.Fatalf("records mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil, FormatJSON))
	assert.Equal(t, "[]\n", buf.String())
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, Write(&buf, nil, Format("xml")))
}

func TestFormatYAMLDocLiteralBlocks(t *testing.T) {
	s, err := FormatYAMLDoc(map[string]string{"d": "one\ntwo"}, YAMLFormatOptions{LiteralBlockStrings: true})
	require.NoError(t, err)
	assert.Contains(t, s, "d: |")
}

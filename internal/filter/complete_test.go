package filter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/ccx/internal/cache"
)

func TestCompleteFields(t *testing.T) {
	assert.Equal(t, []string{"e.advanced", "e.allowed"}, Complete("e.a"))
	assert.Len(t, Complete("e."), len(Fields))
	assert.Equal(t, []string{`e.advanced && e.name`}, Complete(`e.advanced && e.na`))
	assert.Empty(t, Complete("e.zzz"))
}

func TestCompleteMethods(t *testing.T) {
	assert.Equal(t, []string{"e.name.startsWith("}, Complete("e.name.st"))
	assert.Equal(t, []string{"e.type.lowerAscii("}, Complete("e.type.lo"))
	assert.Equal(t, []string{"e.value.contains("}, Complete("e.value.co"))
	assert.Equal(t, []string{`e.advanced && e.description.endsWith(`}, Complete(`e.advanced && e.description.en`))
	assert.Equal(t, []string{"e.allowed.size(", "e.allowed.sort("}, Complete("e.allowed.s"))
	assert.Empty(t, Complete("e.advanced."), "bool has no methods")
	assert.Empty(t, Complete("e.bogus.s"))
}

func TestCompleteIgnoresOtherIdentifiers(t *testing.T) {
	assert.Empty(t, Complete("size(x"))
	assert.Empty(t, Complete("code.na"), "e must not be the tail of another identifier")
	assert.Empty(t, Complete(""))
}

func TestFieldsMatchRecord(t *testing.T) {
	rec := Record(cache.NewEntry("A", cache.String, "", "x"))
	require.Len(t, rec, len(Fields))
	for _, f := range Fields {
		assert.Contains(t, rec, f.Name)
	}
}

func TestFieldHelp(t *testing.T) {
	lines := FieldHelp()
	require.Len(t, lines, len(Fields))
	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[0]), "e.name"))
	assert.Contains(t, lines[5], "list")
}

func TestCompletedMethodsCompile(t *testing.T) {
	cases := []string{
		`e.name.startsWith("CMAKE")`,
		`e.value.lowerAscii() == "on"`,
		`e.description.matches("^Build")`,
		`e.allowed.exists(x, x == "Release")`,
		`e.allowed.size() > 2`,
		`e.name.size() > 3`,
	}
	for _, expr := range cases {
		_, err := New(expr)
		assert.NoError(t, err, expr)
	}
}

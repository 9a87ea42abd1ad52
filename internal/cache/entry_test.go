package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntryAdvanceByType(t *testing.T) {
	tests := []struct {
		name    string
		entry   *Entry
		want    string
		changed bool
	}{
		{"bool toggles", NewEntry("B", Bool, "", "ON"), "OFF", true},
		{"bool unknown spelling", NewEntry("B", Bool, "", "maybe"), "maybe", false},
		{"string unchanged", NewEntry("S", String, "", "ON"), "ON", false},
		{"filepath unchanged", NewEntry("F", FilePath, "", "/a"), "/a", false},
		{"dirpath unchanged", NewEntry("D", DirPath, "", "/b"), "/b", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.changed, tt.entry.Advance())
			assert.Equal(t, tt.want, tt.entry.Value)
			assert.Equal(t, tt.changed, tt.entry.Modified())
		})
	}
}

func TestEntryAdvanceEnum(t *testing.T) {
	e := NewEntry("E", String, "", "b")
	e.Type = Enum
	e.Allowed = []string{"a", "b", "c"}

	assert.True(t, e.Advance())
	assert.Equal(t, "c", e.Value)
	assert.True(t, e.Advance())
	assert.Equal(t, "a", e.Value)
	assert.True(t, e.Advance())
	assert.Equal(t, "b", e.Value)
	assert.False(t, e.Modified(), "cycling back to the original value clears modified")
}

func TestEntryModifiedIsByteExact(t *testing.T) {
	e := NewEntry("B", Bool, "", "on")
	e.Advance()
	assert.Equal(t, "OFF", e.Value)
	e.Advance()
	assert.Equal(t, "ON", e.Value)
	assert.True(t, e.Modified(), "ON is equivalent to on but not byte-identical")

	e.Reset()
	assert.False(t, e.Modified())
	assert.Equal(t, "on", e.Value)
}

func TestEntryEditable(t *testing.T) {
	enum := NewEntry("E", Enum, "", "")
	assert.False(t, enum.Editable())
	enum.Allowed = []string{"x"}
	assert.True(t, enum.Editable())
	assert.True(t, NewEntry("B", Bool, "", "").Editable())
	assert.False(t, NewEntry("S", String, "", "").Editable())
}

func TestEntryTypeString(t *testing.T) {
	assert.Equal(t, "BOOL", Bool.String())
	assert.Equal(t, "ENUM", Enum.String())
	assert.Equal(t, "PATH", DirPath.String())
	assert.Equal(t, "EntryType(42)", EntryType(42).String())
	assert.Equal(t, String, TypeFromToken("NOPE"))
	assert.Equal(t, Static, TypeFromToken("STATIC"))
}

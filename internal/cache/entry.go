// Package cache parses CMake cache files into typed, described entries and
// provides the value transitions applied to them while browsing.
package cache

import "fmt"

// EntryType is the closed set of cache entry types.
type EntryType int

const (
	// String is a free-form value and the fallback for unknown type tokens.
	String EntryType = iota
	// Bool is an ON/OFF style switch.
	Bool
	// Enum is a value restricted to an ordered list of allowed strings.
	Enum
	// FilePath points at a file.
	FilePath
	// DirPath points at a directory.
	DirPath
	// Static is build-internal bookkeeping; such entries never leave the parser.
	Static
)

// typeTokens maps the uppercase TYPE token of a declaration to its EntryType.
// Tokens missing from this table resolve to String.
var typeTokens = map[string]EntryType{
	"BOOL":          Bool,
	"STRING":        String,
	"FILEPATH":      FilePath,
	"PATH":          DirPath,
	"STATIC":        Static,
	"INTERNAL":      Static,
	"UNINITIALIZED": String,
}

// TypeFromToken resolves a declaration TYPE token.
func TypeFromToken(token string) EntryType {
	if t, ok := typeTokens[token]; ok {
		return t
	}
	return String
}

// String returns the label used in tables and listings.
func (t EntryType) String() string {
	switch t {
	case Bool:
		return "BOOL"
	case String:
		return "STRING"
	case Enum:
		return "ENUM"
	case FilePath:
		return "FILEPATH"
	case DirPath:
		return "PATH"
	case Static:
		return "STATIC"
	}
	return fmt.Sprintf("EntryType(%d)", int(t))
}

// Entry is a single user-visible cache variable.
type Entry struct {
	Name        string
	Type        EntryType
	Description string
	Value       string
	// Allowed is only populated for Enum entries.
	Allowed  []string
	Advanced bool

	original string
}

// NewEntry creates an entry whose original value is value.
func NewEntry(name string, typ EntryType, description, value string) *Entry {
	return &Entry{
		Name:        name,
		Type:        typ,
		Description: description,
		Value:       value,
		original:    value,
	}
}

// Original returns the value read from disk.
func (e *Entry) Original() string {
	return e.original
}

// Modified reports whether the current value differs byte-for-byte from the
// value read from disk.
func (e *Entry) Modified() bool {
	return e.Value != e.original
}

// Editable reports whether Advance can ever change the value.
func (e *Entry) Editable() bool {
	switch e.Type {
	case Bool:
		return true
	case Enum:
		return len(e.Allowed) > 0
	case String, FilePath, DirPath, Static:
		return false
	}
	return false
}

// Advance applies the type-directed transition to the current value:
// Bool entries toggle, Enum entries cycle. It reports whether the value changed.
func (e *Entry) Advance() bool {
	next := e.Value
	switch e.Type {
	case Bool:
		next = ToggleBool(e.Value)
	case Enum:
		next = CycleEnum(e.Allowed, e.Value)
	case String, FilePath, DirPath, Static:
		return false
	}
	if next == e.Value {
		return false
	}
	e.Value = next
	return true
}

// Reset restores the original value.
func (e *Entry) Reset() {
	e.Value = e.original
}

func (e *Entry) String() string {
	return fmt.Sprintf("%s:%s=%s", e.Name, e.Type, e.Value)
}

package filter

import (
	"sort"
	"strings"
)

// Field describes one member of the entry record.
type Field struct {
	Name        string
	Type        string
	Description string
}

// Fields lists the members of "e" in display order.
var Fields = []Field{
	{"name", "string", "entry name"},
	{"type", "string", "BOOL, ENUM, STRING, FILEPATH or PATH"},
	{"value", "string", "current value"},
	{"description", "string", "help text from the cache file"},
	{"advanced", "bool", "marked advanced"},
	{"allowed", "list", "allowed values of an ENUM entry"},
	{"modified", "bool", "changed in this session"},
}

// Method is a receiver function offered after "e.<field>.".
type Method struct {
	Name      string
	Receiver  string
	Signature string
}

// Methods covers the string and list helpers enabled in the environment.
var Methods = []Method{
	{"contains", "string", "contains(string) -> bool"},
	{"endsWith", "string", "endsWith(string) -> bool"},
	{"lowerAscii", "string", "lowerAscii() -> string"},
	{"matches", "string", "matches(regex) -> bool"},
	{"size", "string", "size() -> int"},
	{"startsWith", "string", "startsWith(string) -> bool"},
	{"upperAscii", "string", "upperAscii() -> string"},
	{"exists", "list", "exists(x, predicate) -> bool"},
	{"all", "list", "all(x, predicate) -> bool"},
	{"size", "list", "size() -> int"},
	{"sort", "list", "sort() -> list"},
}

// FieldHelp returns one line per field for help output.
func FieldHelp() []string {
	lines := make([]string, len(Fields))
	for i, f := range Fields {
		lines[i] = "  " + Variable + "." + padTo(f.Name, 12) + padTo(f.Type, 7) + f.Description
	}
	return lines
}

func padTo(s string, n int) string {
	if len(s) >= n {
		return s + " "
	}
	return s + strings.Repeat(" ", n-len(s))
}

// Complete returns candidate expressions extending input. It completes
// field names after "e." and methods after "e.<field>.".
func Complete(input string) []string {
	start := variableStart(input)
	if start < 0 {
		return nil
	}
	head := input[:start+len(Variable)+1]
	rest := input[len(head):]

	field, partial, hasDot := strings.Cut(rest, ".")
	if !hasDot {
		var out []string
		for _, f := range Fields {
			if strings.HasPrefix(f.Name, field) {
				out = append(out, head+f.Name)
			}
		}
		return out
	}
	recv := fieldType(field)
	if recv == "" || strings.Contains(partial, ".") {
		return nil
	}
	seen := map[string]bool{}
	var out []string
	for _, m := range Methods {
		if m.Receiver != recv || seen[m.Name] || !strings.HasPrefix(m.Name, partial) {
			continue
		}
		seen[m.Name] = true
		out = append(out, head+field+"."+m.Name+"(")
	}
	sort.Strings(out)
	return out
}

// variableStart returns the offset of the last "e." that starts an
// identifier, or -1.
func variableStart(input string) int {
	prefix := Variable + "."
	end := len(input)
	for {
		i := strings.LastIndex(input[:end], prefix)
		if i < 0 {
			return -1
		}
		if i == 0 || !isIdentRune(rune(input[i-1])) {
			return i
		}
		end = i
	}
}

func fieldType(name string) string {
	for _, f := range Fields {
		if f.Name == name {
			return f.Type
		}
	}
	return ""
}

func isIdentRune(r rune) bool {
	return r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}

package cache

import (
	"regexp"
	"sort"
	"strings"
)

// CommentMarker starts a description line in the external section.
const CommentMarker = "//"

// InternalHeaders are the spellings of the line that opens the internal
// metadata block.
var InternalHeaders = []string{
	"# INTERNAL cache entries",
	"# Internal cache entries",
}

type grammar struct {
	name    string
	pattern string
}

var (
	declarationGrammar = grammar{"declaration", `^([A-Za-z_][A-Za-z0-9_]*):([A-Z]+)=(.*)$`}
	stringsGrammar     = grammar{"strings", `^([A-Za-z_][A-Za-z0-9_]*)-STRINGS:INTERNAL=(.+)$`}
	advancedGrammar    = grammar{"advanced", `^([A-Za-z_][A-Za-z0-9_]*)-ADVANCED:INTERNAL=1$`}
)

// Parser turns cache file text into entries. It is safe to reuse.
type Parser struct {
	declaration *regexp.Regexp
	enumValues  *regexp.Regexp
	advanced    *regexp.Regexp
}

// NewParser compiles the line grammars.
func NewParser() (*Parser, error) {
	return newParser(declarationGrammar, stringsGrammar, advancedGrammar)
}

func newParser(decl, strs, adv grammar) (*Parser, error) {
	compiled := make([]*regexp.Regexp, 0, 3)
	for _, g := range []grammar{decl, strs, adv} {
		re, err := regexp.Compile(g.pattern)
		if err != nil {
			return nil, &InitError{Grammar: g.name, Err: err}
		}
		compiled = append(compiled, re)
	}
	return &Parser{
		declaration: compiled[0],
		enumValues:  compiled[1],
		advanced:    compiled[2],
	}, nil
}

// Parse builds the name → entry map for text. Static entries are dropped and
// the last declaration of a name wins.
func (p *Parser) Parse(text string) map[string]*Entry {
	external, internal := splitSections(text)
	entries := p.parseExternal(external)
	p.parseInternal(internal, entries)
	return entries
}

// splitSections cuts text at the first internal header line.
func splitSections(text string) (external, internal string) {
	offset := 0
	for offset < len(text) {
		end := strings.IndexByte(text[offset:], '\n')
		next := len(text)
		if end >= 0 {
			next = offset + end + 1
		}
		line := strings.TrimRight(text[offset:next], "\r\n")
		for _, header := range InternalHeaders {
			if line == header {
				return text[:offset], text[next:]
			}
		}
		offset = next
	}
	return text, ""
}

func (p *Parser) parseExternal(text string) map[string]*Entry {
	entries := make(map[string]*Entry)
	var pending []string

	for _, line := range lines(text) {
		if strings.HasPrefix(line, CommentMarker) {
			if part := strings.TrimSpace(strings.TrimPrefix(line, CommentMarker)); part != "" {
				pending = append(pending, part)
			}
			continue
		}

		m := p.declaration.FindStringSubmatch(line)
		if m == nil {
			// A line that is neither comment nor declaration ends the comment run.
			pending = pending[:0]
			continue
		}

		desc := strings.Join(pending, " ")
		pending = pending[:0]

		typ := TypeFromToken(m[2])
		if typ == Static {
			continue
		}
		entries[m[1]] = NewEntry(m[1], typ, desc, m[3])
	}
	return entries
}

func (p *Parser) parseInternal(text string, entries map[string]*Entry) {
	for _, line := range lines(text) {
		if m := p.enumValues.FindStringSubmatch(line); m != nil {
			if e, ok := entries[m[1]]; ok {
				e.Type = Enum
				e.Allowed = strings.Split(m[2], ";")
			}
			continue
		}
		if m := p.advanced.FindStringSubmatch(line); m != nil {
			if e, ok := entries[m[1]]; ok {
				e.Advanced = true
			}
		}
	}
}

func lines(text string) []string {
	if text == "" {
		return nil
	}
	out := strings.Split(text, "\n")
	for i, l := range out {
		out[i] = strings.TrimSuffix(l, "\r")
	}
	return out
}

// Sorted flattens the map into a slice ordered by name.
func Sorted(entries map[string]*Entry) []*Entry {
	out := make([]*Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Parse parses text with a fresh parser and returns the entries sorted by name.
func Parse(text string) ([]*Entry, error) {
	p, err := NewParser()
	if err != nil {
		return nil, err
	}
	return Sorted(p.Parse(text)), nil
}

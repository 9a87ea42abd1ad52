package cache

import "strings"

// boolPairs maps each recognised spelling (lower case) to its opposite.
var boolPairs = map[string]string{
	"on":    "OFF",
	"true":  "FALSE",
	"yes":   "NO",
	"y":     "N",
	"1":     "0",
	"off":   "ON",
	"false": "TRUE",
	"no":    "YES",
	"n":     "Y",
	"0":     "1",
}

// boolSinks are unset states that always toggle to ON and have no way back.
var boolSinks = map[string]struct{}{
	"":         {},
	"ignore":   {},
	"notfound": {},
}

// ToggleBool flips a boolean spelling. Unknown spellings are returned unchanged.
func ToggleBool(value string) string {
	key := strings.ToLower(value)
	if _, ok := boolSinks[key]; ok {
		return "ON"
	}
	if opposite, ok := boolPairs[key]; ok {
		return opposite
	}
	return value
}

// CycleEnum returns the allowed value following current, wrapping at the end.
// A current value outside allowed restarts at the first element; an empty
// allowed list leaves current unchanged.
func CycleEnum(allowed []string, current string) string {
	if len(allowed) == 0 {
		return current
	}
	for i, v := range allowed {
		if v == current {
			return allowed[(i+1)%len(allowed)]
		}
	}
	return allowed[0]
}

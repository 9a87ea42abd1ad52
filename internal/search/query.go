// Package search implements the incremental search buffer and the wrap-around
// prefix scan used to jump between matching entry names.
package search

// Query is an editable search string with a rune cursor.
type Query struct {
	runes  []rune
	cursor int
}

// Reset clears the text and moves the cursor home.
func (q *Query) Reset() {
	q.runes = q.runes[:0]
	q.cursor = 0
}

// String returns the query text.
func (q *Query) String() string {
	return string(q.runes)
}

// Len returns the query length in runes.
func (q *Query) Len() int {
	return len(q.runes)
}

// Cursor returns the cursor position in runes, within [0, Len].
func (q *Query) Cursor() int {
	return q.cursor
}

// Insert adds r at the cursor and advances it.
func (q *Query) Insert(r rune) {
	q.runes = append(q.runes, 0)
	copy(q.runes[q.cursor+1:], q.runes[q.cursor:])
	q.runes[q.cursor] = r
	q.cursor++
}

// Backspace deletes the rune before the cursor.
func (q *Query) Backspace() {
	if q.cursor == 0 {
		return
	}
	q.runes = append(q.runes[:q.cursor-1], q.runes[q.cursor:]...)
	q.cursor--
}

// Left moves the cursor one rune left.
func (q *Query) Left() {
	if q.cursor > 0 {
		q.cursor--
	}
}

// Right moves the cursor one rune right.
func (q *Query) Right() {
	if q.cursor < len(q.runes) {
		q.cursor++
	}
}

// Split returns the text before and after the cursor, for rendering.
func (q *Query) Split() (before, after string) {
	return string(q.runes[:q.cursor]), string(q.runes[q.cursor:])
}

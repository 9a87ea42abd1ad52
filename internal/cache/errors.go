package cache

import "fmt"

// InitError reports that one of the fixed line grammars failed to compile.
type InitError struct {
	Grammar string
	Err     error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("compile %s grammar: %v", e.Grammar, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// IOError reports that the cache file could not be read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("read cache file %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

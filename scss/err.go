package scss

import "fmt"

// ParseError describes a syntax problem found while parsing a stylesheet.
type ParseError struct {
	Pos Position
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("scss: %d:%d: %s", e.Pos.Line, e.Pos.Column, e.Msg)
}

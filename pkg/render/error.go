package render

import "fmt"

// Error reports a tree that cannot be serialized. Path locates the offending
// node from the render root, child positions in brackets, for example
// "html>body[1]>div[2]".
type Error struct {
	Path   string
	Reason string
	Value  any
}

func (e *Error) Error() string {
	if e.Path == "" {
		return "render: " + e.Reason
	}
	return fmt.Sprintf("render: %s at %s", e.Reason, e.Path)
}

package dom

import "fmt"

// KeyError reports an attribute key that is not legal markup after
// translation. It is the panic value of the DSL attribute setters and the
// error returned by KeyTable.Clean.
type KeyError struct {
	Key     string // key as supplied by the caller
	Cleaned string // key after translation, if any
	Reason  string // why the key was rejected
}

// Error implements the error interface.
func (e *KeyError) Error() string {
	if e.Cleaned != "" && e.Cleaned != e.Key {
		return fmt.Sprintf("dom: invalid attribute key %q (cleaned %q): %s", e.Key, e.Cleaned, e.Reason)
	}
	return fmt.Sprintf("dom: invalid attribute key %q: %s", e.Key, e.Reason)
}

// StructuralError reports a tree mutation that would violate the node model:
// giving children to a void element, or attaching a node that already has a
// parent. It is the panic value of Add, El and Builder.Enter.
type StructuralError struct {
	Op     string // operation that failed ("add", "el", "enter")
	Tag    string // tag of the node being mutated
	Reason string
}

// Error implements the error interface.
func (e *StructuralError) Error() string {
	if e.Tag != "" {
		return fmt.Sprintf("dom: %s <%s>: %s", e.Op, e.Tag, e.Reason)
	}
	return fmt.Sprintf("dom: %s: %s", e.Op, e.Reason)
}

// ScopeError reports a scope operation without a matching open scope. It is
// the panic value of Builder.Exit on an empty stack and of Builder.Add
// outside any scope.
type ScopeError struct {
	Op     string // "exit" or "add"
	Reason string
}

// Error implements the error interface.
func (e *ScopeError) Error() string {
	return fmt.Sprintf("dom: %s: %s", e.Op, e.Reason)
}

// Capture runs fn and converts a build-time panic raised by this package
// (*KeyError, *StructuralError, *ScopeError) into a returned error. Other
// panic values propagate unchanged. It is the checked gateway for callers
// that feed the builder DSL untrusted input.
func Capture(fn func()) (err error) {
	defer func() {
		switch r := recover().(type) {
		case nil:
		case *KeyError:
			err = r
		case *StructuralError:
			err = r
		case *ScopeError:
			err = r
		default:
			panic(r)
		}
	}()
	fn()
	return nil
}

package dom

import (
	"strings"
	"sync"
	"unicode"
)

// KeyTable translates caller-supplied attribute keys into markup-legal
// attribute names. The zero translation rule turns identifier-friendly
// spellings into their HTML forms:
//
//	data_id     → data-id
//	http_equiv  → http-equiv
//	class_      → class   (one trailing underscore is stripped, for keys
//	for_        → for      that would collide with reserved words)
//
// Registered overrides take precedence over the rule and replace the raw
// caller key wholesale. A table may be shared across goroutines; all methods
// are safe for concurrent use.
type KeyTable struct {
	mu        sync.RWMutex
	overrides map[string]string
}

// NewKeyTable returns an empty KeyTable.
func NewKeyTable() *KeyTable {
	return &KeyTable{overrides: make(map[string]string)}
}

// Register forces key to translate to replacement, bypassing the underscore
// rule. It panics with *KeyError if the replacement is not a legal attribute
// name.
func (t *KeyTable) Register(key, replacement string) {
	if reason := checkKey(replacement); reason != "" {
		panic(&KeyError{Key: key, Cleaned: replacement, Reason: reason})
	}
	t.mu.Lock()
	t.overrides[key] = replacement
	t.mu.Unlock()
}

// Reset removes every registered override, restoring the bare translation
// rule.
func (t *KeyTable) Reset() {
	t.mu.Lock()
	t.overrides = make(map[string]string)
	t.mu.Unlock()
}

// Clean translates key and validates the result. The returned error, if any,
// is a *KeyError.
func (t *KeyTable) Clean(key string) (string, error) {
	t.mu.RLock()
	replacement, ok := t.overrides[key]
	t.mu.RUnlock()
	if ok {
		return replacement, nil
	}

	cleaned := strings.TrimSuffix(key, "_")
	cleaned = strings.ReplaceAll(cleaned, "_", "-")
	if reason := checkKey(cleaned); reason != "" {
		return "", &KeyError{Key: key, Cleaned: cleaned, Reason: reason}
	}
	return cleaned, nil
}

// mustClean is Clean for the DSL paths: invalid keys panic.
func (t *KeyTable) mustClean(key string) string {
	cleaned, err := t.Clean(key)
	if err != nil {
		panic(err)
	}
	return cleaned
}

// checkKey reports why a translated key is illegal, or "" if it is fine.
func checkKey(key string) string {
	if key == "" {
		return "empty after translation"
	}
	for _, r := range key {
		if unicode.IsSpace(r) {
			return "contains whitespace"
		}
	}
	return ""
}

// DefaultKeys is the process-wide key table used by every constructor that
// is not given its own table. Overrides registered here affect all
// subsequent attribute encoding library-wide.
var DefaultKeys = NewKeyTable()

// RegisterAttributeMapping registers a full-key override on DefaultKeys.
func RegisterAttributeMapping(key, replacement string) {
	DefaultKeys.Register(key, replacement)
}

// ResetAttributeMappings clears all overrides on DefaultKeys.
func ResetAttributeMappings() {
	DefaultKeys.Reset()
}

// CleanKey translates key through DefaultKeys.
func CleanKey(key string) (string, error) {
	return DefaultKeys.Clean(key)
}

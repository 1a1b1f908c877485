package render

// preformattedElements are elements whose content is whitespace-significant
// or raw text. Pretty-printing never inserts indentation or newlines inside
// their subtrees.
var preformattedElements = map[string]bool{
	"pre":      true,
	"script":   true,
	"style":    true,
	"textarea": true,
}

// isPreformatted returns true if the tag suppresses pretty-printing.
func isPreformatted(tag string) bool {
	return preformattedElements[tag]
}

package autodiff

import (
	"fmt"
	"io"
	"strings"
)

// WriteGraph writes an indented tree of the graph rooted at root, one node per
// line, operands nested under their result. A node shared by several results
// is expanded once; later occurrences are printed with a trailing "(seen)".
func WriteGraph(w io.Writer, root *Value) error {
	seen := make(map[*Value]bool)
	return writeNode(w, root, 0, seen)
}

func writeNode(w io.Writer, v *Value, depth int, seen map[*Value]bool) error {
	indent := strings.Repeat("  ", depth)
	if seen[v] {
		_, err := fmt.Fprintf(w, "%s%s (seen)\n", indent, v)
		return err
	}
	seen[v] = true

	if _, err := fmt.Fprintf(w, "%s%s\n", indent, v); err != nil {
		return err
	}
	for _, operand := range v.prev {
		if err := writeNode(w, operand, depth+1, seen); err != nil {
			return err
		}
	}
	return nil
}

package completion

import (
	"fmt"
	"strings"

	"github.com/udn/sorbet/internal/symtab"
)

// methodSnippet renders an insertable snippet with one numbered, typed
// placeholder per value-bearing argument. Block arguments are skipped
// entirely; keyword arguments keep their "name: " prefix outside the
// placeholder. The trailing ${0} parks the cursor after the call once the
// client accepts the snippet.
//
// A method put(key Integer, value: untyped) renders as
//
//	put(${1:Integer}, value: ${2})${0}
func (e *Engine) methodSnippet(method symtab.SymbolRef) string {
	data := e.tab.Symbol(method)

	var placeholders []string
	i := 1
	for _, arg := range data.Arguments {
		if arg.Block {
			continue
		}
		var s strings.Builder
		if arg.Keyword {
			fmt.Fprintf(&s, "%s: ", arg.Name)
		}
		if arg.Type != nil {
			fmt.Fprintf(&s, "${%d:%s}", i, arg.Type.Show(e.tab))
		} else {
			fmt.Fprintf(&s, "${%d}", i)
		}
		i++
		placeholders = append(placeholders, s.String())
	}

	return fmt.Sprintf("%s(%s)${0}", data.Name.Short, strings.Join(placeholders, ", "))
}

// methodDetail renders the signature shown next to a method completion:
// arguments with their types plus the result type, using the untyped
// marker wherever no type was recorded. receiverType and constr are the
// dispatch context the method was found under; declared types are already
// resolved in the snapshot, so rendering does not consult them today, but
// the renderer receives them for parity with the candidate record.
func (e *Engine) methodDetail(method symtab.SymbolRef, receiverType symtab.Type, constr *symtab.TypeConstraint) string {
	data := e.tab.Symbol(method)

	args := make([]string, 0, len(data.Arguments))
	for _, arg := range data.Arguments {
		var s strings.Builder
		if arg.Block {
			s.WriteString("&")
		}
		if arg.Keyword {
			fmt.Fprintf(&s, "%s: ", arg.Name)
		}
		if arg.Type != nil {
			s.WriteString(arg.Type.Show(e.tab))
		} else if !arg.Keyword {
			s.WriteString(arg.Name)
		} else {
			s.WriteString(symtab.Untyped().Show(e.tab))
		}
		args = append(args, s.String())
	}

	result := data.ResultType
	if result == nil {
		result = symtab.Untyped()
	}
	return fmt.Sprintf("%s(%s) -> %s", data.Name.Short, strings.Join(args, ", "), result.Show(e.tab))
}

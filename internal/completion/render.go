package completion

import (
	"fmt"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/udn/sorbet/internal/symtab"
)

// sortKeyWidth is the zero padding of the rendered sort key. Clients sort
// by sortText, so the key is simply the candidate's rank. Six digits caps
// the list at 1,000,000 items before ordering would break; bump the width
// if a completion list ever gets that long.
const sortKeyWidth = 6

// completionItem renders one ranked symbol into a protocol item. sortIdx
// is the symbol's position in the final ranking and becomes its sort key.
// receiverType and constr come from the dispatch component the candidate
// was found under; both may be nil for identifier and constant queries.
func (e *Engine) completionItem(what symtab.SymbolRef, receiverType symtab.Type, constr *symtab.TypeConstraint, sortIdx int, opts Options) protocol.CompletionItem {
	data := e.tab.Symbol(what)

	item := protocol.CompletionItem{
		Label:    data.Name.Short,
		SortText: fmt.Sprintf("%0*d", sortKeyWidth, sortIdx),
	}

	resultType := data.ResultType
	if resultType == nil {
		resultType = symtab.Untyped()
	}

	switch data.Kind {
	case symtab.KindMethod:
		item.Kind = protocol.CompletionItemKindMethod
		item.Detail = e.methodDetail(what, receiverType, constr)
		if opts.SnippetSupport {
			item.InsertTextFormat = protocol.InsertTextFormatSnippet
			item.InsertText = e.methodSnippet(what)
		} else {
			item.InsertTextFormat = protocol.InsertTextFormatPlainText
			item.InsertText = data.Name.Short
		}

		if doc, ok := e.documentationFor(what); ok {
			if strings.Contains(doc, deprecationMarker) {
				item.Deprecated = true
			}
			item.Documentation = protocol.MarkupContent{
				Kind:  opts.markupKind(),
				Value: doc,
			}
		}
	case symtab.KindStaticField:
		item.Kind = protocol.CompletionItemKindConstant
		item.Detail = resultType.Show(e.tab)
	case symtab.KindClassOrModule:
		item.Kind = protocol.CompletionItemKindClass
	}

	return item
}

// docKey identifies one declaration site for the documentation cache.
type docKey struct {
	path   string
	offset int
}

// documentationFor extracts the doc block above a symbol's declaration.
// Extraction is pure over the immutable snapshot, so results are memoized
// in an LRU keyed by declaration site.
func (e *Engine) documentationFor(what symtab.SymbolRef) (string, bool) {
	loc := e.tab.Symbol(what).Loc
	if loc == nil {
		return "", false
	}
	source, ok := e.tab.Source(loc.Path)
	if !ok {
		return "", false
	}

	key := docKey{path: loc.Path, offset: loc.Offset}
	if doc, ok := e.docs.Get(key); ok {
		return doc.text, doc.found
	}

	text, found := findDocumentation(source, loc.Offset)
	e.docs.Add(key, docEntry{text: text, found: found})
	return text, found
}

// docEntry caches both outcomes, so "no documentation" is not re-scanned.
type docEntry struct {
	text  string
	found bool
}

// similarConstantOrIdent handles identifier and constant queries: walk the
// owner chain of the receiving class up to the root, scanning each owner's
// direct members in stable order for classes, modules, and constants whose
// name is similar to the receiver's own short name. Matches are emitted in
// scan order; the sort key is just the emission index.
func (e *Engine) similarConstantOrIdent(receiverType symtab.Type, items *[]protocol.CompletionItem, opts Options) {
	class, ok := receiverType.(symtab.ClassType)
	if !ok {
		return
	}

	pattern := e.tab.Symbol(class.Symbol).Name.Short
	e.log.Debug("looking for constant with similar name", "pattern", pattern)

	owner := class.Symbol
	for {
		owner = e.tab.Symbol(owner).Owner
		for _, member := range e.tab.Symbol(owner).Members() {
			sym := e.tab.Symbol(member.Ref)
			if sym.Kind != symtab.KindClassOrModule && sym.Kind != symtab.KindStaticField {
				continue
			}
			if sym.Name.Kind != symtab.NameConstant {
				continue
			}
			if e.similar(sym.Name.Short, pattern) {
				*items = append(*items, e.completionItem(member.Ref, receiverType, nil, len(*items), opts))
			}
		}
		if owner == e.tab.Root() {
			return
		}
	}
}

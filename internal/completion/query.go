package completion

import (
	"io"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.lsp.dev/protocol"

	"github.com/udn/sorbet/internal/symtab"
)

// docCacheSize bounds the documentation-extraction cache. Entries are tiny
// and keyed per declaration site, so a few hundred covers a query easily.
const docCacheSize = 256

// Resolution is the already-resolved query this core consumes. The
// boundary produces exactly one of the variants below, or none at all
// (nil), which yields an empty completion list.
type Resolution interface {
	isResolution()
}

// SendResolution is a method call whose receiver type is known: complete
// method names similar to Prefix, reachable from the dispatch result.
type SendResolution struct {
	Prefix   string
	Dispatch *symtab.DispatchResult
}

// IdentifierResolution is a bare identifier reference: complete sibling
// constants and classes from the owner chain of the resolved type.
type IdentifierResolution struct {
	ResolvedType symtab.Type
}

// ConstantResolution is a constant reference; completion behaves exactly
// like the identifier case.
type ConstantResolution struct {
	ResolvedType symtab.Type
}

func (SendResolution) isResolution()       {}
func (IdentifierResolution) isResolution() {}
func (ConstantResolution) isResolution()   {}

// Options carries the requesting client's capabilities.
type Options struct {
	// SnippetSupport selects structured snippet insert text; without it
	// the bare short name is inserted as plain text.
	SnippetSupport bool
	// MarkupKind is the client's preferred documentation markup. Empty
	// defaults to plain text.
	MarkupKind protocol.MarkupKind
}

func (o Options) markupKind() protocol.MarkupKind {
	if o.MarkupKind == "" {
		return protocol.PlainText
	}
	return o.MarkupKind
}

// Engine runs completion queries against one immutable symbol-table
// snapshot. It holds no per-query state besides the doc cache, which is
// safe to reuse across queries for as long as the snapshot is valid.
type Engine struct {
	tab     *symtab.Table
	log     *slog.Logger
	similar SimilarityFunc
	docs    *lru.Cache[docKey, docEntry]
}

// NewEngine creates an engine over tab with the default similarity
// predicate. A nil logger discards debug output.
func NewEngine(tab *symtab.Table, logger *slog.Logger) *Engine {
	return NewEngineWithSimilarity(tab, logger, DefaultSimilarity)
}

// NewEngineWithSimilarity creates an engine with a custom similarity
// predicate. The predicate must match everything for an empty prefix and
// only get stricter as the prefix lengthens.
func NewEngineWithSimilarity(tab *symtab.Table, logger *slog.Logger, similar SimilarityFunc) *Engine {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	// Error is impossible for a positive fixed size.
	docs, _ := lru.New[docKey, docEntry](docCacheSize)
	return &Engine{
		tab:     tab,
		log:     logger,
		similar: similar,
		docs:    docs,
	}
}

// Complete runs one completion query and returns the ordered items. A nil
// resolution is the normal "nothing to complete here" outcome and returns
// an empty list, never an error.
func (e *Engine) Complete(res Resolution, opts Options) []protocol.CompletionItem {
	items := []protocol.CompletionItem{}

	switch r := res.(type) {
	case SendResolution:
		e.log.Debug("looking for method with similar name", "prefix", r.Prefix)
		if r.Dispatch == nil {
			return items
		}
		ranked := e.rank(e.allSimilarMethods(r.Dispatch, r.Prefix), r.Prefix)
		for _, c := range ranked {
			items = append(items, e.completionItem(c.method, c.receiverType, c.constr, len(items), opts))
		}
	case IdentifierResolution:
		e.similarConstantOrIdent(r.ResolvedType, &items, opts)
	case ConstantResolution:
		e.similarConstantOrIdent(r.ResolvedType, &items, opts)
	}

	return items
}

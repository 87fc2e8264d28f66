// Package symtab holds the resolved symbol table a completion query runs
// against: an arena of symbols with stable integer identities, the type
// representation, and dispatch results produced by the upstream resolver.
//
// Everything in this package is treated as an immutable snapshot for the
// duration of one query. The arena owns every symbol; owner and superclass
// references are plain indices into it, so back-references never form
// ownership cycles.
package symtab

import "fmt"

// SymbolRef is a stable index into a Table's arena. It doubles as the final
// tie-break in completion ranking, so insertion order is load-bearing for
// determinism.
type SymbolRef int32

// NoSymbol marks an absent reference (no superclass, unresolved method).
const NoSymbol SymbolRef = -1

// Exists reports whether the reference points at a symbol.
func (r SymbolRef) Exists() bool { return r != NoSymbol }

// Kind tags what a symbol declares. Exactly one kind is active per symbol.
type Kind uint8

const (
	KindClassOrModule Kind = iota
	KindMethod
	KindStaticField
	KindClassType
)

func (k Kind) String() string {
	switch k {
	case KindClassOrModule:
		return "class"
	case KindMethod:
		return "method"
	case KindStaticField:
		return "static-field"
	case KindClassType:
		return "class-type"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// NameKind distinguishes ordinary names, constant names, and
// compiler-synthesized unique names.
type NameKind uint8

const (
	NameUTF8 NameKind = iota
	NameConstant
	NameUnique
)

// UniqueKind says why a unique name was synthesized. Only MangleRename names
// are hidden from completion; overload names, for example, must stay visible
// so each overload variant shows up.
type UniqueKind uint8

const (
	UniqueNone UniqueKind = iota
	UniqueMangleRename
	UniqueOverload
)

// Name is a declared identifier. Short is the user-visible spelling; unique
// names additionally carry the synthesis kind and a disambiguating number.
type Name struct {
	Short      string
	Kind       NameKind
	UniqueKind UniqueKind
	UniqueNum  int
}

// Key returns the member-map key for the name. Unique names get a
// synthetic suffix so overloads of one short name occupy distinct slots.
func (n Name) Key() string {
	if n.Kind == NameUnique {
		return fmt.Sprintf("%s$%d", n.Short, n.UniqueNum)
	}
	return n.Short
}

// IsMangleRename reports whether the name is a desugaring artifact that must
// never surface as a completion.
func (n Name) IsMangleRename() bool {
	return n.Kind == NameUnique && n.UniqueKind == UniqueMangleRename
}

// ArgInfo describes one declared method argument.
type ArgInfo struct {
	Name    string
	Keyword bool
	Block   bool
	Type    Type // nil when the argument is untyped
}

// Loc points a declaration at a byte offset inside one of the table's
// embedded source texts.
type Loc struct {
	Path   string
	Offset int
}

// Member pairs a member-map key with the symbol it resolves to, in stable
// declaration order.
type Member struct {
	Key string
	Ref SymbolRef
}

// Symbol is one declared entity. Members are stored both as a map (lookup)
// and as an ordered list (deterministic scans).
type Symbol struct {
	Name       Name
	Kind       Kind
	Owner      SymbolRef
	Super      SymbolRef // NoSymbol except for classes below the root
	Mixins     []SymbolRef
	ResultType Type // nil when no result type was recorded
	Loc        *Loc
	Arguments  []ArgInfo // methods only, declaration order

	// LinearizationComputed is set by the upstream resolver once the
	// symbol's ancestor chain is final. The completion core refuses to
	// walk a symbol without it.
	LinearizationComputed bool

	members     map[string]SymbolRef
	memberOrder []string
}

// AddMember records a member under its name key, preserving insertion order.
func (s *Symbol) AddMember(name Name, ref SymbolRef) {
	if s.members == nil {
		s.members = make(map[string]SymbolRef)
	}
	key := name.Key()
	if _, ok := s.members[key]; !ok {
		s.memberOrder = append(s.memberOrder, key)
	}
	s.members[key] = ref
}

// Member looks up a member by name key.
func (s *Symbol) Member(key string) (SymbolRef, bool) {
	ref, ok := s.members[key]
	return ref, ok
}

// Members returns the symbol's direct members in stable declaration order.
func (s *Symbol) Members() []Member {
	out := make([]Member, 0, len(s.memberOrder))
	for _, key := range s.memberOrder {
		out = append(out, Member{Key: key, Ref: s.members[key]})
	}
	return out
}

// Table is the arena owning every symbol plus the source texts declarations
// point into. Index 0 is always the root scope.
type Table struct {
	symbols []Symbol
	sources map[string]string
}

// NewTable creates a table seeded with the root scope. The root owns itself,
// which terminates owner-chain walks.
func NewTable() *Table {
	t := &Table{sources: make(map[string]string)}
	t.Enter(Symbol{
		Name:                  Name{Short: "<root>", Kind: NameConstant},
		Kind:                  KindClassOrModule,
		Owner:                 0,
		Super:                 NoSymbol,
		LinearizationComputed: true,
	})
	return t
}

// Root returns the reference to the root scope.
func (t *Table) Root() SymbolRef { return 0 }

// Enter appends a symbol to the arena and returns its reference.
func (t *Table) Enter(sym Symbol) SymbolRef {
	t.symbols = append(t.symbols, sym)
	return SymbolRef(len(t.symbols) - 1)
}

// Symbol returns the arena entry for ref. The pointer is valid only until
// the next Enter; callers treat it as read-only during a query.
func (t *Table) Symbol(ref SymbolRef) *Symbol {
	return &t.symbols[ref]
}

// Len returns the number of symbols in the arena.
func (t *Table) Len() int { return len(t.symbols) }

// AddSource embeds a source text under path for doc-comment extraction.
func (t *Table) AddSource(path, text string) {
	t.sources[path] = text
}

// Source returns the embedded source text for path.
func (t *Table) Source(path string) (string, bool) {
	text, ok := t.sources[path]
	return text, ok
}

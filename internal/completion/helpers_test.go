package completion

import (
	"testing"

	"github.com/udn/sorbet/internal/symtab"
)

// tableBuilder assembles symbol tables for tests the way the upstream
// resolver would: classes marked linearization-computed, members registered
// under their owner in declaration order.
type tableBuilder struct {
	t   *testing.T
	tab *symtab.Table
}

func newTableBuilder(t *testing.T) *tableBuilder {
	t.Helper()
	return &tableBuilder{t: t, tab: symtab.NewTable()}
}

func (b *tableBuilder) class(name string) symtab.SymbolRef {
	b.t.Helper()
	ref := b.tab.Enter(symtab.Symbol{
		Name:                  symtab.Name{Short: name, Kind: symtab.NameConstant},
		Kind:                  symtab.KindClassOrModule,
		Owner:                 b.tab.Root(),
		Super:                 symtab.NoSymbol,
		LinearizationComputed: true,
	})
	b.tab.Symbol(b.tab.Root()).AddMember(b.tab.Symbol(ref).Name, ref)
	return ref
}

func (b *tableBuilder) classIn(name string, owner symtab.SymbolRef) symtab.SymbolRef {
	b.t.Helper()
	ref := b.class(name)
	b.tab.Symbol(ref).Owner = owner
	b.tab.Symbol(owner).AddMember(b.tab.Symbol(ref).Name, ref)
	return ref
}

func (b *tableBuilder) setSuper(class, super symtab.SymbolRef) {
	b.tab.Symbol(class).Super = super
}

func (b *tableBuilder) addMixin(class, mixin symtab.SymbolRef) {
	sym := b.tab.Symbol(class)
	sym.Mixins = append(sym.Mixins, mixin)
}

func (b *tableBuilder) method(owner symtab.SymbolRef, name string, args ...symtab.ArgInfo) symtab.SymbolRef {
	b.t.Helper()
	return b.methodNamed(owner, symtab.Name{Short: name}, args...)
}

func (b *tableBuilder) methodNamed(owner symtab.SymbolRef, name symtab.Name, args ...symtab.ArgInfo) symtab.SymbolRef {
	b.t.Helper()
	ref := b.tab.Enter(symtab.Symbol{
		Name:      name,
		Kind:      symtab.KindMethod,
		Owner:     owner,
		Super:     symtab.NoSymbol,
		Arguments: args,
	})
	b.tab.Symbol(owner).AddMember(name, ref)
	return ref
}

func (b *tableBuilder) static(owner symtab.SymbolRef, name string) symtab.SymbolRef {
	b.t.Helper()
	n := symtab.Name{Short: name, Kind: symtab.NameConstant}
	ref := b.tab.Enter(symtab.Symbol{
		Name:  n,
		Kind:  symtab.KindStaticField,
		Owner: owner,
		Super: symtab.NoSymbol,
	})
	b.tab.Symbol(owner).AddMember(n, ref)
	return ref
}

func (b *tableBuilder) engine() *Engine {
	return NewEngine(b.tab, nil)
}

// dispatchOver chains class receivers into a dispatch result, one
// component per receiver, the way union receivers decompose.
func dispatchOver(receivers ...symtab.Type) *symtab.DispatchResult {
	var result *symtab.DispatchResult
	for i := len(receivers) - 1; i >= 0; i-- {
		result = &symtab.DispatchResult{
			Main: symtab.DispatchComponent{
				Receiver: receivers[i],
				Method:   symtab.NoSymbol,
				Constr:   &symtab.TypeConstraint{},
			},
			Secondary: result,
		}
	}
	return result
}

// bucketSizes flattens candidate buckets to name -> list length.
func bucketSizes(byName candidatesByName) map[string]int {
	out := make(map[string]int, len(byName))
	for key, cands := range byName {
		out[key] = len(cands)
	}
	return out
}

// Package completion implements the resolution-and-ranking core behind
// "find similar identifiers" completion: it discovers declared symbols
// whose names are similar to a typed prefix and reachable from a receiver
// type, ranks them deterministically, and renders ready-to-insert items.
package completion

import (
	"fmt"

	"github.com/udn/sorbet/internal/symtab"
)

// ancestors returns the linearized ancestor chain of receiver: the symbol
// itself, its mixins in declaration order, then the superclass chain,
// recursively. The slice index is the candidate depth: 0 is the receiver,
// larger indices are progressively less specific ancestors.
func ancestors(tab *symtab.Table, receiver symtab.SymbolRef) []symtab.SymbolRef {
	return appendAncestors(tab, receiver, nil)
}

func appendAncestors(tab *symtab.Table, sym symtab.SymbolRef, acc []symtab.SymbolRef) []symtab.SymbolRef {
	data := tab.Symbol(sym)
	if !data.LinearizationComputed {
		// The upstream resolver ran out of order. This is a bug, not a
		// user error, so it must not degrade into an empty result.
		panic(fmt.Sprintf("completion: linearization not computed for %s", data.Name.Short))
	}

	acc = append(acc, sym)
	acc = append(acc, data.Mixins...)

	if data.Super.Exists() {
		return appendAncestors(tab, data.Super, acc)
	}
	return acc
}

package completion

import (
	"github.com/udn/sorbet/internal/symtab"
)

// candidate is one similar method discovered during the hierarchy walk.
// Receiver type and constraint are stamped exactly once, after discovery,
// from the dispatch component that produced the candidate.
type candidate struct {
	depth    int
	ancestor symtab.SymbolRef
	method   symtab.SymbolRef

	// Populated later by allSimilarMethods.
	receiverType symtab.Type
	constr       *symtab.TypeConstraint
}

// candidatesByName buckets candidates by member name key. Lists are
// append-only: a same-named hit at a deeper ancestor becomes an extra
// entry, never a replacement.
type candidatesByName map[string][]*candidate

// similarMethodsForClass scans the linearized ancestors of receiver for
// directly declared methods whose name is similar to prefix. The hierarchy
// walk already expands inheritance, so each ancestor contributes only its
// own members.
func (e *Engine) similarMethodsForClass(receiver symtab.SymbolRef, prefix string) candidatesByName {
	result := candidatesByName{}

	for depth, ancestor := range ancestors(e.tab, receiver) {
		for _, member := range e.tab.Symbol(ancestor).Members() {
			sym := e.tab.Symbol(member.Ref)
			if sym.Kind != symtab.KindMethod {
				continue
			}
			if e.similar(sym.Name.Short, prefix) {
				result[member.Key] = append(result[member.Key], &candidate{
					depth:    depth,
					ancestor: ancestor,
					method:   member.Ref,
				})
			}
		}
	}
	return result
}

// mergeSimilarMethods unconditionally intersects the two bucket maps by
// name, concatenating the surviving lists. Calling a method on a compound
// receiver is only valid if the method exists on every component, so
// intersection is the combining rule for both AND and OR shapes.
func mergeSimilarMethods(left, right candidatesByName) candidatesByName {
	result := candidatesByName{}

	for name, leftCands := range left {
		rightCands, ok := right[name]
		if !ok {
			continue
		}
		merged := make([]*candidate, 0, len(leftCands)+len(rightCands))
		merged = append(merged, leftCands...)
		merged = append(merged, rightCands...)
		result[name] = merged
	}
	return result
}

// similarMethodsForReceiver maps a receiver type to candidate buckets.
// Unknown shapes, including bare unions and opaque types, silently yield
// nothing: an empty result is the correct outcome, not an error.
func (e *Engine) similarMethodsForReceiver(receiver symtab.Type, prefix string) candidatesByName {
	switch t := receiver.(type) {
	case symtab.ClassType:
		return e.similarMethodsForClass(t.Symbol, prefix)
	case symtab.AppliedType:
		return e.similarMethodsForClass(t.Symbol, prefix)
	case symtab.AndType:
		return mergeSimilarMethods(
			e.similarMethodsForReceiver(t.Left, prefix),
			e.similarMethodsForReceiver(t.Right, prefix),
		)
	case symtab.ProxyType:
		return e.similarMethodsForReceiver(t.Underlying, prefix)
	default:
		return candidatesByName{}
	}
}

// allSimilarMethods walks a dispatch result to find methods similar to
// prefix on any of its components' receivers. Every candidate found under
// a component is stamped with that component's receiver type and its
// shared constraint before secondary components are merged in.
func (e *Engine) allSimilarMethods(dispatch *symtab.DispatchResult, prefix string) candidatesByName {
	result := e.similarMethodsForReceiver(dispatch.Main.Receiver, prefix)
	stampComponent(result, dispatch.Main)

	if dispatch.Secondary != nil {
		// The secondary kind (AND or OR) is ignored here; merging always
		// intersects. Known simplification, kept on purpose.
		result = mergeSimilarMethods(result, e.allSimilarMethods(dispatch.Secondary, prefix))
	}
	return result
}

// stampComponent assigns the component's receiver type and shared
// constraint to every candidate found under it. Each candidate is stamped
// exactly once; hitting an already-stamped candidate is a bug in the walk.
func stampComponent(byName candidatesByName, comp symtab.DispatchComponent) {
	for _, cands := range byName {
		for _, c := range cands {
			if c.receiverType != nil {
				panic("completion: about to overwrite non-nil receiver type")
			}
			c.receiverType = comp.Receiver

			if c.constr != nil {
				panic("completion: about to overwrite non-nil constraint")
			}
			c.constr = comp.Constr
		}
	}
}

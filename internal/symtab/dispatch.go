package symtab

// TypeConstraint is opaque solver state produced while resolving a call.
// It is shared by pointer across every candidate discovered under one
// dispatch component; identity matters, contents do not (to this package).
type TypeConstraint struct {
	// Bindings collected by the solver. Kept only so debug output can say
	// something useful about the constraint.
	Label string
}

// DispatchComponent is one resolved outcome of a method call against one
// receiver type.
type DispatchComponent struct {
	Receiver Type
	Method   SymbolRef // NoSymbol when resolution found nothing
	Constr   *TypeConstraint
}

// DispatchResult is the outcome of resolving a call. Union receivers
// decompose into a chain of results: Main covers the first component and
// Secondary nests the rest, one link per union member.
type DispatchResult struct {
	Main      DispatchComponent
	Secondary *DispatchResult
}

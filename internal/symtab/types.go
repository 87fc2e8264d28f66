package symtab

import (
	"fmt"
	"strings"
)

// Type is the closed set of type variants the dispatcher understands.
// Variants are immutable and value-shared; never mutate one after
// construction. The sealed marker keeps the set closed so every type switch
// stays exhaustive when a variant is added.
type Type interface {
	// Show renders the type for display in completion details.
	Show(t *Table) string

	isType()
}

// ClassType is a plain, non-generic class or module type.
type ClassType struct {
	Symbol SymbolRef
}

// AppliedType is a generic class instantiated with type arguments.
type AppliedType struct {
	Symbol SymbolRef
	Args   []Type
}

// AndType is an intersection: a call must succeed on both components.
type AndType struct {
	Left  Type
	Right Type
}

// OrType is a union. The dispatcher has no case for it: bare unions reach
// completion only decomposed into DispatchResult secondary components, so a
// bare OrType receiver yields no candidates.
type OrType struct {
	Left  Type
	Right Type
}

// ProxyType transparently wraps an underlying type (literal types,
// self-types). Dispatch looks straight through it.
type ProxyType struct {
	Underlying Type
}

// OpaqueType stands in for anything the dispatcher cannot see into:
// untyped values, type variables, and so on.
type OpaqueType struct{}

func (ClassType) isType()   {}
func (AppliedType) isType() {}
func (AndType) isType()     {}
func (OrType) isType()      {}
func (ProxyType) isType()   {}
func (OpaqueType) isType()  {}

// Untyped returns the display stand-in used when no type was recorded.
func Untyped() Type { return OpaqueType{} }

func (c ClassType) Show(t *Table) string {
	return t.Symbol(c.Symbol).Name.Short
}

func (a AppliedType) Show(t *Table) string {
	if len(a.Args) == 0 {
		return t.Symbol(a.Symbol).Name.Short
	}
	args := make([]string, len(a.Args))
	for i, arg := range a.Args {
		args[i] = arg.Show(t)
	}
	return fmt.Sprintf("%s[%s]", t.Symbol(a.Symbol).Name.Short, strings.Join(args, ", "))
}

func (a AndType) Show(t *Table) string {
	return fmt.Sprintf("T.all(%s, %s)", a.Left.Show(t), a.Right.Show(t))
}

func (o OrType) Show(t *Table) string {
	return fmt.Sprintf("T.any(%s, %s)", o.Left.Show(t), o.Right.Show(t))
}

func (p ProxyType) Show(t *Table) string {
	return p.Underlying.Show(t)
}

func (OpaqueType) Show(*Table) string {
	return "T.untyped"
}

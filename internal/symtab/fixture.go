package symtab

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udn/sorbet/internal/errors"
)

// Fixture is the YAML shape of a symbol-table snapshot. It stands in for
// the upstream resolver: loading a fixture produces a Table with every
// class marked linearization-computed, ready for completion queries.
type Fixture struct {
	Classes []FixtureClass    `yaml:"classes"`
	Sources map[string]string `yaml:"sources"`
}

// FixtureClass declares one class or module.
type FixtureClass struct {
	Name       string          `yaml:"name"`
	Owner      string          `yaml:"owner"`
	SuperClass string          `yaml:"superclass"`
	Mixins     []string        `yaml:"mixins"`
	Methods    []FixtureMethod `yaml:"methods"`
	Statics    []FixtureStatic `yaml:"statics"`
}

// FixtureMethod declares one method member.
type FixtureMethod struct {
	Name    string       `yaml:"name"`
	Args    []FixtureArg `yaml:"args"`
	Returns string       `yaml:"returns"`
	Loc     *FixtureLoc  `yaml:"loc"`
	// Unique marks a compiler-synthesized name: "overload" or "mangle".
	Unique string `yaml:"unique"`
	Num    int    `yaml:"num"`
}

// FixtureArg declares one method argument.
type FixtureArg struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	Keyword bool   `yaml:"keyword"`
	Block   bool   `yaml:"block"`
}

// FixtureStatic declares one static-field member.
type FixtureStatic struct {
	Name string      `yaml:"name"`
	Type string      `yaml:"type"`
	Loc  *FixtureLoc `yaml:"loc"`
}

// FixtureLoc points a declaration into one of the fixture's sources.
type FixtureLoc struct {
	Path   string `yaml:"path"`
	Offset int    `yaml:"offset"`
}

// LoadFixtureFile reads and builds a table from a YAML fixture on disk.
func LoadFixtureFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err).
				WithSuggestion("check the --fixture path")
		}
		return nil, errors.Wrap(errors.ErrCodeFileRead, err)
	}
	return LoadFixture(data)
}

// LoadFixture builds a table from YAML fixture bytes.
func LoadFixture(data []byte) (*Table, error) {
	var fx Fixture
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return nil, errors.Wrap(errors.ErrCodeFixtureParse, err)
	}
	return fx.Build()
}

// Build materializes the fixture into a Table. Class-name references in
// type positions (superclass, mixins, argument and result types) that no
// fixture class declares are interned as empty classes under the root, the
// way a resolver stubs unresolved constants. Owner references must name a
// declared class.
func (fx *Fixture) Build() (*Table, error) {
	tab := NewTable()
	classes := make(map[string]SymbolRef, len(fx.Classes))

	// Declare every class first so forward references resolve.
	for _, fc := range fx.Classes {
		if fc.Name == "" {
			return nil, errors.Newf(errors.ErrCodeFixtureParse, "class with empty name")
		}
		if _, ok := classes[fc.Name]; ok {
			return nil, errors.Newf(errors.ErrCodeFixtureDuplicate, "class %q declared twice", fc.Name)
		}
		ref := tab.Enter(Symbol{
			Name:                  Name{Short: fc.Name, Kind: NameConstant},
			Kind:                  KindClassOrModule,
			Owner:                 tab.Root(),
			Super:                 NoSymbol,
			LinearizationComputed: true,
		})
		classes[fc.Name] = ref
	}

	intern := func(name string) SymbolRef {
		if ref, ok := classes[name]; ok {
			return ref
		}
		ref := tab.Enter(Symbol{
			Name:                  Name{Short: name, Kind: NameConstant},
			Kind:                  KindClassOrModule,
			Owner:                 tab.Root(),
			Super:                 NoSymbol,
			LinearizationComputed: true,
		})
		classes[name] = ref
		tab.Symbol(tab.Root()).AddMember(Name{Short: name, Kind: NameConstant}, ref)
		return ref
	}
	classType := func(name string) Type {
		if name == "" {
			return nil
		}
		return ClassType{Symbol: intern(name)}
	}

	for _, fc := range fx.Classes {
		ref := classes[fc.Name]

		owner := tab.Root()
		if fc.Owner != "" {
			o, ok := classes[fc.Owner]
			if !ok {
				return nil, errors.Newf(errors.ErrCodeFixtureUnresolved,
					"class %q names unknown owner %q", fc.Name, fc.Owner)
			}
			owner = o
		}
		tab.Symbol(ref).Owner = owner
		tab.Symbol(owner).AddMember(tab.Symbol(ref).Name, ref)

		// intern may grow the arena and invalidate Symbol pointers, so
		// resolve every reference before fetching the target symbol.
		if fc.SuperClass != "" {
			super := intern(fc.SuperClass)
			tab.Symbol(ref).Super = super
		}
		if len(fc.Mixins) > 0 {
			mixins := make([]SymbolRef, 0, len(fc.Mixins))
			for _, mixin := range fc.Mixins {
				mixins = append(mixins, intern(mixin))
			}
			tab.Symbol(ref).Mixins = mixins
		}

		for _, fm := range fc.Methods {
			name := Name{Short: fm.Name}
			switch fm.Unique {
			case "":
			case "overload":
				name.Kind = NameUnique
				name.UniqueKind = UniqueOverload
				name.UniqueNum = fm.Num
			case "mangle":
				name.Kind = NameUnique
				name.UniqueKind = UniqueMangleRename
				name.UniqueNum = fm.Num
			default:
				return nil, errors.Newf(errors.ErrCodeFixtureParse,
					"method %s.%s: unknown unique kind %q", fc.Name, fm.Name, fm.Unique)
			}

			args := make([]ArgInfo, 0, len(fm.Args))
			for _, fa := range fm.Args {
				args = append(args, ArgInfo{
					Name:    fa.Name,
					Keyword: fa.Keyword,
					Block:   fa.Block,
					Type:    classType(fa.Type),
				})
			}

			m := tab.Enter(Symbol{
				Name:       name,
				Kind:       KindMethod,
				Owner:      ref,
				Super:      NoSymbol,
				ResultType: classType(fm.Returns),
				Arguments:  args,
				Loc:        fm.Loc.toLoc(),
			})
			tab.Symbol(ref).AddMember(name, m)
		}

		for _, fs := range fc.Statics {
			name := Name{Short: fs.Name, Kind: NameConstant}
			s := tab.Enter(Symbol{
				Name:       name,
				Kind:       KindStaticField,
				Owner:      ref,
				Super:      NoSymbol,
				ResultType: classType(fs.Type),
				Loc:        fs.Loc.toLoc(),
			})
			tab.Symbol(ref).AddMember(name, s)
		}
	}

	for path, text := range fx.Sources {
		tab.AddSource(path, text)
	}
	return tab, nil
}

// ClassRef looks up a declared class by its short name, searching the whole
// arena. Used by the CLI to turn a receiver name into a type.
func (t *Table) ClassRef(name string) (SymbolRef, bool) {
	for i := range t.symbols {
		if t.symbols[i].Kind == KindClassOrModule && t.symbols[i].Name.Short == name {
			return SymbolRef(i), true
		}
	}
	return NoSymbol, false
}

func (fl *FixtureLoc) toLoc() *Loc {
	if fl == nil {
		return nil
	}
	return &Loc{Path: fl.Path, Offset: fl.Offset}
}

package symtab

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udn/sorbet/internal/errors"
)

const basicFixture = `
classes:
  - name: Animal
    methods:
      - name: speak
        returns: String
  - name: Dog
    superclass: Animal
    mixins: [Walkable]
    methods:
      - name: fetch
        args:
          - name: what
            type: String
          - name: speed
            keyword: true
            type: Integer
          - name: blk
            block: true
        returns: Bool
        loc: {path: dog.rb, offset: 24}
    statics:
      - name: LEGS
        type: Integer
sources:
  dog.rb: |
    class Dog
      # Fetches the thing.
      def fetch(what, speed:, &blk); end
    end
`

func TestLoadFixture_Basic(t *testing.T) {
	tab, err := LoadFixture([]byte(basicFixture))
	require.NoError(t, err)

	dog, ok := tab.ClassRef("Dog")
	require.True(t, ok)
	data := tab.Symbol(dog)
	assert.True(t, data.LinearizationComputed)
	assert.Equal(t, KindClassOrModule, data.Kind)
	assert.Equal(t, tab.Root(), data.Owner)

	// superclass resolves to the declared Animal, mixins are interned.
	animal, ok := tab.ClassRef("Animal")
	require.True(t, ok)
	assert.Equal(t, animal, data.Super)
	require.Len(t, data.Mixins, 1)
	assert.Equal(t, "Walkable", tab.Symbol(data.Mixins[0]).Name.Short)

	fetchRef, ok := data.Member("fetch")
	require.True(t, ok)
	fetch := tab.Symbol(fetchRef)
	assert.Equal(t, KindMethod, fetch.Kind)
	require.Len(t, fetch.Arguments, 3)
	assert.Equal(t, "String", fetch.Arguments[0].Type.Show(tab))
	assert.True(t, fetch.Arguments[1].Keyword)
	assert.True(t, fetch.Arguments[2].Block)
	assert.Equal(t, "Bool", fetch.ResultType.Show(tab))
	require.NotNil(t, fetch.Loc)
	assert.Equal(t, "dog.rb", fetch.Loc.Path)

	legsRef, ok := data.Member("LEGS")
	require.True(t, ok)
	legs := tab.Symbol(legsRef)
	assert.Equal(t, KindStaticField, legs.Kind)
	assert.Equal(t, NameConstant, legs.Name.Kind)

	_, ok = tab.Source("dog.rb")
	assert.True(t, ok)
}

func TestLoadFixture_UniqueNames(t *testing.T) {
	tab, err := LoadFixture([]byte(`
classes:
  - name: C
    methods:
      - {name: run, unique: overload, num: 1}
      - {name: tmp, unique: mangle, num: 3}
`))
	require.NoError(t, err)

	c, _ := tab.ClassRef("C")
	runRef, ok := tab.Symbol(c).Member("run$1")
	require.True(t, ok)
	assert.Equal(t, UniqueOverload, tab.Symbol(runRef).Name.UniqueKind)

	tmpRef, ok := tab.Symbol(c).Member("tmp$3")
	require.True(t, ok)
	assert.True(t, tab.Symbol(tmpRef).Name.IsMangleRename())
}

func TestLoadFixture_NestedOwner(t *testing.T) {
	tab, err := LoadFixture([]byte(`
classes:
  - name: Outer
  - name: Inner
    owner: Outer
`))
	require.NoError(t, err)

	outer, _ := tab.ClassRef("Outer")
	inner, _ := tab.ClassRef("Inner")
	assert.Equal(t, outer, tab.Symbol(inner).Owner)

	ref, ok := tab.Symbol(outer).Member("Inner")
	require.True(t, ok)
	assert.Equal(t, inner, ref)
}

func TestLoadFixture_InternedLinksSurviveArenaGrowth(t *testing.T) {
	// Interning an undeclared superclass or mixin grows the arena, which
	// can reallocate its backing array. The links on the referring class
	// must land in the live entries, not a stale copy. Sweep the declared
	// class count so the interning append crosses a capacity boundary.
	for n := 1; n <= 16; n++ {
		t.Run(fmt.Sprintf("%d_declared", n), func(t *testing.T) {
			var sb strings.Builder
			sb.WriteString("classes:\n")
			for i := 0; i < n-1; i++ {
				fmt.Fprintf(&sb, "  - name: Pad%d\n", i)
			}
			sb.WriteString("  - name: Leaf\n    superclass: Base\n    mixins: [Helper]\n")

			tab, err := LoadFixture([]byte(sb.String()))
			require.NoError(t, err)

			leaf, ok := tab.ClassRef("Leaf")
			require.True(t, ok)
			base, ok := tab.ClassRef("Base")
			require.True(t, ok)
			helper, ok := tab.ClassRef("Helper")
			require.True(t, ok)

			assert.Equal(t, base, tab.Symbol(leaf).Super)
			require.Len(t, tab.Symbol(leaf).Mixins, 1)
			assert.Equal(t, helper, tab.Symbol(leaf).Mixins[0])
		})
	}
}

func TestLoadFixture_Errors(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		wantCode string
	}{
		{"bad yaml", "classes: [", errors.ErrCodeFixtureParse},
		{"empty class name", "classes:\n  - methods: []", errors.ErrCodeFixtureParse},
		{"duplicate class", "classes:\n  - name: A\n  - name: A", errors.ErrCodeFixtureDuplicate},
		{"unknown owner", "classes:\n  - name: A\n    owner: Nope", errors.ErrCodeFixtureUnresolved},
		{"bad unique kind", "classes:\n  - name: A\n    methods:\n      - {name: m, unique: wat}", errors.ErrCodeFixtureParse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFixture([]byte(tt.yaml))
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, errors.GetCode(err))
		})
	}
}

func TestLoadFixtureFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.yaml")
	require.NoError(t, os.WriteFile(path, []byte(basicFixture), 0o644))

	tab, err := LoadFixtureFile(path)
	require.NoError(t, err)
	_, ok := tab.ClassRef("Dog")
	assert.True(t, ok)

	_, err = LoadFixtureFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeFileNotFound, errors.GetCode(err))
}

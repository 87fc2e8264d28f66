package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.lsp.dev/protocol"

	"github.com/udn/sorbet/internal/completion"
	"github.com/udn/sorbet/internal/errors"
	"github.com/udn/sorbet/internal/symtab"
	"github.com/udn/sorbet/internal/ui"
)

// newCompleteCmd creates the complete command.
func newCompleteCmd() *cobra.Command {
	var fixturePath string
	var methodQuery string
	var identQuery string
	var constQuery string
	var snippets bool
	var markup string

	cmd := &cobra.Command{
		Use:   "complete",
		Short: "Run one completion query against a fixture",
		Long: `Run one completion query against a symbol-table fixture.

Query forms:
  --method 'Recv.pre'    method-call completion on receiver Recv with
                         typed prefix 'pre'; 'A|B.pre' dispatches over the
                         union of A and B
  --ident  'Name'        identifier completion from Name's owner chain
  --const  'Name'        constant completion from Name's owner chain`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tab, err := symtab.LoadFixtureFile(fixturePath)
			if err != nil {
				return err
			}

			res, err := buildResolution(tab, methodQuery, identQuery, constQuery)
			if err != nil {
				return err
			}

			engine := completion.NewEngine(tab, newLogger())
			items := engine.Complete(res, completion.Options{
				SnippetSupport: snippets,
				MarkupKind:     protocol.MarkupKind(markup),
			})

			printItems(cmd, items)
			return nil
		},
	}

	cmd.Flags().StringVar(&fixturePath, "fixture", "", "Path to the symbol-table fixture (YAML)")
	cmd.Flags().StringVar(&methodQuery, "method", "", "Method-call query: 'Recv.prefix' or 'A|B.prefix'")
	cmd.Flags().StringVar(&identQuery, "ident", "", "Identifier query: class name to match siblings of")
	cmd.Flags().StringVar(&constQuery, "const", "", "Constant query: class name to match siblings of")
	cmd.Flags().BoolVar(&snippets, "snippets", false, "Render structured snippets as insert text")
	cmd.Flags().StringVar(&markup, "markup", "plaintext", "Documentation markup kind (plaintext, markdown)")
	_ = cmd.MarkFlagRequired("fixture")

	return cmd
}

// buildResolution turns the query flags into the single resolved query the
// engine consumes. Exactly one query flag must be set.
func buildResolution(tab *symtab.Table, methodQuery, identQuery, constQuery string) (completion.Resolution, error) {
	set := 0
	for _, q := range []string{methodQuery, identQuery, constQuery} {
		if q != "" {
			set++
		}
	}
	if set != 1 {
		return nil, errors.Newf(errors.ErrCodeInvalidQuery,
			"exactly one of --method, --ident, --const must be given").
			WithSuggestion("see 'sorbet-complete complete --help' for query forms")
	}

	switch {
	case methodQuery != "":
		dot := strings.LastIndex(methodQuery, ".")
		if dot < 1 {
			return nil, errors.Newf(errors.ErrCodeInvalidQuery,
				"--method wants 'Receiver.prefix', got %q", methodQuery)
		}
		dispatch, err := dispatchFor(tab, methodQuery[:dot])
		if err != nil {
			return nil, err
		}
		return completion.SendResolution{Prefix: methodQuery[dot+1:], Dispatch: dispatch}, nil
	case identQuery != "":
		t, err := classTypeFor(tab, identQuery)
		if err != nil {
			return nil, err
		}
		return completion.IdentifierResolution{ResolvedType: t}, nil
	default:
		t, err := classTypeFor(tab, constQuery)
		if err != nil {
			return nil, err
		}
		return completion.ConstantResolution{ResolvedType: t}, nil
	}
}

// dispatchFor builds the dispatch result for a receiver expression. A '|'
// separated receiver becomes a chain of dispatch components, one per union
// member, each with its own constraint.
func dispatchFor(tab *symtab.Table, receiver string) (*symtab.DispatchResult, error) {
	parts := strings.Split(receiver, "|")

	var result *symtab.DispatchResult
	for i := len(parts) - 1; i >= 0; i-- {
		t, err := classTypeFor(tab, strings.TrimSpace(parts[i]))
		if err != nil {
			return nil, err
		}
		result = &symtab.DispatchResult{
			Main: symtab.DispatchComponent{
				Receiver: t,
				Method:   symtab.NoSymbol,
				Constr:   &symtab.TypeConstraint{Label: strings.TrimSpace(parts[i])},
			},
			Secondary: result,
		}
	}
	return result, nil
}

func classTypeFor(tab *symtab.Table, name string) (symtab.Type, error) {
	ref, ok := tab.ClassRef(name)
	if !ok {
		return nil, errors.Newf(errors.ErrCodeUnknownReceiver, "fixture declares no class %q", name).
			WithSuggestion("class names are case-sensitive; check the fixture's classes list")
	}
	return symtab.ClassType{Symbol: ref}, nil
}

// printItems renders the ranked items, one per line, most relevant first.
func printItems(cmd *cobra.Command, items []protocol.CompletionItem) {
	styles := ui.DefaultStyles()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, styles.Header.Render(fmt.Sprintf("%d completion items", len(items))))
	for _, item := range items {
		label := styles.Label.Render(item.Label)
		if item.Deprecated {
			label = styles.Deprecated.Render(item.Label)
		}
		line := fmt.Sprintf("%s  %s  %s",
			styles.SortKey.Render(item.SortText),
			label,
			styles.Kind.Render(kindName(item.Kind)),
		)
		if item.Detail != "" {
			line += "  " + styles.Detail.Render(item.Detail)
		}
		if item.InsertTextFormat == protocol.InsertTextFormatSnippet {
			line += "  " + styles.Detail.Render(item.InsertText)
		}
		fmt.Fprintln(out, line)
		if doc, ok := item.Documentation.(protocol.MarkupContent); ok {
			for _, docLine := range strings.Split(doc.Value, "\n") {
				fmt.Fprintln(out, "        "+styles.Doc.Render(docLine))
			}
		}
	}
}

func kindName(kind protocol.CompletionItemKind) string {
	switch kind {
	case protocol.CompletionItemKindMethod:
		return "method"
	case protocol.CompletionItemKindConstant:
		return "constant"
	case protocol.CompletionItemKindClass:
		return "class"
	default:
		return "item"
	}
}

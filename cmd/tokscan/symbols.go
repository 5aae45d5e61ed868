package main

import (
	"strings"

	"github.com/spf13/cobra"
)

func (a *app) symbolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "symbols",
		Short: "Print the symbol table derived from the language",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.scanner()
			if err != nil {
				return err
			}
			t := s.Table()

			a.printRow("keywords", t.Keywords())
			a.printRow("symbols", t.Symbols())
			a.printRow("simple", t.SimpleSymbols())
			a.printRow("multiple", t.MultipleSymbols())
			a.printRow("firsts", chars(t.SymbolFirsts()))
			a.printRow("rests", chars(t.SymbolRests()))
			a.printRow("ambiguous", chars(t.Ambiguous()))
			return nil
		},
	}
}

func (a *app) printRow(label string, items []string) {
	value := strings.Join(items, " ")
	if len(items) == 0 {
		value = Colorize("(none)", ColorGray, a.useColor)
	}
	a.printf("%-10s %s\n", label+":", value)
}

func chars(set []byte) []string {
	out := make([]string, len(set))
	for i, ch := range set {
		out[i] = string(ch)
	}
	return out
}

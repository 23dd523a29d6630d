package main

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nupi-ai/localecodes/codes/codeset"
	"github.com/nupi-ai/localecodes/codes/country"
	"github.com/nupi-ai/localecodes/codes/currency"
	"github.com/nupi-ai/localecodes/codes/language"
	"github.com/nupi-ai/localecodes/codes/region"
	"github.com/nupi-ai/localecodes/codes/script"
)

// listers maps the names accepted by `list` to the key enumerations.
var listers = map[string]func() []string{
	"codesets":   codeset.AllNames,
	"languages":  language.AllCodes,
	"countries":  country.AllCodes,
	"regions":    func() []string { return formatNumeric(region.AllCodes()) },
	"currencies": currency.AllAlphaCodes,
	"scripts":    script.AllAlphaCodes,
}

func listNames() []string {
	names := make([]string, 0, len(listers))
	for name := range listers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "list <registry>",
		Short:     "List every code in a registry",
		Long:      "List every code in a registry. Registries: " + strings.Join(listNames(), ", ") + ".",
		Args:      cobra.ExactArgs(1),
		ValidArgs: listNames(),
		RunE:      runList,
	}
}

type keyList []string

func (l keyList) renderText(w io.Writer) {
	for _, k := range l {
		fmt.Fprintln(w, k)
	}
}

func runList(cmd *cobra.Command, args []string) error {
	out := newOutputFormatter(cmd)
	list, ok := listers[args[0]]
	if !ok {
		return fmt.Errorf("unknown registry %q (want one of %s)", args[0], strings.Join(listNames(), ", "))
	}
	return out.Print(keyList(list()))
}

func formatNumeric(codes []uint16) []string {
	out := make([]string, len(codes))
	for i, c := range codes {
		out[i] = strconv.Itoa(int(c))
	}
	return out
}

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skein-lang/skein/frontend/sig"
)

var ResolveCmd = &cobra.Command{
	Use:          "resolve ./folder|file.sk name [value...]",
	Short:        "Show which definition a call would dispatch to",
	Long:         "Resolve takes a checked project, a name and a stack (bottom first; bytes as 0-255, quotations as {text}) and prints the definition the call dispatches to.",
	RunE:         runResolve,
	Args:         cobra.MinimumNArgs(2),
	SilenceUsage: true,
}

func runResolve(cmd *cobra.Command, args []string) error {
	pkg, err := loadAndReport(args[0])
	if err != nil {
		return err
	}
	if pkg.HasErrors() {
		return fmt.Errorf("found errors in %s", pkg.Name())
	}

	name := args[1]
	values := make([]sig.Value, 0, len(args)-2)
	for _, arg := range args[2:] {
		v, err := parseValue(arg)
		if err != nil {
			return err
		}
		values = append(values, v)
	}

	def, ok := pkg.Resolve(name, values)
	if !ok {
		return fmt.Errorf("no definition of '%s' matches that stack", name)
	}
	position := pkg.FileSet().Position(def.Pos())
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n  at %s\n", def.Signature(), position)
	return nil
}

func parseValue(arg string) (sig.Value, error) {
	if strings.HasPrefix(arg, "{") && strings.HasSuffix(arg, "}") {
		return sig.QuotationValue(arg[1 : len(arg)-1]), nil
	}
	n, err := strconv.ParseUint(arg, 0, 64)
	if err != nil || n > 255 {
		return nil, fmt.Errorf("value %q is neither a byte (0-255) nor a quotation ({text})", arg)
	}
	return sig.ByteValue(byte(n)), nil
}

package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/skein-lang/skein/frontend/skerr"
	"github.com/skein-lang/skein/internal/log"
	"github.com/skein-lang/skein/skein"
)

var CheckCmd = &cobra.Command{
	Use:          "check ./folder|file.sk",
	Short:        "Check a skein project",
	RunE:         runCheck,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

var logLevel *int

func init() {
	logLevel = CheckCmd.Flags().IntP("log-level", "l", int(slog.LevelError), "log level")
}

func runCheck(cmd *cobra.Command, args []string) error {
	log.SetLevel(slog.Level(*logLevel))

	target, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("could not get absolute path of target: %w", err)
	}
	pkg, err := loadAndReport(target)
	if err != nil {
		return err
	}
	if pkg.HasErrors() {
		return fmt.Errorf("found errors in %s", pkg.Name())
	}
	return nil
}

// loadAndReport loads target and prints every diagnostic to stderr.
func loadAndReport(target string) (*skein.Package, error) {
	pkg, err := skein.Load(target)
	if err != nil {
		return nil, fmt.Errorf("could not load package (this is a bug and not a compile error): %w", err)
	}
	color := isatty.IsTerminal(os.Stderr.Fd())
	for _, d := range pkg.Diagnostics() {
		_, _ = fmt.Fprintln(os.Stderr, skerr.Render(d, pkg.FileSet(), color))
	}
	return pkg, nil
}

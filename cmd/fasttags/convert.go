package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/alucardeht/fasttags/pkg/ft/htmlconv"
)

var (
	convertAttrsFirst bool
	convertStrict     bool
	convertPkg        string
	convertPlain      bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert HTML into a tag expression",
	Long: `Convert HTML markup into the equivalent Go tag expression. Reads
from the named file, or from stdin when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().BoolVar(&convertAttrsFirst, "attrs-first", false,
		"emit attributes before children")
	convertCmd.Flags().BoolVar(&convertStrict, "strict", false,
		"fail on empty or unsafe markup instead of warning")
	convertCmd.Flags().StringVar(&convertPkg, "pkg", "ft",
		"package qualifier used in the generated expression")
	convertCmd.Flags().BoolVar(&convertPlain, "plain", false,
		"disable syntax highlighting even on a terminal")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	var markup []byte
	var err error

	if len(args) == 1 {
		markup, err = os.ReadFile(args[0])
	} else {
		markup, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return err
	}

	if convertStrict {
		if _, perr := htmlconv.ParseOptions(string(markup), htmlconv.Options{Strict: true}); perr != nil {
			return perr
		}
	}

	expr, err := htmlconv.ExprWith(string(markup), htmlconv.ExprOptions{
		AttrsFirst: convertAttrsFirst,
		Pkg:        convertPkg,
	})
	if err != nil {
		return err
	}

	if !convertPlain && isatty.IsTerminal(os.Stdout.Fd()) {
		var sb strings.Builder
		if herr := quick.Highlight(&sb, expr, "go", "terminal256", "monokai"); herr == nil {
			fmt.Println(sb.String())
			return nil
		}
	}

	fmt.Println(expr)
	return nil
}

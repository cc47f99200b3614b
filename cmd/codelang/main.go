// Command codelang extracts tokens or structural symbols from a source
// file using a registered language profile.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aledsdavies/codelang/codelang"
	cerrors "github.com/aledsdavies/codelang/errors"
	_ "github.com/aledsdavies/codelang/profiles/javascript"
	_ "github.com/aledsdavies/codelang/profiles/markdown"
	_ "github.com/aledsdavies/codelang/profiles/python"
	_ "github.com/aledsdavies/codelang/profiles/toml"
	"github.com/spf13/cobra"
)

// successEnvelope is the JSON shape printed to stdout on success.
type successEnvelope struct {
	OK         bool   `json:"ok"`
	Extract    string `json:"extract"`
	SourceFile string `json:"sourceFile"`
	Language   string `json:"language"`
	Count      int    `json:"count"`
	Result     any    `json:"result"`
}

// errorEnvelope is the JSON shape printed to stderr on failure.
type errorEnvelope struct {
	OK    bool              `json:"ok"`
	Error errorEnvelopeBody `json:"error"`
}

type errorEnvelopeBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

const usage = "Usage: codelang <source-file> <token|symbols> [-l|--language <name-or-ext>]\n"

func main() {
	var language string

	rootCmd := &cobra.Command{
		Use:           "codelang <source-file> <token|symbols>",
		Short:         "Extract tokens or structural symbols from a source file",
		Args:          cobra.ExactArgs(2),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], args[1], language)
		},
	}
	rootCmd.Flags().StringVarP(&language, "language", "l", "", "language name or file extension (defaults to the source file's extension)")

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stdout, usage)
		os.Exit(0)
	}

	if err := rootCmd.Execute(); err != nil {
		if ce, ok := err.(*cerrors.CodeError); ok {
			printError(ce)
			os.Exit(1)
		}
		printError(cerrors.Wrap(cerrors.ErrInvalidArgs, err.Error(), err))
		os.Exit(1)
	}
}

func run(sourceFile, extract, language string) error {
	if extract != "token" && extract != "symbols" {
		return cerrors.New(cerrors.ErrInvalidExtract, fmt.Sprintf("unknown extract mode %q: want \"token\" or \"symbols\"", extract))
	}
	if language == "" {
		language = strings.ToLower(filepath.Ext(sourceFile))
	}
	if language == "" {
		return cerrors.New(cerrors.ErrLanguageRequired, "the -l/--language flag is required when the source file has no extension")
	}

	source, err := os.ReadFile(sourceFile)
	if err != nil {
		return cerrors.Wrap(cerrors.ErrExecution, fmt.Sprintf("failed to read %s", sourceFile), err)
	}

	var result any
	var count int
	switch extract {
	case "token":
		tokens, err := codelang.Tokenize(string(source), language)
		if err != nil {
			return asCodeError(err)
		}
		result, count = tokens, len(tokens)
	case "symbols":
		symbols, err := codelang.ExtractSymbols(string(source), language)
		if err != nil {
			return asCodeError(err)
		}
		result, count = symbols, len(symbols)
	}

	return printSuccess(extract, sourceFile, language, count, result)
}

func asCodeError(err error) error {
	if ce, ok := err.(*cerrors.CodeError); ok {
		return ce
	}
	return cerrors.Wrap(cerrors.ErrExecution, err.Error(), err)
}

func printSuccess(extract, sourceFile, language string, count int, result any) error {
	enc := json.NewEncoder(os.Stdout)
	return enc.Encode(successEnvelope{
		OK:         true,
		Extract:    extract,
		SourceFile: sourceFile,
		Language:   language,
		Count:      count,
		Result:     result,
	})
}

func printError(ce *cerrors.CodeError) {
	enc := json.NewEncoder(os.Stderr)
	_ = enc.Encode(errorEnvelope{
		OK: false,
		Error: errorEnvelopeBody{
			Code:    ce.Code,
			Message: ce.Message,
		},
	})
}

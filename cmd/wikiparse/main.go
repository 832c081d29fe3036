// Command wikiparse reads wiki markup from standard input (or a file
// argument) and prints its parsed AST.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sanity-io/litter"
	"github.com/spf13/cobra"

	"github.com/kasrell/wikiparse"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		backtrackingLimit int
		throwError        bool
		returnError       bool
		debug             bool
		jsonOutput        bool
		textOutput        bool
	)

	cmd := &cobra.Command{
		Use:   "wikiparse [file]",
		Short: "Parse wiki markup into a structured AST",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args)
			if err != nil {
				return err
			}

			nodes, err := wikiparse.Parse(input, wikiparse.Options{
				BacktrackingLimit: backtrackingLimit,
				ThrowError:        throwError,
				ReturnError:       returnError,
				Debug:             debug,
			})
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "wikiparse:", err)
				return err
			}

			switch {
			case jsonOutput:
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(nodes)
			case textOutput:
				fmt.Fprintln(cmd.OutOrStdout(), wikiparse.AstToText(nodes, wikiparse.TextOptions{}))
			default:
				fmt.Fprintln(cmd.OutOrStdout(), litter.Sdump(nodes))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&backtrackingLimit, "backtracking-limit", wikiparse.DefaultBacktrackingLimit, "maximum backtrack events before aborting")
	cmd.Flags().BoolVar(&throwError, "throw-error", false, "propagate parse faults as a nonzero exit instead of swallowing them")
	cmd.Flags().BoolVar(&returnError, "return-error", false, "print the fault instead of silently returning no AST")
	cmd.Flags().BoolVar(&debug, "debug", false, "log a backtracking trace to stderr")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the AST as JSON instead of a pretty dump")
	cmd.Flags().BoolVar(&textOutput, "text", false, "print the collapsed plain-text rendering instead of the AST")

	return cmd
}

func readInput(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Command wikiparse-repl is an interactive shell around wikiparse.Parse.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/kasrell/wikiparse"
	"github.com/sanity-io/litter"
)

const helpText = `wikiparse interactive shell

Commands:
  text                 Toggle plain-text rendering instead of the raw AST
  debug                Toggle the backtracking trace
  limit <n>             Set the backtracking limit (default 50000)
  help                 Show this help message
  exit / quit          Exit the shell

Any other input is parsed as a single line of wiki markup.
`

func main() {
	textMode := false
	debug := false
	limit := wikiparse.DefaultBacktrackingLimit

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("wikiparse — wiki markup parser")
	fmt.Println(`Type "help" for available commands.`)
	fmt.Println()

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := strings.ToLower(parts[0])

		switch cmd {
		case "exit", "quit":
			return

		case "help":
			fmt.Print(helpText)

		case "text":
			textMode = !textMode
			fmt.Printf("text mode: %v\n", textMode)

		case "debug":
			debug = !debug
			fmt.Printf("debug: %v\n", debug)

		case "limit":
			if len(parts) < 2 {
				fmt.Fprintln(os.Stderr, "usage: limit <n>")
				continue
			}
			n, err := strconv.Atoi(parts[1])
			if err != nil || n <= 0 {
				fmt.Fprintf(os.Stderr, "invalid limit %q\n", parts[1])
				continue
			}
			limit = n
			fmt.Printf("backtracking limit set to %d\n", limit)

		default:
			nodes, err := wikiparse.Parse(line, wikiparse.Options{
				BacktrackingLimit: limit,
				ReturnError:       true,
				Debug:             debug,
			})
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				continue
			}
			if textMode {
				fmt.Println(wikiparse.AstToText(nodes, wikiparse.TextOptions{}))
			} else {
				fmt.Println(litter.Sdump(nodes))
			}
		}
	}
}

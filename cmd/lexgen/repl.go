package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/KromDaniel/lexgen/emitter"
	"github.com/KromDaniel/lexgen/generator"
	"github.com/KromDaniel/lexgen/scanner"
	"github.com/KromDaniel/lexgen/specset"
)

// replCmd is the interactive session the original program's menu loop
// grew out of, translated from a numbered switch into named commands
// parsed with a shell-word splitter: "add IDENTIFIER (a|b)*" instead of
// choosing option 1 and then answering two prompts.
type replCmd struct{}

const replHelp = `commands:
  add <name> <pattern>     add a token pattern
  build                    compile the added patterns into an NFA/DFA
  nfa                      display the built NFA
  dfa                      display the built DFA
  generate <pkg> <file>    emit a standalone Go scanner
  load-predefined          load the built-in C-like token set
  tokenize <file>          tokenize a file with the built DFA
  help                     show this message
  exit                     quit
`

func (c *replCmd) Run(cctx *cliContext) error {
	g := generator.New()
	built := false

	fmt.Println("lexgen interactive session. Type 'help' for commands.")
	scan := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("lexgen> ")
		if !scan.Scan() {
			break
		}
		line := strings.TrimSpace(scan.Text())
		if line == "" {
			continue
		}

		words, err := shellquote.Split(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, "parse error:", err)
			continue
		}
		if len(words) == 0 {
			continue
		}

		cmd, args := words[0], words[1:]
		switch cmd {
		case "add":
			if len(args) != 2 {
				fmt.Println("usage: add <name> <pattern>")
				continue
			}
			g.AddToken(args[0], args[1])
			fmt.Println("pattern added")

		case "build":
			if err := g.Build(cctx.rec); err != nil {
				fmt.Fprintln(os.Stderr, "build failed:", err)
				continue
			}
			built = true
			fmt.Printf("built %d-state NFA, %d-state DFA\n", g.NFA().NumStates(), g.DFA().NumStates())

		case "nfa":
			if !built {
				fmt.Println("build the analyzer first")
				continue
			}
			fmt.Println(g.NFA().String())

		case "dfa":
			if !built {
				fmt.Println("build the analyzer first")
				continue
			}
			fmt.Println(g.DFA().String())

		case "generate":
			if !built {
				fmt.Println("build the analyzer first")
				continue
			}
			if len(args) != 2 {
				fmt.Println("usage: generate <package> <file>")
				continue
			}
			if err := emitter.Generate(g.DFA(), emitter.Config{Package: args[0], OutputFile: args[1]}); err != nil {
				fmt.Fprintln(os.Stderr, "generate failed:", err)
				continue
			}
			fmt.Println("wrote", args[1])

		case "load-predefined":
			for _, sp := range specset.CLikePredefined() {
				g.AddToken(sp.Name, sp.Pattern)
			}
			fmt.Printf("loaded %d predefined patterns\n", len(specset.CLikePredefined()))

		case "tokenize":
			if !built {
				fmt.Println("build the analyzer first")
				continue
			}
			if len(args) != 1 {
				fmt.Println("usage: tokenize <file>")
				continue
			}
			if err := runTokenize(cctx, g, args[0]); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}

		case "help":
			fmt.Print(replHelp)

		case "exit", "quit":
			fmt.Println("goodbye")
			return nil

		default:
			fmt.Printf("unknown command %q, type 'help'\n", cmd)
		}
	}

	return scan.Err()
}

func runTokenize(cctx *cliContext, g *generator.Generator, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	tokens, lexErrs := scanner.Scan(g.DFA(), string(data), cctx.rec)
	for _, t := range tokens {
		fmt.Printf("%d:%d\t%s\t%q\n", t.Line, t.Column, t.Type, t.Lexeme)
	}
	for _, e := range lexErrs {
		fmt.Fprintln(os.Stderr, e.Error())
	}
	return nil
}

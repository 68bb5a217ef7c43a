// Command nyxc is a minimal harness over the lexical core: it scans one or
// more source files and dumps their token stream and/or the literal tree
// nodes the scanner produces along the way. It is not a compiler driver —
// there is no parser in this repository yet — it exists to exercise
// internal/scanner, internal/tree, internal/exc and internal/syntax end to
// end the way the teacher's main.go exercises its own compiler pipeline.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/nyxlang/nyxc/internal/exc"
	"github.com/nyxlang/nyxc/internal/render"
	"github.com/nyxlang/nyxc/internal/scanner"
	"github.com/nyxlang/nyxc/internal/srcpos"
	"github.com/nyxlang/nyxc/internal/syntax"
)

type opts struct {
	Roots      []string
	Syntax     string
	DumpTokens bool
	DumpTree   bool
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	op := &opts{}
	flags := pflag.NewFlagSet("nyxc", pflag.ExitOnError)
	flags.StringSliceVar(&op.Roots, "root", []string{"."}, "Root search paths for relative file arguments.")
	flags.StringVar(&op.Syntax, "syntax", "", "Path to a YAML syntax table (operators/blocks). Without it the scanner runs in discovery mode.")
	flags.BoolVar(&op.DumpTokens, "dump-tokens", false, "Print the token stream as it is scanned.")
	flags.BoolVar(&op.DumpTree, "dump-tree", false, "Print the literal tree node each token carries, if any.")
	_ = flags.Parse(os.Args[1:])
	targets := flags.Args()

	if len(targets) == 0 {
		fmt.Fprintln(os.Stderr, "nyxc: no input files")
		os.Exit(1)
	}

	var table syntax.Table
	if op.Syntax != "" {
		f, err := os.Open(op.Syntax)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		table, err = syntax.LoadTableYAML(f)
		f.Close()
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
	}

	positions := srcpos.NewRegistry()
	sink := exc.NewSink(positions, os.Stderr)

	status := 0
	for _, target := range resolveTargets(op.Roots, targets) {
		if err := scanFile(ctx, positions, sink, table, target, op); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			status = 1
		}
	}
	os.Exit(status)
}

func resolveTargets(roots []string, targets []string) []string {
	resolved := make([]string, 0, len(targets))
	for _, target := range targets {
		if filepath.IsAbs(target) {
			resolved = append(resolved, target)
			continue
		}
		found := target
		for _, root := range roots {
			candidate := filepath.Join(root, target)
			if _, err := os.Stat(candidate); err == nil {
				found = candidate
				break
			}
		}
		resolved = append(resolved, found)
	}
	return resolved
}

func scanFile(ctx context.Context, positions *srcpos.Registry, sink *exc.Sink, table syntax.Table, path string, op *opts) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var scanOpts []scanner.Option
	scanOpts = append(scanOpts, scanner.WithSink(sink))
	if table != nil {
		scanOpts = append(scanOpts, scanner.WithSyntax(table))
	}
	s := scanner.New(ctx, positions, path, f, scanOpts...)

	renderer := render.Textual{}
	for {
		tok := s.Read()
		if op.DumpTokens {
			fmt.Printf("%s:%d\t%s\t%q\n", path, tok.Pos, tok.Kind, tok.Spelling)
		}
		if op.DumpTree {
			if n := s.Scanned(); n != nil {
				fmt.Printf("  %s ", n.Typename())
				_ = n.Render(os.Stdout, renderer)
				fmt.Println()
			}
		}
		if tok.Kind == scanner.EOF {
			break
		}
	}
	return nil
}

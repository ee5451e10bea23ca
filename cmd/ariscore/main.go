// Command ariscore is a CLI front end for pkg/normalize and pkg/unify: parse
// a formula in glyph notation, run a configurable normalization pipeline
// over it, and optionally record a step-by-step audit trace or serve the
// same operations over gRPC.
package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/arisgo/ariscore/internal/audit"
	"github.com/arisgo/ariscore/internal/config"
	"github.com/arisgo/ariscore/internal/rpcservice"
	"github.com/arisgo/ariscore/internal/synparse"
	"github.com/arisgo/ariscore/pkg/normalize"
	"github.com/arisgo/ariscore/pkg/unify"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "normalize":
		err = runNormalize(os.Args[2:])
	case "unify":
		err = runUnify(os.Args[2:])
	case "serve":
		err = runServe(os.Args[2:])
	case "-help", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "ariscore: unknown command %q\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "ariscore: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `ariscore %s

Usage:
  ariscore normalize [--config <patterns.yaml>] [--audit <db>] <formula>
  ariscore unify <left> <right>
  ariscore serve [--audit <db>] <addr>
  ariscore help
`, config.Version)
}

// runNormalize implements: ariscore normalize [--config file] [--audit db] <formula>
func runNormalize(args []string) error {
	var configPath, auditPath string
	var formula string

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--config":
			if i+1 >= len(args) {
				return fmt.Errorf("--config requires a path")
			}
			i++
			configPath = args[i]
		case "--audit":
			if i+1 >= len(args) {
				return fmt.Errorf("--audit requires a path")
			}
			i++
			auditPath = args[i]
		default:
			formula = args[i]
		}
	}
	if formula == "" {
		return fmt.Errorf("usage: ariscore normalize [--config <patterns.yaml>] [--audit <db>] <formula>")
	}

	e, err := synparse.Parse(formula)
	if err != nil {
		return err
	}

	passes := normalize.DefaultPipeline()
	if configPath != "" {
		ps, err := config.LoadPatternSet(configPath)
		if err != nil {
			return err
		}
		passes = passes[:0]
		for _, name := range ps.Passes {
			p, ok := normalize.ByName(name)
			if !ok {
				return fmt.Errorf("unknown pass %q in %s", name, configPath)
			}
			passes = append(passes, p)
		}
	}

	var result = e
	var changed []string
	if auditPath != "" {
		log, err := audit.Open(auditPath)
		if err != nil {
			return err
		}
		defer log.Close()

		var sessionID string
		result, sessionID, err = log.RunAudited(context.Background(), e, passes, time.Now())
		if err != nil {
			return err
		}
		fmt.Printf("session: %s\n", sessionID)
	} else {
		result, changed = normalize.Run(e, passes)
	}

	printResult(result.String())
	if len(changed) > 0 {
		fmt.Println("passes applied:")
		for _, name := range changed {
			fmt.Printf("  %s\n", name)
		}
	}
	return nil
}

// runUnify implements: ariscore unify <left> <right>
func runUnify(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: ariscore unify <left> <right>")
	}

	left, err := synparse.Parse(args[0])
	if err != nil {
		return err
	}
	right, err := synparse.Parse(args[1])
	if err != nil {
		return err
	}

	sub, err := unify.Unify([]unify.Constraint{{Left: left, Right: right}})
	if err != nil {
		printFailure(err.Error())
		return nil
	}

	if len(sub) == 0 {
		printResult("already equal, empty substitution")
		return nil
	}
	printResult("")
	for _, p := range sub {
		fmt.Printf("  %s = %s\n", p.Name, p.Value.String())
	}
	return nil
}

// runServe implements: ariscore serve [--audit db] <addr>
func runServe(args []string) error {
	var auditPath, addr string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--audit":
			if i+1 >= len(args) {
				return fmt.Errorf("--audit requires a path")
			}
			i++
			auditPath = args[i]
		default:
			addr = args[i]
		}
	}
	if addr == "" {
		return fmt.Errorf("usage: ariscore serve [--audit <db>] <addr>")
	}

	srv, err := rpcservice.New()
	if err != nil {
		return err
	}

	if auditPath != "" {
		log, err := audit.Open(auditPath)
		if err != nil {
			return err
		}
		defer log.Close()
		srv.AuditLog = log
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	fmt.Printf("ariscore: serving on %s\n", addr)
	return srv.GRPCServer().Serve(lis)
}

// printResult writes a normalization/unification result, colorized green
// when stdout is a real terminal.
func printResult(s string) {
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		fmt.Printf("\x1b[32m%s\x1b[0m\n", s)
		return
	}
	fmt.Println(s)
}

func printFailure(s string) {
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		fmt.Fprintf(os.Stderr, "\x1b[31mno unifier: %s\x1b[0m\n", s)
		return
	}
	fmt.Fprintf(os.Stderr, "no unifier: %s\n", s)
}

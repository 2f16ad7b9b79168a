// Command digitcalc evaluates arithmetic on arbitrary-precision naturals,
// integers, rationals and polynomials, one operation at a time, from a
// batch file, in a REPL or behind an HTTP API.
//
// Usage:
//
//	digitcalc [flags] <op> <operand>...
//	digitcalc -list
//	digitcalc -batch jobs.toml
//	digitcalc -i
//	digitcalc -server -port 8080
package main

import (
	"context"
	"os"

	"github.com/agbru/digitcalc/internal/app"
	"github.com/agbru/digitcalc/internal/calculator"
	apperrors "github.com/agbru/digitcalc/internal/errors"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	if app.HasVersionFlag(args[1:]) {
		info := app.CurrentBuild(calculator.GlobalRegistry())
		if err := app.PrintVersion(os.Stdout, info, wantsJSON(args[1:])); err != nil {
			return apperrors.ExitErrorGeneric
		}
		return apperrors.ExitSuccess
	}

	application, err := app.New(args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			return apperrors.ExitSuccess
		}
		return apperrors.ExitErrorConfig
	}
	return application.Run(context.Background(), os.Stdout)
}

// wantsJSON reports whether -json appears among the flags.
func wantsJSON(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--":
			return false
		case "-json", "--json", "-json=true", "--json=true":
			return true
		}
	}
	return false
}

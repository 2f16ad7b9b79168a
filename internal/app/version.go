// Package app wires configuration, logging and the evaluator into the
// digitcalc modes. It also carries the build version.
package app

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"sort"

	"github.com/agbru/digitcalc/internal/calculator"
)

// Set with -ldflags, e.g.
//
//	go build -ldflags="-X github.com/agbru/digitcalc/internal/app.Version=v0.4.0 -X github.com/agbru/digitcalc/internal/app.Commit=$(git rev-parse --short HEAD)"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

var versionFlags = map[string]bool{"--version": true, "-version": true, "-V": true}

// HasVersionFlag reports whether args ask for the build information.
// Arguments after a "--" terminator are operands and are not inspected.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}
		if versionFlags[arg] {
			return true
		}
	}
	return false
}

// BuildInfo describes the binary and the operation catalog compiled into it.
type BuildInfo struct {
	Version   string         `json:"version"`
	Commit    string         `json:"commit"`
	BuildDate string         `json:"build_date"`
	GoVersion string         `json:"go_version"`
	Platform  string         `json:"platform"`
	Domains   map[string]int `json:"domains"`
}

// CurrentBuild returns the build information with the number of operations
// reg holds per domain.
func CurrentBuild(reg calculator.Registry) BuildInfo {
	domains := make(map[string]int)
	for _, name := range reg.List() {
		if op, err := reg.Get(name); err == nil {
			domains[string(op.Domain)]++
		}
	}
	return BuildInfo{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		Domains:   domains,
	}
}

// PrintVersion writes info to out, as a JSON object when asJSON is set.
func PrintVersion(out io.Writer, info BuildInfo, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}
	fmt.Fprintf(out, "digitcalc %s (%s, built %s)\n", info.Version, info.Commit, info.BuildDate)
	fmt.Fprintf(out, "  %s %s\n", info.GoVersion, info.Platform)

	names := make([]string, 0, len(info.Domains))
	for name := range info.Domains {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(out, "  %-11s %d operations\n", name, info.Domains[name])
	}
	return nil
}

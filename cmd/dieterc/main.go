// Command dieterc is the Dieter type checker's command-line front end: it
// loads one or more source files, runs the four-pass checker over them,
// and reports every diagnostic it finds.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/catseye/Dieter/internal/ast"
	"github.com/catseye/Dieter/internal/checker"
	"github.com/catseye/Dieter/internal/config"
	"github.com/catseye/Dieter/internal/diagnostics"
	"github.com/catseye/Dieter/internal/loader"
	"github.com/catseye/Dieter/internal/manifest"
	"github.com/catseye/Dieter/internal/prelude"
	"github.com/catseye/Dieter/internal/report"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	if len(args) < 2 || args[1] == "-help" || args[1] == "--help" || args[1] == "help" {
		printUsage()
		return 0
	}

	switch args[1] {
	case "check":
		return runCheck(args[2:])
	case "version":
		fmt.Println(config.Version)
		return 0
	default:
		// Bare `dieterc <files...>` is shorthand for `dieterc check <files...>`.
		return runCheck(args[1:])
	}
}

func printUsage() {
	fmt.Printf("dieterc %s - the Dieter type checker\n\n", config.Version)
	fmt.Println("Usage:")
	fmt.Println("  dieterc check <file.dtr> [file2.dtr ...]")
	fmt.Println("  dieterc check <project-dir>      (uses dieter.yaml if present)")
	fmt.Println("  dieterc version")
}

func runCheck(paths []string) int {
	if len(paths) == 0 {
		printUsage()
		return 2
	}

	runID := uuid.New().String()

	prog, loadErrs := loadProgram(paths)
	preludeProg, preludeErrs := prelude.Parse()

	merged := &ast.Program{}
	merged.Decls = append(merged.Decls, preludeProg.Decls...)
	merged.Decls = append(merged.Decls, prog.Decls...)

	c := checker.New()
	checkErrs := c.Check(merged)

	all := append(append(append([]*diagnostics.Error{}, preludeErrs...), loadErrs...), checkErrs...)
	report.Print(os.Stderr, all)
	report.Summary(os.Stderr, all)

	if len(all) > 0 {
		fmt.Fprintf(os.Stderr, "run %s failed\n", runID)
		return 1
	}
	return 0
}

// loadProgram loads either an explicit file list or, when given a single
// directory containing a dieter.yaml manifest, the files it lists in
// manifest order.
func loadProgram(paths []string) (*ast.Program, []*diagnostics.Error) {
	if len(paths) == 1 {
		if info, err := os.Stat(paths[0]); err == nil && info.IsDir() {
			return loadFromDir(paths[0])
		}
	}
	return loader.LoadFiles(paths)
}

func loadFromDir(dir string) (*ast.Program, []*diagnostics.Error) {
	manifestPath := filepath.Join(dir, "dieter.yaml")
	cfg, err := manifest.Load(manifestPath)
	if err != nil {
		return loader.LoadDir(dir)
	}
	paths := make([]string, len(cfg.Files))
	for i, f := range cfg.Files {
		paths[i] = filepath.Join(dir, f)
	}
	return loader.LoadFiles(paths)
}

// Package loader gathers one or more Dieter source files into a single
// *ast.Program, running the lex/parse pipeline per file and tagging each
// declaration with the file it came from so later diagnostics can point
// at the right place in a multi-file build.
package loader

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/catseye/Dieter/internal/ast"
	"github.com/catseye/Dieter/internal/config"
	"github.com/catseye/Dieter/internal/diagnostics"
	"github.com/catseye/Dieter/internal/pipeline"
	"github.com/catseye/Dieter/internal/token"
)

// LoadFiles reads and parses each path in order, concatenating their
// declarations into one *ast.Program. Parse errors from every file are
// collected; a file that fails to read at all is reported the same way
// (a diagnostics.Syntax with no token position) rather than aborting the
// whole load.
func LoadFiles(paths []string) (*ast.Program, []*diagnostics.Error) {
	prog := &ast.Program{}
	var errs []*diagnostics.Error

	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			errs = append(errs, diagnostics.New(diagnostics.Syntax, path, token.Token{}, "could not read source file: %s", err))
			continue
		}

		ctx := pipeline.NewPipelineContext(path, string(src))
		pl := pipeline.New(pipeline.LexerProcessor{}, pipeline.ParserProcessor{})
		ctx = pl.Run(ctx)

		errs = append(errs, ctx.Errors...)
		if ctx.Program == nil {
			continue
		}
		for _, decl := range ctx.Program.Decls {
			decl.SetFile(path)
			prog.Decls = append(prog.Decls, decl)
		}
	}

	return prog, errs
}

// LoadDir collects every recognized source file in dir (non-recursive,
// sorted for deterministic output) and loads them as one program.
func LoadDir(dir string) (*ast.Program, []*diagnostics.Error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return &ast.Program{}, []*diagnostics.Error{
			diagnostics.New(diagnostics.Syntax, dir, token.Token{}, "could not read directory: %s", err),
		}
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if hasRecognizedExt(e.Name()) {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return LoadFiles(paths)
}

func hasRecognizedExt(name string) bool {
	for _, ext := range config.SourceFileExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

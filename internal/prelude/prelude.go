// Package prelude embeds the small set of intrinsic procedure
// declarations the language reference mentions without ever giving them
// a defining module (new_ref, succ, equal). The checker treats them as
// an ordinary source file loaded before the user's own.
package prelude

import (
	_ "embed"

	"github.com/catseye/Dieter/internal/ast"
	"github.com/catseye/Dieter/internal/diagnostics"
	"github.com/catseye/Dieter/internal/lexer"
	"github.com/catseye/Dieter/internal/parser"
)

//go:embed prelude.dieter
var source string

const filePath = "<prelude>"

// Parse returns the prelude's declarations, already tagged with the
// synthetic file path "<prelude>" so diagnostics can still point
// somewhere sensible if the embedded source itself ever regresses.
func Parse() (*ast.Program, []*diagnostics.Error) {
	lx := lexer.New(source)
	p := parser.New(lx, filePath)
	prog := p.ParseProgram()
	for _, decl := range prog.Decls {
		decl.SetFile(filePath)
	}
	return prog, p.Errors()
}

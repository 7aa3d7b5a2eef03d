package pipeline

import (
	"github.com/catseye/Dieter/internal/ast"
	"github.com/catseye/Dieter/internal/diagnostics"
	"github.com/catseye/Dieter/internal/lexer"
)

// PipelineContext is the mutable value threaded through a Pipeline's
// stages: each Processor reads what an earlier stage produced and adds
// its own output, the way the lexer stage hands a *lexer.Lexer to the
// parser stage and the parser stage hands an *ast.Program to whatever
// consumes it next.
type PipelineContext struct {
	FilePath   string
	SourceCode string

	Lex     *lexer.Lexer
	Program *ast.Program

	Errors []*diagnostics.Error
}

// NewPipelineContext returns a context ready for the lexer stage.
func NewPipelineContext(filePath, sourceCode string) *PipelineContext {
	return &PipelineContext{FilePath: filePath, SourceCode: sourceCode}
}

func (c *PipelineContext) addErrors(errs []*diagnostics.Error) {
	c.Errors = append(c.Errors, errs...)
}

package pipeline

import (
	"github.com/catseye/Dieter/internal/diagnostics"
	"github.com/catseye/Dieter/internal/lexer"
	"github.com/catseye/Dieter/internal/parser"
	"github.com/catseye/Dieter/internal/token"
)

// Processor is one stage of a Pipeline.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// LexerProcessor turns ctx.SourceCode into a *lexer.Lexer for the parser
// stage to consume. It never itself raises diagnostics; a source file
// with illegal characters surfaces as ILLEGAL tokens the parser rejects.
type LexerProcessor struct{}

func (LexerProcessor) Process(ctx *PipelineContext) *PipelineContext {
	ctx.Lex = lexer.New(ctx.SourceCode)
	return ctx
}

// ParserProcessor drains ctx.Lex into an *ast.Program, appending any
// syntax diagnostics raised along the way.
type ParserProcessor struct{}

func (ParserProcessor) Process(ctx *PipelineContext) *PipelineContext {
	if ctx.Lex == nil {
		ctx.Errors = append(ctx.Errors, diagnostics.New(diagnostics.Syntax, ctx.FilePath, token.Token{}, "parser: no token source"))
		return ctx
	}
	p := parser.New(ctx.Lex, ctx.FilePath)
	ctx.Program = p.ParseProgram()
	ctx.addErrors(p.Errors())
	return ctx
}

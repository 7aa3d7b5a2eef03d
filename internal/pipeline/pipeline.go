// Package pipeline chains the lex and parse stages over a shared
// mutable context, so a caller (the CLI, a future LSP, a test) can run
// exactly the stages it needs and inspect the context in between.
package pipeline

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

// New returns a Pipeline running processors in order.
func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes every stage in order, threading ctx through each. A stage
// that records diagnostics does not stop the pipeline: later stages may
// still have useful partial results (or may simply no-op on nil input),
// matching the "never throw, always accumulate" rule diagnostics.Bag
// follows.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
	}
	return ctx
}

package internal

import (
	"io"
	"io/ioutil"
	"time"

	"github.com/sirupsen/logrus"
)

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

// Result of a single run through the pipeline
type Result int

const (
	// ResultOK the program ran to completion
	ResultOK Result = iota
	// ResultStaticError a lexical, syntax or resolution error stopped the run
	ResultStaticError
	// ResultRuntimeError a runtime error aborted execution
	ResultRuntimeError
)

// Interpreter keeps globals alive between runs so a REPL can feed it one
// line at a time.
type Interpreter struct {
	printer IPrinter
	logger  logrus.FieldLogger
	clock   func() float64

	exec  *exec
	state *interpreterState
}

// Option configures an Interpreter
type Option func(*Interpreter)

// WithLogger sets the logger used for pipeline tracing
func WithLogger(logger logrus.FieldLogger) Option {
	return func(in *Interpreter) {
		in.logger = logger
	}
}

// WithClock replaces the host clock behind the clock() builtin
func WithClock(clock func() float64) Option {
	return func(in *Interpreter) {
		in.clock = clock
	}
}

func discardLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.Out = ioutil.Discard
	return logger
}

// NewInterpreter creates an interpreter with a fresh global scope
func NewInterpreter(p IPrinter, opts ...Option) *Interpreter {
	in := &Interpreter{
		printer: p,
		logger:  discardLogger(),
		clock:   wallClock,
	}
	for _, opt := range opts {
		opt(in)
	}
	in.exec = newExec(p, in.clock)
	return in
}

// Run scans, parses, resolves and executes source against the persistent
// globals. Any lexical, syntax or resolution error prevents execution.
func (in *Interpreter) Run(source string) Result {
	state := newInterpreterState(source, in.printer)
	in.state = state

	start := time.Now()
	log := in.logger.WithField("run", start.UnixNano())

	lexer := &lexer{
		line:  1,
		state: state,
	}
	lexer.scan()
	log.WithFields(logrus.Fields{
		"stage":       "scan",
		"tokens":      len(state.tokens),
		"diagnostics": len(state.diagnostics),
	}).Debug("scan finished")

	parser := &parser{
		state: state,
	}
	parser.parse()
	log.WithFields(logrus.Fields{
		"stage":       "parse",
		"statements":  len(state.stmts),
		"diagnostics": len(state.diagnostics),
	}).Debug("parse finished")

	if !state.Valid() {
		return ResultStaticError
	}

	resolver := newResolver(state, in.exec.locals)
	resolver.resolve(state.stmts)
	log.WithFields(logrus.Fields{
		"stage":       "resolve",
		"locals":      len(in.exec.locals),
		"diagnostics": len(state.diagnostics),
	}).Debug("resolve finished")

	if !state.Valid() {
		return ResultStaticError
	}

	in.exec.state = state
	ok := in.exec.interpret(state.stmts)
	fields := logrus.Fields{
		"stage":   "interpret",
		"elapsed": time.Since(start),
	}
	if !ok {
		log.WithFields(fields).WithFields(logrus.Fields{
			"line":   state.runtimeError.Line(),
			"lexeme": state.runtimeError.token.lexeme,
		}).Debug(state.runtimeError.Error())
		return ResultRuntimeError
	}
	log.WithFields(fields).Debug("interpret finished")
	return ResultOK
}

// Diagnostics returns the static errors found by the last run
func (in *Interpreter) Diagnostics() []Diagnostic {
	if in.state == nil {
		return nil
	}
	return in.state.diagnostics
}

// RuntimeError returns the error that aborted the last run, if any
func (in *Interpreter) RuntimeError() *RuntimeError {
	if in.state == nil {
		return nil
	}
	return in.state.runtimeError
}

// PrintErrors prints the errors of the last run through the printer
func (in *Interpreter) PrintErrors() bool {
	if in.state == nil {
		return false
	}
	return in.state.PrintErrors()
}

// RunSourceWithPrinter runs source code on a fresh interpreter instance
func RunSourceWithPrinter(source string, p IPrinter) bool {
	in := NewInterpreter(p)
	result := in.Run(source)
	in.PrintErrors()
	return result == ResultOK
}

// ParseTree scans and parses source and returns the program in prefix form
func ParseTree(source string) (string, []Diagnostic) {
	state := parseSource(source)
	return prefixPrinter.printTree(state.stmts), state.diagnostics
}

// RPNTree is ParseTree with expressions in reverse Polish notation
func RPNTree(source string) (string, []Diagnostic) {
	state := parseSource(source)
	return rpnPrinter.printTree(state.stmts), state.diagnostics
}

func parseSource(source string) *interpreterState {
	state := newInterpreterState(source, nil)
	lexer := &lexer{
		line:  1,
		state: state,
	}
	lexer.scan()
	parser := &parser{
		state: state,
	}
	parser.parse()
	return state
}

// TokenListing scans source and returns one token per line
func TokenListing(source string) (string, []Diagnostic) {
	state := newInterpreterState(source, nil)
	lexer := &lexer{
		line:  1,
		state: state,
	}
	lexer.scan()
	out := ""
	for i := range state.tokens {
		out += state.tokens[i].String() + "\n"
	}
	return out, state.diagnostics
}

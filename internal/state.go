package internal

import (
	"errors"
	"fmt"
	"os"
)

// Diagnostic is a lexical, syntax or resolution error.
type Diagnostic struct {
	Line    int
	Where   string
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("[line %d] Error%s: %s", d.Line, d.Where, d.Message)
}

// RuntimeError aborts the current run. It carries the token that caused it
// for line attribution.
type RuntimeError struct {
	token *token
	err   error
}

func (r *RuntimeError) Error() string {
	return r.err.Error()
}

func (r *RuntimeError) Unwrap() error {
	return r.err
}

// Line returns the source line of the offending token
func (r *RuntimeError) Line() int {
	return r.token.line
}

func (r *RuntimeError) String() string {
	return fmt.Sprintf("%s\n[line %d]", r.err.Error(), r.token.line)
}

// interpreterState stores the state of a single run through the pipeline
type interpreterState struct {
	source       string
	tokens       []token
	stmts        []stmt
	diagnostics  []Diagnostic
	runtimeError *RuntimeError
	printer      IPrinter
}

func newInterpreterState(source string, p IPrinter) *interpreterState {
	return &interpreterState{
		source:      source,
		diagnostics: make([]Diagnostic, 0),
		printer:     p,
	}
}

func (s *interpreterState) setError(err error, line int) {
	s.diagnostics = append(s.diagnostics, Diagnostic{
		Line:    line,
		Message: err.Error(),
	})
}

func (s *interpreterState) tokenError(tk *token, err error) {
	where := " at end"
	if tk.token != tkEOF {
		where = fmt.Sprintf(" at '%s'", tk.lexeme)
	}
	s.diagnostics = append(s.diagnostics, Diagnostic{
		Line:    tk.line,
		Where:   where,
		Message: err.Error(),
	})
}

func (s *interpreterState) runtimeErr(err error, tk *token) {
	s.runtimeError = &RuntimeError{
		token: tk,
		err:   err,
	}
	panic(s.runtimeError)
}

// Valid returns true if no lexical, syntax or resolution error was found
func (s *interpreterState) Valid() bool {
	return len(s.diagnostics) == 0
}

// PrintErrors prints all errors, returns true if there was any
func (s *interpreterState) PrintErrors() bool {
	for _, d := range s.diagnostics {
		s.printer.Fprintln(os.Stderr, d.String())
	}
	if s.runtimeError != nil {
		s.printer.Fprintln(os.Stderr, s.runtimeError.String())
	}
	return !s.Valid() || s.runtimeError != nil
}

// Lexer errors
var errUnexpectedChar = errors.New("Unexpected character.")
var errUnterminatedString = errors.New("Unterminated string.")
var errUnterminatedComment = errors.New("Unterminated block comment.")

// Parser errors
var errExpectClassName = errors.New("Expect class name.")
var errExpectSuperclassName = errors.New("Expect superclass name.")
var errExpectClassBody = errors.New("Expect '{' before class body.")
var errUnclosedClassBody = errors.New("Expect '}' after class body.")
var errExpectParamName = errors.New("Expect parameter name.")
var errUnclosedParams = errors.New("Expect ')' after parameters.")
var errMaxParameters = errors.New("Can't have more than 255 parameters.")
var errMaxArguments = errors.New("Can't have more than 255 arguments.")
var errExpectVariableName = errors.New("Expect variable name.")
var errExpectSemicolonVar = errors.New("Expect ';' after variable declaration.")
var errExpectSemicolonValue = errors.New("Expect ';' after value.")
var errExpectSemicolonExpr = errors.New("Expect ';' after expression.")
var errExpectSemicolonReturn = errors.New("Expect ';' after return value.")
var errExpectSemicolonBreak = errors.New("Expect ';' after 'break'.")
var errExpectSemicolonContinue = errors.New("Expect ';' after 'continue'.")
var errExpectSemicolonCondition = errors.New("Expect ';' after loop condition.")
var errUnclosedBlock = errors.New("Expect '}' after block.")
var errExpectParenFor = errors.New("Expect '(' after 'for'.")
var errUnclosedFor = errors.New("Expect ')' after for clauses.")
var errExpectParenWhile = errors.New("Expect '(' after 'while'.")
var errExpectParenIf = errors.New("Expect '(' after 'if'.")
var errUnclosedCondition = errors.New("Expect ')' after condition.")
var errInvalidAssignment = errors.New("Invalid assignment target.")
var errExpectedProp = errors.New("Expect property name after '.'.")
var errUnclosedArguments = errors.New("Expect ')' after arguments.")
var errUnclosedParen = errors.New("Expect ')' after expression.")
var errExpectDotSuper = errors.New("Expect '.' after 'super'.")
var errExpectSuperMethod = errors.New("Expect superclass method name.")
var errExpectExpression = errors.New("Expect expression.")

// Resolver errors
var errAlreadyDeclared = errors.New("Already a variable with this name in this scope.")
var errOwnInitializer = errors.New("Can't read local variable in its own initializer.")
var errTopLevelReturn = errors.New("Can't return from top-level code.")
var errInitializerReturn = errors.New("Can't return a value from an initializer.")
var errBreakOutsideLoop = errors.New("Can't use 'break' outside of a loop.")
var errContinueOutsideLoop = errors.New("Can't use 'continue' outside of a loop.")
var errThisOutsideClass = errors.New("Can't use 'this' outside of a class.")
var errSuperOutsideClass = errors.New("Can't use 'super' outside of a class.")
var errSuperWithoutSuperclass = errors.New("Can't use 'super' in a class with no superclass.")
var errInheritFromSelf = errors.New("A class can't inherit from itself.")

// Runtime errors
var errUndefinedVar = errors.New("Undefined variable")
var errUninitializedVar = errors.New("Uninitialized variable")
var errUndefinedProp = errors.New("Undefined property")
var errOperandNumber = errors.New("Operand must be a number.")
var errOperandsNumbers = errors.New("Operands must be numbers.")
var errOperandsAdd = errors.New("Operands must be numbers or at least one string.")
var errDivisionByZero = errors.New("Division by zero.")
var errOnlyCallable = errors.New("Can only call functions and classes.")
var errInvalidNumberArguments = errors.New("Invalid number of arguments")
var errOnlyInstancesProps = errors.New("Only instances have properties.")
var errOnlyInstancesFields = errors.New("Only instances have fields.")
var errSuperclassMustBeClass = errors.New("Superclass must be a class.")
var errStackOverflow = errors.New("Stack overflow.")

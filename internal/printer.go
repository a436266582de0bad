package internal

import (
	"fmt"
	"strings"
)

// treePrinter renders statements in prefix form. Expressions go through
// exprString so the same layout serves both notations.
type treePrinter struct {
	exprString func(expr) string
}

var (
	prefixPrinter = &treePrinter{exprString: stringExpr}
	rpnPrinter    = &treePrinter{exprString: rpnExpr}
)

// printTree renders the program one statement per line
func (p *treePrinter) printTree(stmts []stmt) string {
	var out strings.Builder
	for _, s := range stmts {
		out.WriteString(p.stmt(s))
		out.WriteString("\n")
	}
	return out.String()
}

func (p *treePrinter) expr(ex expr) string {
	if ex == nil {
		return "_"
	}
	return p.exprString(ex)
}

func (p *treePrinter) stmt(st stmt) string {
	if st == nil {
		return "_"
	}
	switch s := st.(type) {
	case *blockStmt:
		return p.stmts("block", s.stmts)
	case *breakStmt:
		return "(break)"
	case *classStmt:
		out := "(class " + s.name.lexeme
		if s.superclass != nil {
			out += " < " + s.superclass.name.lexeme
		}
		for _, method := range s.methods {
			out += " " + p.stmt(method)
		}
		return out + ")"
	case *continueStmt:
		return "(continue)"
	case *exprStmt:
		return p.wrap(";", s.expression)
	case *fnStmt:
		params := make([]string, len(s.params))
		for i, param := range s.params {
			params[i] = param.lexeme
		}
		return p.stmts(
			fmt.Sprintf("fun %s (%s)", s.name.lexeme, strings.Join(params, " ")),
			s.body,
		)
	case *forStmt:
		return fmt.Sprintf(
			"(for %s %s %s %s)",
			p.stmt(s.initializer),
			p.expr(s.condition),
			p.expr(s.increment),
			p.stmt(s.body),
		)
	case *ifStmt:
		if s.elseBranch == nil {
			return fmt.Sprintf("(if %s %s)", p.expr(s.condition), p.stmt(s.thenBranch))
		}
		return fmt.Sprintf(
			"(if-else %s %s %s)",
			p.expr(s.condition),
			p.stmt(s.thenBranch),
			p.stmt(s.elseBranch),
		)
	case *printStmt:
		return p.wrap("print", s.expression)
	case *returnStmt:
		if s.value == nil {
			return "(return)"
		}
		return p.wrap("return", s.value)
	case *varStmt:
		if s.initializer == nil {
			return "(var " + s.name.lexeme + ")"
		}
		return p.wrap("var "+s.name.lexeme, s.initializer)
	case *whileStmt:
		return fmt.Sprintf("(while %s %s)", p.expr(s.condition), p.stmt(s.body))
	}
	panic(unhandledNode(st))
}

func (p *treePrinter) wrap(name string, ex expr) string {
	return "(" + name + " " + p.expr(ex) + ")"
}

func (p *treePrinter) stmts(name string, stmts []stmt) string {
	out := "(" + name
	for _, s := range stmts {
		out += " " + p.stmt(s)
	}
	return out + ")"
}

func literalString(value interface{}) string {
	if str, ok := value.(string); ok {
		return fmt.Sprintf("%q", str)
	}
	return stringify(value)
}

func stringExpr(ex expr) string {
	if ex == nil {
		return "_"
	}
	switch e := ex.(type) {
	case *assignExpr:
		return parenthesize("= "+e.name.lexeme, e.value)
	case *binaryExpr:
		return parenthesize(e.operator.lexeme, e.left, e.right)
	case *callExpr:
		return parenthesize("call", append([]expr{e.callee}, e.arguments...)...)
	case *getExpr:
		return parenthesize(". "+e.name.lexeme, e.object)
	case *groupingExpr:
		return parenthesize("group", e.expression)
	case *literalExpr:
		return literalString(e.value)
	case *logicalExpr:
		return parenthesize(e.operator.lexeme, e.left, e.right)
	case *setExpr:
		return parenthesize("=. "+e.name.lexeme, e.object, e.value)
	case *superExpr:
		return "(super " + e.method.lexeme + ")"
	case *thisExpr:
		return "this"
	case *unaryExpr:
		return parenthesize(e.operator.lexeme, e.right)
	case *variableExpr:
		return e.name.lexeme
	}
	panic(unhandledNode(ex))
}

func parenthesize(name string, exprs ...expr) string {
	out := "(" + name
	for _, e := range exprs {
		out += " " + stringExpr(e)
	}
	return out + ")"
}

// rpnExpr renders an expression in reverse Polish notation. Grouping
// disappears since postfix order already fixes precedence. Unary minus is
// written neg to keep it apart from subtraction.
func rpnExpr(ex expr) string {
	switch e := ex.(type) {
	case *assignExpr:
		return postfix("="+e.name.lexeme, e.value)
	case *binaryExpr:
		return postfix(e.operator.lexeme, e.left, e.right)
	case *callExpr:
		return postfix(fmt.Sprintf("call/%d", len(e.arguments)), append([]expr{e.callee}, e.arguments...)...)
	case *getExpr:
		return postfix("."+e.name.lexeme, e.object)
	case *groupingExpr:
		return rpnExpr(e.expression)
	case *literalExpr:
		return literalString(e.value)
	case *logicalExpr:
		return postfix(e.operator.lexeme, e.left, e.right)
	case *setExpr:
		return postfix("=."+e.name.lexeme, e.object, e.value)
	case *superExpr:
		return "super." + e.method.lexeme
	case *thisExpr:
		return "this"
	case *unaryExpr:
		if e.operator.token == tkMinus {
			return postfix("neg", e.right)
		}
		return postfix(e.operator.lexeme, e.right)
	case *variableExpr:
		return e.name.lexeme
	}
	panic(unhandledNode(ex))
}

func postfix(name string, exprs ...expr) string {
	parts := make([]string, 0, len(exprs)+1)
	for _, e := range exprs {
		parts = append(parts, rpnExpr(e))
	}
	return strings.Join(append(parts, name), " ")
}

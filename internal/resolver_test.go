package internal

import (
	"testing"
)

func resolveSource(t *testing.T, source string) (*interpreterState, map[expr]int) {
	t.Helper()
	state := scanSource(source)
	parser := &parser{
		state: state,
	}
	parser.parse()
	if !state.Valid() {
		t.Fatalf("Source %q does not parse: %v", source, state.diagnostics)
	}
	locals := make(map[expr]int)
	newResolver(state, locals).resolve(state.stmts)
	return state, locals
}

func TestResolveDistances(t *testing.T) {
	state, locals := resolveSource(t, `
		var g = 0;
		{
			var a = 1;
			{
				print a;
				print g;
			}
		}
	`)

	inner := state.stmts[1].(*blockStmt).stmts[1].(*blockStmt)
	local := inner.stmts[0].(*printStmt).expression
	global := inner.stmts[1].(*printStmt).expression

	if distance, ok := locals[local]; !ok || distance != 1 {
		t.Errorf("Expected a to resolve at distance 1, found %d (%v)", distance, ok)
	}
	if _, ok := locals[global]; ok {
		t.Errorf("Globals should not be resolved")
	}
}

func TestResolveFunctionScopes(t *testing.T) {
	state, locals := resolveSource(t, `
		fun outer(x) {
			fun inner() {
				return x;
			}
			return inner;
		}
	`)

	outer := state.stmts[0].(*fnStmt)
	inner := outer.body[0].(*fnStmt)
	ret := inner.body[0].(*returnStmt)
	if distance := locals[ret.value]; distance != 1 {
		t.Errorf("Expected parameter x at distance 1, found %d", distance)
	}

	// inner is declared in the parameter scope of outer
	if distance := locals[outer.body[1].(*returnStmt).value]; distance != 0 {
		t.Errorf("Expected inner at distance 0, found %d", distance)
	}
}

func TestResolveThisAndSuper(t *testing.T) {
	state, locals := resolveSource(t, `
		class A {
			m() {}
		}
		class B < A {
			m() {
				this.m();
				super.m();
			}
		}
	`)

	method := state.stmts[1].(*classStmt).methods[0]
	thisCall := method.body[0].(*exprStmt).expression.(*callExpr)
	this := thisCall.callee.(*getExpr).object
	superCall := method.body[1].(*exprStmt).expression.(*callExpr)
	super := superCall.callee

	// method params scope, then this scope, then super scope
	if distance := locals[this]; distance != 1 {
		t.Errorf("Expected this at distance 1, found %d", distance)
	}
	if distance := locals[super]; distance != 2 {
		t.Errorf("Expected super at distance 2, found %d", distance)
	}
}

func TestResolveForScope(t *testing.T) {
	state, locals := resolveSource(t, `
		for (var i = 0; i < 1; i = i + 1) {
			print i;
		}
	`)

	loop := state.stmts[0].(*forStmt)
	if distance := locals[loop.condition.(*binaryExpr).left]; distance != 0 {
		t.Errorf("Expected i in condition at distance 0, found %d", distance)
	}
	body := loop.body.(*blockStmt)
	if distance := locals[body.stmts[0].(*printStmt).expression]; distance != 1 {
		t.Errorf("Expected i in body at distance 1, found %d", distance)
	}
}

func TestResolveErrors(t *testing.T) {
	checkStaticErrors(t, "return 1;", "[line 1] Error at 'return': Can't return from top-level code.")
	checkStaticErrors(t, "{ var a = a; }", "[line 1] Error at 'a': Can't read local variable in its own initializer.")
	checkStaticErrors(t, "{ var a = 1; var a = 2; }", "[line 1] Error at 'a': Already a variable with this name in this scope.")
	checkStaticErrors(t, "fun f(a, a) {}", "[line 1] Error at 'a': Already a variable with this name in this scope.")
	checkStaticErrors(t, "break;", "[line 1] Error at 'break': Can't use 'break' outside of a loop.")
	checkStaticErrors(t, "if (true) continue;", "[line 1] Error at 'continue': Can't use 'continue' outside of a loop.")
	checkStaticErrors(t, "print this;", "[line 1] Error at 'this': Can't use 'this' outside of a class.")
	checkStaticErrors(t, "fun f() { return this; }", "[line 1] Error at 'this': Can't use 'this' outside of a class.")
	checkStaticErrors(t, "print super.m;", "[line 1] Error at 'super': Can't use 'super' outside of a class.")
	checkStaticErrors(t, "class A { m() { super.m(); } }", "[line 1] Error at 'super': Can't use 'super' in a class with no superclass.")
	checkStaticErrors(t, "class A < A {}", "[line 1] Error at 'A': A class can't inherit from itself.")
	checkStaticErrors(t, "class A { init() { return 1; } }", "[line 1] Error at 'return': Can't return a value from an initializer.")

	// A bare return is fine in an initializer
	checkOutput(t, "class A { init() { return; } } print A();", "A instance")

	// Globals may be redeclared and read in their own initializer
	checkErrorMsg(t, "var a = a;", "Undefined variable 'a'.", 1)

	// Loops do not reach across function boundaries
	checkStaticErrors(t, `
		while (true) {
			fun f() {
				break;
			}
		}
	`, "[line 4] Error at 'break': Can't use 'break' outside of a loop.")

	// Every error is reported
	checkStaticErrors(t, `
		return;
		print this;
	`,
		"[line 2] Error at 'return': Can't return from top-level code.",
		"[line 3] Error at 'this': Can't use 'this' outside of a class.",
	)
}

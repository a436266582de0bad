package internal

import (
	"strings"
	"testing"
)

func checkTree(t *testing.T, source string, expected ...string) {
	t.Helper()
	tree, diagnostics := ParseTree(source)
	if len(diagnostics) != 0 {
		t.Errorf("Source %q: unexpected diagnostics %v", source, diagnostics)
	}
	want := strings.Join(expected, "\n") + "\n"
	if tree != want {
		t.Errorf("Source %q:\nExpected:\n%s\nFound:\n%s", source, want, tree)
	}
}

func checkStaticErrors(t *testing.T, source string, errors ...string) {
	t.Helper()
	tp := &testPrinter{}
	RunSourceWithPrinter(source, tp)
	if !tp.Equals(strings.Join(errors, "\n")) {
		t.Errorf(
			"\nSource:\n----\n%s\n----\nExpected:\n----\n%s\n----\nFound:\n----\n%s----",
			source,
			strings.Join(errors, "\n"),
			tp.printed,
		)
	}
}

func TestParseExpressions(t *testing.T) {
	// Precedence and associativity
	checkTree(t, "1 + 2 * 3;", "(; (+ 1 (* 2 3)))")
	checkTree(t, "1 - 2 - 3;", "(; (- (- 1 2) 3))")
	checkTree(t, "(1 - 2) / 3;", "(; (/ (group (- 1 2)) 3))")
	checkTree(t, "1 < 2 == 3 >= 4;", "(; (== (< 1 2) (>= 3 4)))")
	checkTree(t, "a or b and c;", "(; (or a (and b c)))")
	checkTree(t, "-!x;", "(; (- (! x)))")
	checkTree(t, "!!true;", "(; (! (! true)))")

	// Assignment is right associative
	checkTree(t, "a = b = c;", "(; (= a (= b c)))")

	// Calls and property access chain left to right
	checkTree(t, "f(1)(2);", "(; (call (call f 1) 2))")
	checkTree(t, "f();", "(; (call f))")
	checkTree(t, "a.b.c = 1;", "(; (=. (. b a) c 1))")
	checkTree(t, "a.b(c).d;", "(; (. d (call (. b a) c)))")

	// Literals
	checkTree(t, `print "hi";`, `(print "hi")`)
	checkTree(t, "print nil;", "(print nil)")
	checkTree(t, "print 2.5;", "(print 2.5)")
	checkTree(t, "this.x = super.y;", "(; (=. this x (super y)))")
}

func TestParseStatements(t *testing.T) {
	checkTree(t, "var x;", "(var x)")
	checkTree(t, "var x = 1;", "(var x 1)")
	checkTree(t, "{ var a = 1; print a; }", "(block (var a 1) (print a))")
	checkTree(t, "if (a) print 1;", "(if a (print 1))")
	checkTree(t, "if (a) print 1; else print 2;", "(if-else a (print 1) (print 2))")
	checkTree(t, "if (a) if (b) print 1; else print 2;", "(if a (if-else b (print 1) (print 2)))")
	checkTree(t, "while (a) a = a - 1;", "(while a (; (= a (- a 1))))")
	checkTree(t, "for (;;) {}", "(for _ true _ (block))")
	checkTree(t, "for (var i = 0; i < 3; i = i + 1) print i;",
		"(for (var i 0) (< i 3) (= i (+ i 1)) (print i))")
	checkTree(t, "for (i = 0; i < 3;) { break; continue; }",
		"(for (; (= i 0)) (< i 3) _ (block (break) (continue)))")
	checkTree(t, "fun add(a, b) { return a + b; }", "(fun add (a b) (return (+ a b)))")
	checkTree(t, "fun f() { return; }", "(fun f () (return))")
	checkTree(t, "class A { init(x) { this.x = x; } }",
		"(class A (fun init (x) (; (=. this x x))))")
	checkTree(t, "class B < A { m() { return super.m(); } }",
		"(class B < A (fun m () (return (call (super m)))))")

	// One statement per line
	checkTree(t, "print 1; print 2;", "(print 1)", "(print 2)")
}

func TestRPNTree(t *testing.T) {
	cases := []struct {
		source string
		tree   string
	}{
		{"(1 + 2) * (4 - 3);", "(; 1 2 + 4 3 - *)"},
		{"-a - -b;", "(; a neg b neg -)"},
		{"!ok or x and y;", "(; ok ! x y and or)"},
		{"a = b = 1;", "(; 1 =b =a)"},
		{"o.f(1, 2).g = 3;", "(; o .f 1 2 call/2 3 =.g)"},
		{`print "s" + 1;`, `(print "s" 1 +)`},
		{"var v = super.m;", "(var v super.m)"},
		{"for (;;) print this;", "(for _ true _ (print this))"},
	}
	for _, c := range cases {
		tree, diagnostics := RPNTree(c.source)
		if len(diagnostics) != 0 {
			t.Errorf("Source %q: unexpected diagnostics %v", c.source, diagnostics)
		}
		if tree != c.tree+"\n" {
			t.Errorf("Source %q: expected %s, found %s", c.source, c.tree, tree)
		}
	}
}

func TestParseIsDeterministic(t *testing.T) {
	source := `
		class Counter {
			init() { this.n = 0; }
			inc() { this.n = this.n + 1; return this; }
		}
		var c = Counter();
		for (var i = 0; i < 10; i = i + 1) c.inc();
		print c.n;
	`
	first, _ := ParseTree(source)
	second, _ := ParseTree(source)
	if first != second {
		t.Errorf("Parsing the same source twice gave different trees:\n%s\n%s", first, second)
	}
}

func TestParseErrors(t *testing.T) {
	checkStaticErrors(t, "print 1 +;", "[line 1] Error at ';': Expect expression.")
	checkStaticErrors(t, "print 1", "[line 1] Error at end: Expect ';' after value.")
	checkStaticErrors(t, "var 1 = 2;", "[line 1] Error at '1': Expect variable name.")
	checkStaticErrors(t, "(1 + 2;", "[line 1] Error at ';': Expect ')' after expression.")
	checkStaticErrors(t, "f(1, 2;", "[line 1] Error at ';': Expect ')' after arguments.")
	checkStaticErrors(t, "a.;", "[line 1] Error at ';': Expect property name after '.'.")
	checkStaticErrors(t, "fun (a) {}", "[line 1] Error at '(': Expect function name.")
	checkStaticErrors(t, "class A { m( {} }", "[line 1] Error at '{': Expect parameter name.")
	checkStaticErrors(t, "class A { m() }", "[line 1] Error at '}': Expect '{' before method body.")
	checkStaticErrors(t, "class { }", "[line 1] Error at '{': Expect class name.")
	checkStaticErrors(t, "class A < { }", "[line 1] Error at '{': Expect superclass name.")
	checkStaticErrors(t, "print super;", "[line 1] Error at ';': Expect '.' after 'super'.")
	checkStaticErrors(t, "{ print 1;", "[line 1] Error at end: Expect '}' after block.")
	checkStaticErrors(t, "for var i;", "[line 1] Error at 'var': Expect '(' after 'for'.")
	checkStaticErrors(t, "while (true print 1;", "[line 1] Error at 'print': Expect ')' after condition.")
	checkStaticErrors(t, "for (;;) break", "[line 1] Error at end: Expect ';' after 'break'.")

	// Invalid targets are reported without losing the statement
	checkStaticErrors(t, "a + b = c;", "[line 1] Error at '=': Invalid assignment target.")
	checkStaticErrors(t, "(a) = 1;", "[line 1] Error at '=': Invalid assignment target.")
}

func TestParseRecovers(t *testing.T) {
	// Both errors are reported, the parser synchronizes after the first
	checkStaticErrors(t, `
		var = 1;
		print ;
		print "fine";
	`,
		"[line 2] Error at '=': Expect variable name.",
		"[line 3] Error at ';': Expect expression.",
	)

	// Recovery inside a block keeps the rest of the block
	tree, diagnostics := ParseTree("{ print ; print 1; }")
	if len(diagnostics) != 1 {
		t.Errorf("Expected 1 diagnostic, found %v", diagnostics)
	}
	if tree != "(block (print 1))\n" {
		t.Errorf("Unexpected tree after recovery: %s", tree)
	}

	// Synchronizing stops before keywords that start a statement
	tree, diagnostics = ParseTree("1 + ; var a = 1;")
	if len(diagnostics) != 1 {
		t.Errorf("Expected 1 diagnostic, found %v", diagnostics)
	}
	if tree != "(var a 1)\n" {
		t.Errorf("Unexpected tree after recovery: %s", tree)
	}
}

func TestParseLimits(t *testing.T) {
	params := make([]string, 256)
	arguments := make([]string, 256)
	for i := range params {
		params[i] = "p" + formatNumber(float64(i))
		arguments[i] = formatNumber(float64(i))
	}

	_, diagnostics := ParseTree("fun f(" + strings.Join(params, ", ") + ") {}")
	if len(diagnostics) != 1 || diagnostics[0].String() != "[line 1] Error at 'p255': Can't have more than 255 parameters." {
		t.Errorf("Expected a parameter limit error, found %v", diagnostics)
	}

	_, diagnostics = ParseTree("f(" + strings.Join(arguments, ", ") + ");")
	if len(diagnostics) != 1 || diagnostics[0].String() != "[line 1] Error at '255': Can't have more than 255 arguments." {
		t.Errorf("Expected an argument limit error, found %v", diagnostics)
	}

	// 255 is fine
	_, diagnostics = ParseTree("fun f(" + strings.Join(params[:255], ", ") + ") {}")
	if len(diagnostics) != 0 {
		t.Errorf("Unexpected diagnostics %v", diagnostics)
	}
}

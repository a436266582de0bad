package internal

import (
	"testing"
)

func scanSource(source string) *interpreterState {
	state := newInterpreterState(source, &testPrinter{})
	lexer := &lexer{
		line:  1,
		state: state,
	}
	lexer.scan()
	return state
}

func checkTokenTypes(t *testing.T, source string, expected ...tokenType) {
	t.Helper()
	state := scanSource(source)
	if len(state.tokens) != len(expected) {
		t.Errorf("Source %q: expected %d tokens, found %d", source, len(expected), len(state.tokens))
		return
	}
	for i, tk := range state.tokens {
		if tk.token != expected[i] {
			t.Errorf("Source %q: token %d should be %s instead of %s", source, i, expected[i], tk.token)
		}
	}
}

func TestScanTokens(t *testing.T) {
	checkTokenTypes(t, "", tkEOF)
	checkTokenTypes(t, "(){},.-+;/*", tkLeftParen, tkRightParen, tkLeftBrace, tkRightBrace,
		tkComma, tkDot, tkMinus, tkPlus, tkSemicolon, tkSlash, tkStar, tkEOF)
	checkTokenTypes(t, "! != = == > >= < <=", tkBang, tkBangEqual, tkEqual, tkEqualEqual,
		tkGreater, tkGreaterEqual, tkLess, tkLessEqual, tkEOF)
	checkTokenTypes(t, "and class else false fun for if nil or print return super this true var while break continue",
		tkAnd, tkClass, tkElse, tkFalse, tkFun, tkFor, tkIf, tkNil, tkOr, tkPrint, tkReturn,
		tkSuper, tkThis, tkTrue, tkVar, tkWhile, tkBreak, tkContinue, tkEOF)

	// Keywords are matched on the whole identifier
	checkTokenTypes(t, "orchid _var classy While", tkIdentifier, tkIdentifier, tkIdentifier, tkIdentifier, tkEOF)

	// Comments produce nothing
	checkTokenTypes(t, "// comment\n1", tkNumber, tkEOF)
	checkTokenTypes(t, "1 /* block\ncomment */ 2", tkNumber, tkNumber, tkEOF)

	// Block comments don't nest, the first */ closes them
	checkTokenTypes(t, "/* a /* b */ c */", tkIdentifier, tkStar, tkSlash, tkEOF)

	// Numbers don't take a leading or trailing dot
	checkTokenTypes(t, ".5", tkDot, tkNumber, tkEOF)
	checkTokenTypes(t, "5.", tkNumber, tkDot, tkEOF)
	checkTokenTypes(t, "1.2.3", tkNumber, tkDot, tkNumber, tkEOF)
}

func TestScanLiterals(t *testing.T) {
	state := scanSource(`12.5 "text" name`)

	if value, ok := state.tokens[0].literal.(float64); !ok || value != 12.5 {
		t.Errorf("Expected number literal 12.5, found %v", state.tokens[0].literal)
	}
	if value, ok := state.tokens[1].literal.(string); !ok || value != "text" {
		t.Errorf("Expected string literal text, found %v", state.tokens[1].literal)
	}
	if state.tokens[1].lexeme != `"text"` {
		t.Errorf("String lexeme should keep its quotes, found %s", state.tokens[1].lexeme)
	}
	if state.tokens[2].literal != nil {
		t.Errorf("Identifiers carry no literal, found %v", state.tokens[2].literal)
	}
}

func TestScanLines(t *testing.T) {
	state := scanSource("a\nb\n\"multi\nline\" c\n/* x\ny */ d")
	expected := []int{1, 2, 3, 4, 6, 6}
	for i, line := range expected {
		if state.tokens[i].line != line {
			t.Errorf("Token %s should be on line %d instead of %d", state.tokens[i].lexeme, line, state.tokens[i].line)
		}
	}
}

func TestScanErrors(t *testing.T) {
	// Unexpected characters are reported and scanning goes on
	state := scanSource("1 @ 2 # 3")
	if len(state.diagnostics) != 2 {
		t.Fatalf("Expected 2 diagnostics, found %d", len(state.diagnostics))
	}
	if state.diagnostics[0].String() != "[line 1] Error: Unexpected character." {
		t.Errorf("Unexpected diagnostic %s", state.diagnostics[0])
	}
	if len(state.tokens) != 4 {
		t.Errorf("Expected scanning to continue past errors, found %d tokens", len(state.tokens))
	}

	// Multi-byte characters are reported once
	state = scanSource("print 1; é")
	if len(state.diagnostics) != 1 {
		t.Errorf("Expected 1 diagnostic for a multi-byte character, found %v", state.diagnostics)
	}
	state = scanSource("a €€ b")
	if len(state.diagnostics) != 2 || len(state.tokens) != 3 {
		t.Errorf("Expected 2 diagnostics and 3 tokens, found %v and %d tokens", state.diagnostics, len(state.tokens))
	}

	// Non-ASCII text inside strings is kept as is
	state = scanSource(`"héllo"`)
	if len(state.diagnostics) != 0 || state.tokens[0].literal != "héllo" {
		t.Errorf("Expected string literal héllo, found %v", state.tokens[0].literal)
	}

	state = scanSource("\"never closed\n")
	if len(state.diagnostics) != 1 || state.diagnostics[0].String() != "[line 2] Error: Unterminated string." {
		t.Errorf("Expected unterminated string error, found %v", state.diagnostics)
	}

	state = scanSource("/* never closed")
	if len(state.diagnostics) != 1 || state.diagnostics[0].Message != errUnterminatedComment.Error() {
		t.Errorf("Expected unterminated comment error, found %v", state.diagnostics)
	}

	// Lexical errors stop the run before anything executes
	tp := &testPrinter{}
	RunSourceWithPrinter("print 1; @", tp)
	if !tp.Equals("[line 1] Error: Unexpected character.") {
		t.Errorf("Unexpected output %q", tp.printed)
	}
}

func TestTokenListing(t *testing.T) {
	listing, diagnostics := TokenListing("var x = \"hi\";\nprint 2.5;")
	expected := "1 VAR var\n" +
		"1 IDENTIFIER x\n" +
		"1 EQUAL =\n" +
		"1 STRING \"hi\" hi\n" +
		"1 SEMICOLON ;\n" +
		"2 PRINT print\n" +
		"2 NUMBER 2.5 2.5\n" +
		"2 SEMICOLON ;\n" +
		"2 EOF \n"
	if len(diagnostics) != 0 {
		t.Errorf("Unexpected diagnostics %v", diagnostics)
	}
	if listing != expected {
		t.Errorf("Expected listing:\n%s\nFound:\n%s", expected, listing)
	}
}

package main

import (
	"flag"
	"fmt"
	"go/format"
	"io/ioutil"
	"log"
	"os"
	"strings"
)

var nodes = map[string][]string{
	"Expr": {
		"Assign: name *token, value expr",
		"Binary: left expr, operator *token, right expr",
		"Call: callee expr, paren *token, arguments []expr",
		"Get: object expr, name *token",
		"Grouping: expression expr",
		"Literal: value interface{}",
		"Logical: left expr, operator *token, right expr",
		"Set: object expr, name *token, value expr",
		"Super: keyword *token, method *token",
		"This: keyword *token",
		"Unary: operator *token, right expr",
		"Variable: name *token",
	},
	"Stmt": {
		"Block: stmts []stmt",
		"Break: keyword *token",
		"Class: name *token, superclass *variableExpr, methods []*fnStmt",
		"Continue: keyword *token",
		"Expr: expression expr",
		"Fn: name *token, params []*token, body []stmt",
		"For: keyword *token, initializer stmt, condition expr, increment expr, body stmt",
		"If: condition expr, thenBranch stmt, elseBranch stmt",
		"Print: expression expr",
		"Return: keyword *token, value expr",
		"Var: name *token, initializer expr",
		"While: condition expr, body stmt",
	},
}

func main() {
	kind := flag.String("kind", "", "node family to generate (Expr or Stmt)")
	out := flag.String("out", "", "output file, stdout when empty")
	flag.Parse()

	types, ok := nodes[*kind]
	if !ok {
		fmt.Fprintln(os.Stderr, "Usage: astgen -kind Expr|Stmt [-out file.go]")
		os.Exit(64)
	}

	src, err := format.Source([]byte(generateAst(*kind, types)))
	if err != nil {
		log.Fatal(err)
	}

	if *out == "" {
		fmt.Print(string(src))
		return
	}
	if err := ioutil.WriteFile(*out, src, 0644); err != nil {
		log.Fatal(err)
	}
}

func generateAst(baseName string, types []string) string {
	base := strings.ToLower(baseName)

	out := "// Code generated by astgen. DO NOT EDIT.\n\n"
	out += "package internal\n\n"

	// Sealed interface: only types in this file implement it
	out += "type " + base + " interface {\n"
	out += "\t" + base + "Node()\n"
	out += "}\n\n"

	for _, t := range types {
		typeDef := strings.Split(t, ":")
		structName := strings.TrimSpace(typeDef[0])
		structFields := strings.TrimSpace(typeDef[1])
		out += generateType(baseName, structName, structFields)
	}

	return out
}

func generateType(baseName, name, fields string) string {
	base := strings.ToLower(baseName)
	structName := strings.ToLower(string(name[0])) + name[1:] + baseName

	out := "type " + structName + " struct {\n"
	for _, field := range strings.Split(fields, ",") {
		out += "\t" + strings.TrimSpace(field) + "\n"
	}
	out += "}\n\n"

	out += "func (*" + structName + ") " + base + "Node() {}\n\n"

	return out
}

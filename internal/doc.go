// Package internal implements the Lox pipeline: lexer, parser, resolver
// and tree-walking interpreter.
package internal

//go:generate go run ../cmd/astgen -kind Expr -out expr.go
//go:generate go run ../cmd/astgen -kind Stmt -out stmt.go

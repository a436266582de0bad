package internal

import (
	"fmt"
)

// signal is the outcome of executing a statement that did not run to
// completion. A nil signal means normal completion.
type signal interface {
	isSignal()
}

type returnValue struct {
	value interface{}
}

type breakValue struct{}

type continueValue struct{}

func (*returnValue) isSignal()   {}
func (*breakValue) isSignal()    {}
func (*continueValue) isSignal() {}

var (
	breakSignal    = &breakValue{}
	continueSignal = &continueValue{}
)

// uninitializedValue marks a variable declared without an initializer.
// It is distinct from nil so that an explicit nil assignment reads fine.
type uninitializedValue struct{}

var uninitialized = &uninitializedValue{}

// maxCallDepth is the deepest call nesting allowed before a stack overflow
// runtime error
const maxCallDepth = 1024

type exec struct {
	state   *interpreterState
	printer IPrinter

	callDepth int

	globals *env
	env     *env

	// locals is written by the resolver: scope distance per reference
	locals map[expr]int
}

func newExec(p IPrinter, clock func() float64) *exec {
	globals := newEnv(nil)
	defineGlobals(globals, clock)
	return &exec{
		printer: p,
		globals: globals,
		env:     globals,
		locals:  make(map[expr]int),
	}
}

func unhandledNode(node interface{}) string {
	return fmt.Sprintf("unhandled node %T", node)
}

// interpret runs the program, returns false when a runtime error stopped it
func (e *exec) interpret(stmts []stmt) (res bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(*RuntimeError); !ok {
				panic(r)
			}
			e.env = e.globals
			e.callDepth = 0
			res = false
		}
	}()
	for _, s := range stmts {
		e.execute(s)
	}
	return true
}

func (e *exec) execute(st stmt) signal {
	switch s := st.(type) {
	case *blockStmt:
		return e.executeBlock(s.stmts, newEnv(e.env))
	case *breakStmt:
		return breakSignal
	case *classStmt:
		e.executeClass(s)
	case *continueStmt:
		return continueSignal
	case *exprStmt:
		e.evaluate(s.expression)
	case *fnStmt:
		e.env.define(s.name.lexeme, &loxFunction{
			declaration:   s,
			closure:       e.env,
			isInitializer: false,
		})
	case *forStmt:
		return e.executeFor(s)
	case *ifStmt:
		if truthy(e.evaluate(s.condition)) {
			return e.execute(s.thenBranch)
		} else if s.elseBranch != nil {
			return e.execute(s.elseBranch)
		}
	case *printStmt:
		e.printer.Println(stringify(e.evaluate(s.expression)))
	case *returnStmt:
		var value interface{}
		if s.value != nil {
			value = e.evaluate(s.value)
		}
		return &returnValue{value: value}
	case *varStmt:
		var value interface{} = uninitialized
		if s.initializer != nil {
			value = e.evaluate(s.initializer)
		}
		e.env.define(s.name.lexeme, value)
	case *whileStmt:
		for truthy(e.evaluate(s.condition)) {
			switch result := e.execute(s.body).(type) {
			case *breakValue:
				return nil
			case *returnValue:
				return result
			}
		}
	default:
		panic(unhandledNode(st))
	}
	return nil
}

func (e *exec) executeBlock(stmts []stmt, env *env) signal {
	previous := e.env
	defer func() {
		e.env = previous
	}()
	e.env = env
	for _, s := range stmts {
		if result := e.execute(s); result != nil {
			return result
		}
	}
	return nil
}

// executeFor runs the increment after every iteration that completes
// normally or through continue. break leaves before the increment.
func (e *exec) executeFor(s *forStmt) signal {
	previous := e.env
	defer func() {
		e.env = previous
	}()
	e.env = newEnv(e.env)

	if s.initializer != nil {
		e.execute(s.initializer)
	}
	for truthy(e.evaluate(s.condition)) {
		switch result := e.execute(s.body).(type) {
		case *breakValue:
			return nil
		case *returnValue:
			return result
		}
		if s.increment != nil {
			e.evaluate(s.increment)
		}
	}
	return nil
}

func (e *exec) executeClass(s *classStmt) {
	var superclass *loxClass
	if s.superclass != nil {
		class, ok := e.evaluate(s.superclass).(*loxClass)
		if !ok {
			e.state.runtimeErr(errSuperclassMustBeClass, s.superclass.name)
		}
		superclass = class
	}

	// Defined first so methods can refer to the class by name
	e.env.define(s.name.lexeme, nil)

	environment := e.env
	if superclass != nil {
		environment = newEnv(e.env)
		environment.define("super", superclass)
	}

	methods := make(map[string]*loxFunction)
	for _, m := range s.methods {
		methods[m.name.lexeme] = &loxFunction{
			declaration:   m,
			closure:       environment,
			isInitializer: m.name.lexeme == "init",
		}
	}

	e.env.assign(s.name.lexeme, &loxClass{
		name:       s.name.lexeme,
		superclass: superclass,
		methods:    methods,
	})
}

func (e *exec) evaluate(ex expr) interface{} {
	switch x := ex.(type) {
	case *assignExpr:
		value := e.evaluate(x.value)
		if distance, ok := e.locals[x]; ok {
			e.env.assignAt(distance, x.name.lexeme, value)
		} else if !e.globals.assign(x.name.lexeme, value) {
			e.state.runtimeErr(fmt.Errorf("%w '%s'.", errUndefinedVar, x.name.lexeme), x.name)
		}
		return value
	case *binaryExpr:
		left := e.evaluate(x.left)
		right := e.evaluate(x.right)
		return e.operateBinary(x.operator, left, right)
	case *callExpr:
		return e.evaluateCall(x)
	case *getExpr:
		instance, ok := e.evaluate(x.object).(*loxInstance)
		if !ok {
			e.state.runtimeErr(errOnlyInstancesProps, x.name)
		}
		value, ok := instance.get(x.name)
		if !ok {
			e.state.runtimeErr(fmt.Errorf("%w '%s'.", errUndefinedProp, x.name.lexeme), x.name)
		}
		return value
	case *groupingExpr:
		return e.evaluate(x.expression)
	case *literalExpr:
		return x.value
	case *logicalExpr:
		left := e.evaluate(x.left)
		if x.operator.token == tkOr {
			if truthy(left) {
				return left
			}
		} else if !truthy(left) {
			return left
		}
		return e.evaluate(x.right)
	case *setExpr:
		instance, ok := e.evaluate(x.object).(*loxInstance)
		if !ok {
			e.state.runtimeErr(errOnlyInstancesFields, x.name)
		}
		value := e.evaluate(x.value)
		instance.set(x.name, value)
		return value
	case *superExpr:
		return e.evaluateSuper(x)
	case *thisExpr:
		return e.lookUpVariable(x.keyword, x)
	case *unaryExpr:
		return e.operateUnary(x.operator, e.evaluate(x.right))
	case *variableExpr:
		return e.lookUpVariable(x.name, x)
	default:
		panic(unhandledNode(ex))
	}
}

func (e *exec) evaluateCall(x *callExpr) interface{} {
	callee := e.evaluate(x.callee)
	arguments := make([]interface{}, len(x.arguments))
	for i := range x.arguments {
		arguments[i] = e.evaluate(x.arguments[i])
	}

	fn, isFn := callee.(callable)
	if !isFn {
		e.state.runtimeErr(errOnlyCallable, x.paren)
	}

	if len(arguments) != fn.arity() {
		e.state.runtimeErr(fmt.Errorf(
			"%w: expected %d arguments but got %d.",
			errInvalidNumberArguments,
			fn.arity(),
			len(arguments),
		), x.paren)
	}

	if e.callDepth >= maxCallDepth {
		e.state.runtimeErr(errStackOverflow, x.paren)
	}
	e.callDepth++
	defer func() {
		e.callDepth--
	}()

	return fn.call(e, arguments)
}

func (e *exec) evaluateSuper(x *superExpr) interface{} {
	distance := e.locals[x]
	superValue, _ := e.env.getAt(distance, "super")
	superclass := superValue.(*loxClass)

	// this is always bound one scope inside super
	thisValue, _ := e.env.getAt(distance-1, "this")
	instance := thisValue.(*loxInstance)

	method := superclass.findMethod(x.method.lexeme)
	if method == nil {
		e.state.runtimeErr(fmt.Errorf("%w '%s'.", errUndefinedProp, x.method.lexeme), x.method)
	}
	return method.bind(instance)
}

func (e *exec) lookUpVariable(name *token, ex expr) interface{} {
	var value interface{}
	var ok bool
	if distance, found := e.locals[ex]; found {
		value, ok = e.env.getAt(distance, name.lexeme)
	} else {
		value, ok = e.globals.get(name.lexeme)
	}
	if !ok {
		e.state.runtimeErr(fmt.Errorf("%w '%s'.", errUndefinedVar, name.lexeme), name)
	}
	if value == uninitialized {
		e.state.runtimeErr(fmt.Errorf("%w '%s'.", errUninitializedVar, name.lexeme), name)
	}
	return value
}

package internal

import "fmt"

type callable interface {
	arity() int
	call(exec *exec, arguments []interface{}) interface{}
}

// loxFunction is a user function paired with the env it closes over
type loxFunction struct {
	declaration   *fnStmt
	closure       *env
	isInitializer bool
}

func (f *loxFunction) arity() int {
	return len(f.declaration.params)
}

func (f *loxFunction) call(exec *exec, arguments []interface{}) interface{} {
	environment := newEnv(f.closure)
	for i, param := range f.declaration.params {
		environment.define(param.lexeme, arguments[i])
	}

	result := exec.executeBlock(f.declaration.body, environment)

	if f.isInitializer {
		this, _ := f.closure.getAt(0, "this")
		return this
	}
	if ret, isReturn := result.(*returnValue); isReturn {
		return ret.value
	}
	return nil
}

// bind returns a copy of the method whose closure has this defined
func (f *loxFunction) bind(instance *loxInstance) *loxFunction {
	environment := newEnv(f.closure)
	environment.define("this", instance)
	return &loxFunction{
		declaration:   f.declaration,
		closure:       environment,
		isInitializer: f.isInitializer,
	}
}

func (f *loxFunction) String() string {
	return fmt.Sprintf("<fn %s>", f.declaration.name.lexeme)
}

type nativeFn struct {
	arityValue int
	callFn     func(exec *exec, arguments []interface{}) interface{}
}

func (n *nativeFn) arity() int {
	return n.arityValue
}

func (n *nativeFn) call(exec *exec, arguments []interface{}) interface{} {
	return n.callFn(exec, arguments)
}

func (n *nativeFn) String() string {
	return "<native fn>"
}

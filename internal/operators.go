package internal

// operatorApply applies a binary operator to two numbers
type operatorApply func(x, y float64) (interface{}, error)

func (e *exec) operateBinary(operator *token, left, right interface{}) interface{} {
	switch operator.token {
	case tkEqualEqual:
		return isEqual(left, right)
	case tkBangEqual:
		return !isEqual(left, right)
	case tkPlus:
		if value, ok := concatenate(left, right); ok {
			return value
		}
	}

	apply, ok := numberOperations[operator.token]
	if !ok {
		panic(unhandledNode(operator))
	}

	x, okX := left.(float64)
	y, okY := right.(float64)
	if !okX || !okY {
		if operator.token == tkPlus {
			e.state.runtimeErr(errOperandsAdd, operator)
		}
		e.state.runtimeErr(errOperandsNumbers, operator)
	}

	value, err := apply(x, y)
	if err != nil {
		e.state.runtimeErr(err, operator)
	}
	return value
}

func (e *exec) operateUnary(operator *token, right interface{}) interface{} {
	switch operator.token {
	case tkBang:
		return !truthy(right)
	case tkMinus:
		value, ok := right.(float64)
		if !ok {
			e.state.runtimeErr(errOperandNumber, operator)
		}
		return -value
	}
	panic(unhandledNode(operator))
}

// truthy: only nil and false are falsy
func truthy(value interface{}) bool {
	if value == nil {
		return false
	}
	if valueBool, isBool := value.(bool); isBool {
		return valueBool
	}
	return true
}

// isEqual never coerces between types. Instances and callables compare by
// identity since they are pointers.
func isEqual(left, right interface{}) bool {
	if left == nil && right == nil {
		return true
	}
	if left == nil {
		return false
	}
	return left == right
}

package internal

import "fmt"

// concatenate joins two strings, or a string and a number in either order
func concatenate(left, right interface{}) (interface{}, bool) {
	switch x := left.(type) {
	case string:
		switch y := right.(type) {
		case string:
			return x + y, true
		case float64:
			return x + formatNumber(y), true
		}
	case float64:
		if y, ok := right.(string); ok {
			return formatNumber(x) + y, true
		}
	}
	return nil, false
}

func stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case float64:
		return formatNumber(v)
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprintf("%v", value)
}

package internal

import (
	"math"
	"strconv"
)

var numberOperations = map[tokenType]operatorApply{
	tkPlus: func(x, y float64) (interface{}, error) {
		return x + y, nil
	},
	tkMinus: func(x, y float64) (interface{}, error) {
		return x - y, nil
	},
	tkStar: func(x, y float64) (interface{}, error) {
		return x * y, nil
	},
	tkSlash: func(x, y float64) (interface{}, error) {
		if y == 0 {
			return nil, errDivisionByZero
		}
		return x / y, nil
	},
	tkGreater: func(x, y float64) (interface{}, error) {
		return x > y, nil
	},
	tkGreaterEqual: func(x, y float64) (interface{}, error) {
		return x >= y, nil
	},
	tkLess: func(x, y float64) (interface{}, error) {
		return x < y, nil
	},
	tkLessEqual: func(x, y float64) (interface{}, error) {
		return x <= y, nil
	},
}

// formatNumber prints integral values without a trailing .0
func formatNumber(n float64) string {
	switch {
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	case math.IsNaN(n):
		return "NaN"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

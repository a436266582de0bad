package internal

import "time"

func defineGlobals(e *env, clock func() float64) {
	defineClock(e, clock)
}

func defineClock(e *env, clock func() float64) {
	var clockFn nativeFn
	clockFn.callFn = func(exec *exec, arguments []interface{}) interface{} {
		return clock()
	}

	e.define("clock", &clockFn)
}

// wallClock returns seconds since the Unix epoch
func wallClock() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Second)
}

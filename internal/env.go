package internal

// env is one scope in the chain. Closures hold a pointer to the env active
// at definition time, so several closures may share and mutate one env.
type env struct {
	enclosing *env
	values    map[string]interface{}
}

func newEnv(enclosing *env) *env {
	return &env{
		enclosing: enclosing,
		values:    make(map[string]interface{}),
	}
}

func (e *env) get(name string) (interface{}, bool) {
	if value, ok := e.values[name]; ok {
		return value, true
	}
	if e.enclosing != nil {
		return e.enclosing.get(name)
	}
	return nil, false
}

func (e *env) define(name string, value interface{}) {
	e.values[name] = value
}

func (e *env) assign(name string, value interface{}) bool {
	if _, ok := e.values[name]; ok {
		e.values[name] = value
		return true
	}
	if e.enclosing != nil {
		return e.enclosing.assign(name, value)
	}
	return false
}

func (e *env) ancestor(distance int) *env {
	environment := e
	for i := 0; i < distance; i++ {
		environment = environment.enclosing
	}
	return environment
}

func (e *env) getAt(distance int, name string) (interface{}, bool) {
	value, ok := e.ancestor(distance).values[name]
	return value, ok
}

func (e *env) assignAt(distance int, name string, value interface{}) {
	e.ancestor(distance).values[name] = value
}

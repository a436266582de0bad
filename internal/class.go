package internal

type loxClass struct {
	name       string
	superclass *loxClass
	methods    map[string]*loxFunction
}

// findMethod looks in the class first, then up the superclass chain
func (c *loxClass) findMethod(name string) *loxFunction {
	if method, ok := c.methods[name]; ok {
		return method
	}
	if c.superclass != nil {
		return c.superclass.findMethod(name)
	}
	return nil
}

func (c *loxClass) arity() int {
	if init := c.findMethod("init"); init != nil {
		return init.arity()
	}
	return 0
}

// call creates an instance, init's own return value is discarded
func (c *loxClass) call(exec *exec, arguments []interface{}) interface{} {
	instance := &loxInstance{
		class:  c,
		fields: make(map[string]interface{}),
	}
	if init := c.findMethod("init"); init != nil {
		init.bind(instance).call(exec, arguments)
	}
	return instance
}

func (c *loxClass) String() string {
	return c.name
}

package internal

type loxInstance struct {
	class  *loxClass
	fields map[string]interface{}
}

// get prefers fields over methods; methods come back bound to the instance
func (o *loxInstance) get(name *token) (interface{}, bool) {
	if value, ok := o.fields[name.lexeme]; ok {
		return value, true
	}
	if method := o.class.findMethod(name.lexeme); method != nil {
		return method.bind(o), true
	}
	return nil, false
}

func (o *loxInstance) set(name *token, value interface{}) {
	o.fields[name.lexeme] = value
}

func (o *loxInstance) String() string {
	return o.class.name + " instance"
}

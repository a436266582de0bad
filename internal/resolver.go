package internal

type functionType int

const (
	fnNone functionType = iota
	fnFunction
	fnMethod
	fnInitializer
)

type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// callStack is the static context of the function being resolved. Loops
// are counted per function so break and continue never cross a call.
type callStack struct {
	function  functionType
	loopCount int
}

// resolver computes scope distances for every local variable reference and
// writes them to locals. Globals get no entry.
type resolver struct {
	scopes []map[string]bool
	cls    []*callStack
	class  classType

	locals map[expr]int
	state  *interpreterState
}

func newResolver(state *interpreterState, locals map[expr]int) *resolver {
	return &resolver{
		cls:    []*callStack{{function: fnNone}},
		class:  classNone,
		locals: locals,
		state:  state,
	}
}

func (r *resolver) getContext() *callStack {
	return r.cls[len(r.cls)-1]
}

func (r *resolver) enterFunction(kind functionType) {
	r.cls = append(r.cls, &callStack{
		function:  kind,
		loopCount: 0,
	})
}

func (r *resolver) leaveFunction() {
	r.cls = r.cls[:len(r.cls)-1]
}

func (r *resolver) enterLoop() {
	r.getContext().loopCount++
}

func (r *resolver) leaveLoop() {
	r.getContext().loopCount--
}

func (r *resolver) insideLoop() bool {
	return r.getContext().loopCount != 0
}

func (r *resolver) resolve(stmts []stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *resolver) resolveStmt(st stmt) {
	switch s := st.(type) {
	case *blockStmt:
		r.beginScope()
		r.resolve(s.stmts)
		r.endScope()
	case *classStmt:
		r.resolveClass(s)
	case *exprStmt:
		r.resolveExpr(s.expression)
	case *fnStmt:
		r.declare(s.name)
		r.define(s.name)
		r.resolveFunction(s, fnFunction)
	case *forStmt:
		r.beginScope()
		if s.initializer != nil {
			r.resolveStmt(s.initializer)
		}
		r.resolveExpr(s.condition)
		if s.increment != nil {
			r.resolveExpr(s.increment)
		}
		r.enterLoop()
		r.resolveStmt(s.body)
		r.leaveLoop()
		r.endScope()
	case *ifStmt:
		r.resolveExpr(s.condition)
		r.resolveStmt(s.thenBranch)
		if s.elseBranch != nil {
			r.resolveStmt(s.elseBranch)
		}
	case *printStmt:
		r.resolveExpr(s.expression)
	case *returnStmt:
		function := r.getContext().function
		if function == fnNone {
			r.state.tokenError(s.keyword, errTopLevelReturn)
		}
		if s.value != nil {
			if function == fnInitializer {
				r.state.tokenError(s.keyword, errInitializerReturn)
			}
			r.resolveExpr(s.value)
		}
	case *breakStmt:
		if !r.insideLoop() {
			r.state.tokenError(s.keyword, errBreakOutsideLoop)
		}
	case *continueStmt:
		if !r.insideLoop() {
			r.state.tokenError(s.keyword, errContinueOutsideLoop)
		}
	case *varStmt:
		r.declare(s.name)
		if s.initializer != nil {
			r.resolveExpr(s.initializer)
		}
		r.define(s.name)
	case *whileStmt:
		r.resolveExpr(s.condition)
		r.enterLoop()
		r.resolveStmt(s.body)
		r.leaveLoop()
	default:
		panic(unhandledNode(st))
	}
}

func (r *resolver) resolveClass(s *classStmt) {
	enclosingClass := r.class
	r.class = classClass

	r.declare(s.name)
	r.define(s.name)

	if s.superclass != nil {
		if s.superclass.name.lexeme == s.name.lexeme {
			r.state.tokenError(s.superclass.name, errInheritFromSelf)
		}
		r.class = classSubclass
		r.resolveExpr(s.superclass)

		r.beginScope()
		r.peekScope()["super"] = true
	}

	r.beginScope()
	r.peekScope()["this"] = true

	for _, method := range s.methods {
		kind := fnMethod
		if method.name.lexeme == "init" {
			kind = fnInitializer
		}
		r.resolveFunction(method, kind)
	}

	r.endScope()

	if s.superclass != nil {
		r.endScope()
	}

	r.class = enclosingClass
}

func (r *resolver) resolveFunction(fn *fnStmt, kind functionType) {
	r.enterFunction(kind)
	defer r.leaveFunction()

	r.beginScope()
	for _, param := range fn.params {
		r.declare(param)
		r.define(param)
	}
	r.resolve(fn.body)
	r.endScope()
}

func (r *resolver) resolveExpr(ex expr) {
	switch e := ex.(type) {
	case *assignExpr:
		r.resolveExpr(e.value)
		r.resolveLocal(e, e.name)
	case *binaryExpr:
		r.resolveExpr(e.left)
		r.resolveExpr(e.right)
	case *callExpr:
		r.resolveExpr(e.callee)
		for _, argument := range e.arguments {
			r.resolveExpr(argument)
		}
	case *getExpr:
		r.resolveExpr(e.object)
	case *groupingExpr:
		r.resolveExpr(e.expression)
	case *literalExpr:
	case *logicalExpr:
		r.resolveExpr(e.left)
		r.resolveExpr(e.right)
	case *setExpr:
		r.resolveExpr(e.value)
		r.resolveExpr(e.object)
	case *superExpr:
		if r.class == classNone {
			r.state.tokenError(e.keyword, errSuperOutsideClass)
		} else if r.class != classSubclass {
			r.state.tokenError(e.keyword, errSuperWithoutSuperclass)
		}
		r.resolveLocal(e, e.keyword)
	case *thisExpr:
		if r.class == classNone {
			r.state.tokenError(e.keyword, errThisOutsideClass)
			return
		}
		r.resolveLocal(e, e.keyword)
	case *unaryExpr:
		r.resolveExpr(e.right)
	case *variableExpr:
		if len(r.scopes) > 0 {
			if defined, declared := r.peekScope()[e.name.lexeme]; declared && !defined {
				r.state.tokenError(e.name, errOwnInitializer)
			}
		}
		r.resolveLocal(e, e.name)
	default:
		panic(unhandledNode(ex))
	}
}

func (r *resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *resolver) peekScope() map[string]bool {
	return r.scopes[len(r.scopes)-1]
}

// declare marks a name as present but not yet usable
func (r *resolver) declare(name *token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.peekScope()
	if _, ok := scope[name.lexeme]; ok {
		r.state.tokenError(name, errAlreadyDeclared)
	}
	scope[name.lexeme] = false
}

func (r *resolver) define(name *token) {
	if len(r.scopes) == 0 {
		return
	}
	r.peekScope()[name.lexeme] = true
}

func (r *resolver) resolveLocal(ex expr, name *token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.lexeme]; ok {
			r.locals[ex] = len(r.scopes) - 1 - i
			return
		}
	}
}

package condition

// Node is an expression tree node. The set of implementations is closed.
type Node interface {
	node()
}

// Literal is a string, number, boolean or null constant.
type Literal struct {
	Value any
}

// List is a list literal such as ['a', 'b'].
type List struct {
	Items []Node
}

// Map is a map literal such as {'a': 1}.
type Map struct {
	Keys   []Node
	Values []Node
}

// Not negates the truthiness of its operand.
type Not struct {
	X Node
}

// Binary is a comparison or boolean connective.
type Binary struct {
	Op    string
	Left  Node
	Right Node
}

// Call is an invocation of one of the built-in functions.
type Call struct {
	Name string
	Args []Node
}

func (Literal) node() {}
func (List) node()    {}
func (Map) node()     {}
func (Not) node()     {}
func (Binary) node()  {}
func (Call) node()    {}

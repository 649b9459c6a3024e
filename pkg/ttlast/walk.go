package ttlast

// ControlFlow is the signal a visitor returns to steer the walk.
type ControlFlow int

const (
	// Continue proceeds normally.
	Continue ControlFlow = iota

	// SkipChildren skips the remaining children of the current node, then
	// resumes normally at its siblings.
	SkipChildren

	// Stop aborts the entire walk.
	Stop
)

// Order selects when a node is visited relative to its children.
type Order int

const (
	// PreOrder visits a node before its children.
	PreOrder Order = iota

	// PostOrder visits a node after its children.
	PostOrder

	// InOrder visits a node after its first child and before the rest.
	// Nodes with fewer than two children behave as in PreOrder. For a
	// Triple this yields subject, triple, predicate-object list.
	InOrder
)

// Visitor receives nodes during a walk. Enter carries the control signal;
// Exit fires after a composite node's children have been walked (or
// skipped). Consumers dispatch per variant with a type switch.
type Visitor interface {
	Enter(n Node) ControlFlow
	Exit(n Node)
}

// EnterFunc adapts a function to the Visitor interface with a no-op Exit.
type EnterFunc func(n Node) ControlFlow

// Enter implements Visitor.
func (f EnterFunc) Enter(n Node) ControlFlow { return f(n) }

// Exit implements Visitor.
func (EnterFunc) Exit(Node) {}

// Walker runs a configurable-order traversal and tracks walk state.
// State is reset at the start of every Walk call, so one Walker can be
// reused across trees.
type Walker struct {
	Order Order

	depth    int
	maxDepth int
	visited  int
	current  Node
	parent   Node
}

// Depth returns the depth of the node currently being visited.
func (w *Walker) Depth() int { return w.depth }

// MaxDepth returns the deepest level reached during the last walk.
func (w *Walker) MaxDepth() int { return w.maxDepth }

// Visited returns the number of nodes visited during the last walk.
func (w *Walker) Visited() int { return w.visited }

// Current returns the node currently being visited, or nil outside a walk.
func (w *Walker) Current() Node { return w.current }

// ParentOfCurrent returns the parent of the node currently being visited.
func (w *Walker) ParentOfCurrent() Node { return w.parent }

// Walk traverses root with the configured order. The returned signal is
// Stop if the visitor aborted, Continue otherwise.
func (w *Walker) Walk(root Node, v Visitor) ControlFlow {
	w.depth = 0
	w.maxDepth = 0
	w.visited = 0
	w.current = nil
	w.parent = nil
	return w.walk(root, v)
}

func (w *Walker) walk(n Node, v Visitor) ControlFlow {
	if n == nil {
		return Continue
	}

	// Save and restore walk state around the recursion so re-entrant
	// visitors observe the correct current/parent pair.
	savedCurrent, savedParent := w.current, w.parent
	w.parent = w.current
	w.current = n
	w.depth++
	if w.depth > w.maxDepth {
		w.maxDepth = w.depth
	}
	w.visited++
	defer func() {
		w.depth--
		w.current, w.parent = savedCurrent, savedParent
	}()

	switch w.Order {
	case PostOrder:
		if w.walkChildren(n, v, 0) == Stop {
			return Stop
		}
		if v.Enter(n) == Stop {
			return Stop
		}
		v.Exit(n)
		return Continue

	case InOrder:
		if n.ChildCount() >= 2 {
			if w.walk(n.Child(0), v) == Stop {
				return Stop
			}
			switch v.Enter(n) {
			case Stop:
				return Stop
			case SkipChildren:
				v.Exit(n)
				return Continue
			}
			if w.walkChildren(n, v, 1) == Stop {
				return Stop
			}
			v.Exit(n)
			return Continue
		}
		fallthrough

	default: // PreOrder
		switch v.Enter(n) {
		case Stop:
			return Stop
		case SkipChildren:
			v.Exit(n)
			return Continue
		}
		if w.walkChildren(n, v, 0) == Stop {
			return Stop
		}
		v.Exit(n)
		return Continue
	}
}

func (w *Walker) walkChildren(n Node, v Visitor, from int) ControlFlow {
	for i, count := from, n.ChildCount(); i < count; i++ {
		if w.walk(n.Child(i), v) == Stop {
			return Stop
		}
	}
	return Continue
}

// Accept walks root pre-order with a fresh Walker. This is the traversal
// entry point external consumers depend on.
func Accept(root Node, v Visitor) ControlFlow {
	w := Walker{Order: PreOrder}
	return w.Walk(root, v)
}

// Inspect walks root pre-order, calling fn for every node.
func Inspect(root Node, fn func(n Node) ControlFlow) {
	Accept(root, EnterFunc(fn))
}

// FindAll returns all nodes matching the predicate, in pre-order.
func FindAll(root Node, predicate func(n Node) bool) []Node {
	var result []Node
	Inspect(root, func(n Node) ControlFlow {
		if predicate(n) {
			result = append(result, n)
		}
		return Continue
	})
	return result
}

// FindFirst returns the first node matching the predicate, or nil.
func FindFirst(root Node, predicate func(n Node) bool) Node {
	var found Node
	Inspect(root, func(n Node) ControlFlow {
		if predicate(n) {
			found = n
			return Stop
		}
		return Continue
	})
	return found
}

// FindByKind returns all nodes of the given kind, in pre-order.
func FindByKind(root Node, kind NodeKind) []Node {
	return FindAll(root, func(n Node) bool {
		return n.Kind() == kind
	})
}

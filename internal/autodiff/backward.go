package autodiff

import "log"

// Option configures a Backward pass.
type Option func(*backwardConfig)

type backwardConfig struct {
	logger *log.Logger
}

// WithLogger traces the pass to logger: the size of the topological order,
// then one line per node as its rule runs. Backward is silent without it.
func WithLogger(logger *log.Logger) Option {
	return func(c *backwardConfig) {
		c.logger = logger
	}
}

// Backward computes the derivative of v with respect to every node reachable
// from it and adds the results into their Grad fields.
//
// The pass sets v.Grad to 1, then runs backward rules in reverse topological
// order so that a node's Grad is complete before it is pushed to its operands.
// Grad values are not reset first; zero them before calling Backward again on
// a graph that shares nodes with a previous pass.
func (v *Value) Backward(opts ...Option) {
	var cfg backwardConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	order := TopoSort(v)
	if cfg.logger != nil {
		cfg.logger.Printf("backward: %d nodes reachable from %s", len(order), v)
	}

	v.Grad = 1
	for i := len(order) - 1; i >= 0; i-- {
		node := order[i]
		if node.backward == nil {
			continue
		}
		node.backward()
		if cfg.logger != nil {
			cfg.logger.Printf("backward: %s", node)
		}
	}
}

// TopoSort returns every node reachable from root through operand edges,
// operands before the results that use them. root is last.
//
// Traversal is a depth-first post-order with a visited set keyed by node
// identity. It uses an explicit stack, so long chains do not grow the
// goroutine stack.
func TopoSort(root *Value) []*Value {
	type frame struct {
		node *Value
		next int // index of the next operand to visit
	}

	var order []*Value
	visited := map[*Value]struct{}{root: {}}
	stack := []frame{{node: root}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.node.prev) {
			child := top.node.prev[top.next]
			top.next++
			if _, seen := visited[child]; !seen {
				visited[child] = struct{}{}
				stack = append(stack, frame{node: child})
			}
			continue
		}
		order = append(order, top.node)
		stack = stack[:len(stack)-1]
	}

	return order
}

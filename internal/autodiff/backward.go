package autodiff

// Backward propagates v's gradient to every node that v was computed from.
//
// The caller seeds v's gradient first, conventionally with SetGrad(1.0).
//
// Algorithm:
//  1. Count, for every node reachable from v, how many reachable nodes use it
//     as an operand.
//  2. Start a work list with v.
//  3. Pop a node n; for each operand edge (d, o): o.grad += n.grad * d, and
//     decrement o's counts. When o's count reaches zero, push o.
//
// A node is pushed only after every reachable consumer has propagated through
// it, so by the time it is processed its gradient is the sum over all paths
// from v, including shared sub-expressions such as z in w = z + z.
//
// The counts in step 1 are scoped to this call. The lifetime pending counter
// on each node is still decremented (never below zero) so PendingDependents
// reflects what was consumed, but a node that is also used by some unrelated
// graph is not blocked by edges this sweep can never reach.
func (v Var) Backward() {
	root := v.node()
	deps := countDependents(root)

	stack := []*node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, e := range n.operands {
			o := e.n
			o.grad += n.grad * e.partial
			if o.pending > 0 {
				o.pending--
			}

			deps[o]--
			if deps[o] == 0 {
				stack = append(stack, o)
			}
		}
	}
}

// countDependents returns, for every node below root, the number of edges
// reachable from root that point at it.
func countDependents(root *node) map[*node]int {
	deps := make(map[*node]int)
	seen := map[*node]struct{}{root: {}}

	stack := []*node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, e := range n.operands {
			deps[e.n]++
			if _, ok := seen[e.n]; !ok {
				seen[e.n] = struct{}{}
				stack = append(stack, e.n)
			}
		}
	}
	return deps
}

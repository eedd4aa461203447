package lqp

import (
	"github.com/golang-collections/collections/stack"

	"github.com/wjcskqygj2015/hyrise/internal/trace"
)

// reachable walks the DAG rooted at root iteratively — a stack rather than
// recursion, so a deep plan does not risk blowing the goroutine stack — and
// returns the set of nodes reachable from it, root included. Nodes with two
// parents are visited once, as tracked by the visited set.
func reachable(root Node) map[Node]bool {
	visited := make(map[Node]bool)
	if root == nil {
		return visited
	}
	s := stack.New()
	s.Push(root)
	for s.Len() > 0 {
		n := s.Pop().(Node)
		if visited[n] {
			continue
		}
		visited[n] = true
		left, right := n.Inputs()
		if left != nil {
			s.Push(left)
		}
		if right != nil {
			s.Push(right)
		}
	}
	return visited
}

// ValidateColumnReferences walks the plan rooted at root and checks that
// every LQPColumn referenced by any reachable node's NodeExpressions names an
// owner reachable from root. ColumnExpressions are not walked separately:
// every node kind derives them from its own NodeExpressions, its inputs'
// ColumnExpressions, or LQPColumns owned by itself. A plan built solely
// through this package's constructors cannot violate this — LQPColumns are
// only ever created against nodes already wired into the DAG being built —
// but a plan assembled by hand (tests, a future optimizer) can, so this is
// exposed for callers that want the check.
func ValidateColumnReferences(root Node) error {
	visited := reachable(root)
	trace.Printf(trace.Validation, "ValidateColumnReferences: %d reachable nodes\n", len(visited))
	for n := range visited {
		if err := checkExpressionsReachable(n.NodeExpressions(), visited); err != nil {
			trace.Printf(trace.Validation, "ValidateColumnReferences: %v\n", err)
			return err
		}
	}
	return nil
}

package lqp

import (
	"fmt"

	"github.com/wjcskqygj2015/hyrise/expr"
	"github.com/wjcskqygj2015/hyrise/lqperr"
)

func checkExpressionsReachable(exprs []expr.Expression, visited map[Node]bool) error {
	for _, e := range exprs {
		for _, col := range expr.ColumnRefs(e) {
			owner, ok := col.Owner.(Node)
			if !ok || !visited[owner] {
				return &lqperr.UnknownColumn{Msg: fmt.Sprintf(
					"column %s references a node not reachable from the plan root", col.Description(expr.Short),
				)}
			}
		}
	}
	return nil
}

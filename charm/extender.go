package charm

import (
	"context"
	"sort"

	"github.com/kwertop/gocharm/closure"
	"github.com/kwertop/gocharm/itemset"
	"github.com/kwertop/gocharm/matrix"
	"github.com/kwertop/gocharm/sink"
	"github.com/kwertop/gocharm/tidset"
)

// member is an itemset of an equivalence class.
// _items_ is the suffix appended to the class prefix
// _tids_ represents prefix ∪ items
// _removed_ is set once another member absorbed this one
type member struct {
	items   []int
	tids    tidset.TidsetLike
	removed bool
}

func (m *member) support() int {
	return m.tids.Support()
}

// absorb appends the items of _other_ to the member
func (m *member) absorb(other *member) {
	items := make([]int, 0, len(m.items)+len(other.items))
	items = append(items, m.items...)
	m.items = append(items, other.items...)
}

// extender walks the equivalence classes depth first and feeds the closure
// table. The _matrix_, when set, is consulted for the top level class only.
type extender struct {
	minsup int
	matrix *matrix.TriangularMatrix
	table  *closure.Table
	sink   sink.Sink
	joins  int
	pruned int
	closed int
}

// extend emits every closed itemset extending _prefix_ with the members of
// _class_
func (e *extender) extend(ctx context.Context, prefix []int, class []*member) error {
	top := len(prefix) == 0
	switch len(class) {
	case 0:
		return nil
	case 1:
		return e.save(prefix, class[0])
	case 2:
		if top {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		return e.extendPair(prefix, class[0], class[1], top)
	}
	for i, x := range class {
		if top {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if x.removed {
			continue
		}
		var child []*member
		for _, y := range class[i+1:] {
			if y.removed {
				continue
			}
			u, ok := e.join(x, y, top)
			if !ok {
				continue
			}
			switch {
			case x.support() == y.support() && u.Support() == x.support():
				x.absorb(y)
				y.removed = true
			case x.support() < y.support() && u.Support() == x.support():
				x.absorb(y)
			case x.support() > y.support() && u.Support() == y.support():
				y.removed = true
				child = append(child, &member{items: y.items, tids: u})
			default:
				child = append(child, &member{items: y.items, tids: u})
			}
		}
		if len(child) > 0 {
			if err := e.extend(ctx, concat(prefix, x.items), child); err != nil {
				return err
			}
		}
		if err := e.save(prefix, x); err != nil {
			return err
		}
	}
	return nil
}

// extendPair handles a class of two members with a single join
func (e *extender) extendPair(prefix []int, x, y *member, top bool) error {
	u, ok := e.join(x, y, top)
	if !ok {
		if err := e.save(prefix, x); err != nil {
			return err
		}
		return e.save(prefix, y)
	}
	xy := &member{items: concat(x.items, y.items), tids: u}
	if err := e.save(prefix, xy); err != nil {
		return err
	}
	if u.Support() != x.support() {
		if err := e.save(prefix, x); err != nil {
			return err
		}
	}
	if u.Support() != y.support() {
		return e.save(prefix, y)
	}
	return nil
}

// join returns the representation of x ∪ y when it is frequent. At the top
// level, pairs the matrix counts as infrequent are skipped without a join.
func (e *extender) join(x, y *member, top bool) (tidset.TidsetLike, bool) {
	if top && e.matrix != nil && e.matrix.Support(x.items[0], y.items[0]) < e.minsup {
		e.pruned++
		return nil, false
	}
	e.joins++
	u := x.tids.Join(y.tids)
	return u, u.Support() >= e.minsup
}

// save submits prefix ∪ m to the closure table and forwards it to the sink
// when accepted
func (e *extender) save(prefix []int, m *member) error {
	items := concat(prefix, m.items)
	sort.Ints(items)
	support := m.support()
	if !e.table.TryEmit(items, support, m.tids.Cover()) {
		return nil
	}
	e.closed++
	return e.sink.Emit(itemset.Itemset{Items: items, Support: support})
}

func concat(a, b []int) []int {
	items := make([]int, 0, len(a)+len(b))
	items = append(items, a...)
	return append(items, b...)
}

package calendarview_test

import (
	"testing"
	"time"

	"github.com/go-theft-auto/calendarview"
)

// cellView is a test view that records the content it was given.
type cellView struct {
	id      int
	config  any
	content any
	updates int
}

func cellRegistry() (*calendarview.ViewRegistry, *int) {
	made := new(int)
	r := calendarview.NewViewRegistry()
	r.Register("cell", calendarview.ViewFactory{
		Make: func(config any) calendarview.View {
			*made++
			return &cellView{id: *made, config: config}
		},
		Update: func(v calendarview.View, content any) {
			cv := v.(*cellView)
			cv.content = content
			cv.updates++
		},
	})
	return r, made
}

func visibleDays(config string, days ...calendarview.Day) []calendarview.VisibleView {
	views := make([]calendarview.VisibleView, len(days))
	for i, d := range days {
		views[i] = calendarview.VisibleView{
			Item:       calendarview.LayoutItem{Type: calendarview.DayItem(d)},
			Descriptor: calendarview.ItemDescriptor{Tag: "cell", Config: config, Content: d},
		}
	}
	return views
}

func viewsByItem(rec calendarview.Reconciliation) map[calendarview.ItemType]calendarview.View {
	views := make(map[calendarview.ItemType]calendarview.View)
	for _, a := range rec.Assignments() {
		views[a.Item.Type] = a.View
	}
	return views
}

func assertDistinctViews(t *testing.T, rec calendarview.Reconciliation) {
	t.Helper()
	seen := make(map[calendarview.View]calendarview.ItemType)
	for _, a := range rec.Assignments() {
		if other, dup := seen[a.View]; dup {
			t.Errorf("view shared by %s and %s", other, a.Item.Type)
		}
		seen[a.View] = a.Item.Type
	}
}

func TestReconcileRetainsAndAdopts(t *testing.T) {
	g := calendarview.NewGregorian()
	d := func(n int) calendarview.Day { return g.Day(2024, time.May, n) }
	registry, made := cellRegistry()
	pool := calendarview.NewReuseManager(registry)

	first := pool.Reconcile(visibleDays("a", d(1), d(2), d(3)), nil)
	if len(first.Create) != 3 || len(first.Adopt) != 0 || len(first.Update) != 0 {
		t.Fatalf("expected 3 creations, got %d created %d adopted %d updated",
			len(first.Create), len(first.Adopt), len(first.Update))
	}
	assertDistinctViews(t, first)
	before := viewsByItem(first)

	second := pool.Reconcile(visibleDays("a", d(2), d(3), d(4)), first.Assignments())
	assertDistinctViews(t, second)
	after := viewsByItem(second)

	for _, n := range []int{2, 3} {
		item := calendarview.DayItem(d(n))
		if after[item] != before[item] {
			t.Errorf("expected %s to keep its view", item)
		}
	}
	if got := after[calendarview.DayItem(d(4))]; got != before[calendarview.DayItem(d(1))] {
		t.Error("expected the new day to adopt the departed day's view")
	}
	if len(second.Adopt) != 1 || len(second.Update) != 2 || len(second.Create) != 0 {
		t.Errorf("expected 1 adopted and 2 updated, got %d adopted %d updated %d created",
			len(second.Adopt), len(second.Update), len(second.Create))
	}
	if len(second.Release) != 0 {
		t.Errorf("expected adopted views to be left out of Release, got %d", len(second.Release))
	}
	if *made != 3 {
		t.Errorf("expected 3 views made, got %d", *made)
	}

	adopted := second.Adopt[0].View.(*cellView)
	if adopted.content != d(4) {
		t.Errorf("expected adopted view to show %s, got %v", d(4), adopted.content)
	}
}

func TestReconcileReleasesAcrossDifferentiators(t *testing.T) {
	g := calendarview.NewGregorian()
	d := func(n int) calendarview.Day { return g.Day(2024, time.May, n) }
	registry, _ := cellRegistry()
	pool := calendarview.NewReuseManager(registry)

	first := pool.Reconcile(visibleDays("a", d(1), d(2)), nil)
	second := pool.Reconcile(visibleDays("b", d(2)), first.Assignments())

	if len(second.Create) != 1 {
		t.Fatalf("expected a new view for a new differentiator, got %d created", len(second.Create))
	}
	if len(second.Release) != 2 {
		t.Errorf("expected both old views released, got %d", len(second.Release))
	}
	if cfg := second.Create[0].View.(*cellView).config; cfg != "b" {
		t.Errorf("expected view made with config b, got %v", cfg)
	}

	stats := pool.Stats()
	if stats.Created != 3 || stats.Live != 3 || stats.Free != 2 {
		t.Errorf("unexpected stats %+v", stats)
	}

	third := pool.Reconcile(visibleDays("a", d(9)), second.Assignments())
	if len(third.Adopt) != 1 || len(third.Create) != 0 {
		t.Errorf("expected pooled view reused, got %d adopted %d created", len(third.Adopt), len(third.Create))
	}

	drained := pool.Drain()
	if len(drained) != 2 {
		t.Errorf("expected 2 drained views, got %d", len(drained))
	}
	if stats := pool.Stats(); stats.Free != 0 || stats.Live != 1 {
		t.Errorf("expected only the in-use view left, got %+v", stats)
	}
}

func TestReconcileDuplicateItemPanics(t *testing.T) {
	g := calendarview.NewGregorian()
	day := g.Day(2024, time.May, 1)
	registry, _ := cellRegistry()
	pool := calendarview.NewReuseManager(registry)

	defer func() {
		if recover() == nil {
			t.Error("expected panic for a duplicate visible item")
		}
	}()
	pool.Reconcile(visibleDays("a", day, day), nil)
}

func TestReconcileUnregisteredTagPanics(t *testing.T) {
	g := calendarview.NewGregorian()
	pool := calendarview.NewReuseManager(calendarview.NewViewRegistry())
	views := visibleDays("a", g.Day(2024, time.May, 1))

	defer func() {
		if recover() == nil {
			t.Error("expected panic for a tag with no factory")
		}
	}()
	pool.Reconcile(views, nil)
}

func TestReconcileForeignViewPanics(t *testing.T) {
	g := calendarview.NewGregorian()
	registry, _ := cellRegistry()
	pool := calendarview.NewReuseManager(registry)
	day := g.Day(2024, time.May, 1)
	previous := []calendarview.Assignment{{
		Item: calendarview.LayoutItem{Type: calendarview.DayItem(day)},
		View: &cellView{id: 99},
	}}

	defer func() {
		if recover() == nil {
			t.Error("expected panic for a view the pool did not create")
		}
	}()
	pool.Reconcile(visibleDays("a", day), previous)
}

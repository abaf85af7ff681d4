package calendarview

import (
	"fmt"
	"log/slog"
)

// View is an opaque visual object created by a ViewFactory. Views must be
// comparable (typically pointers), since the pool tracks them by identity.
type View any

// ViewFactory builds and updates the views for one type tag.
type ViewFactory struct {
	// Make creates a view for the invariant configuration of a differentiator.
	Make func(config any) View
	// Update applies per-item content to a view. Optional.
	Update func(v View, content any)
}

// ViewRegistry resolves type tags to view factories.
type ViewRegistry struct {
	factories map[string]ViewFactory
}

// NewViewRegistry creates an empty registry.
func NewViewRegistry() *ViewRegistry {
	return &ViewRegistry{factories: make(map[string]ViewFactory)}
}

// Register sets the factory for tag, replacing any previous one.
func (r *ViewRegistry) Register(tag string, f ViewFactory) {
	if f.Make == nil {
		panic(fmt.Sprintf("calendarview: factory for %q has no Make func", tag))
	}
	r.factories[tag] = f
}

// Has reports whether a factory is registered for tag.
func (r *ViewRegistry) Has(tag string) bool {
	_, ok := r.factories[tag]
	return ok
}

func (r *ViewRegistry) factory(tag string) ViewFactory {
	f, ok := r.factories[tag]
	if !ok {
		panic(fmt.Sprintf("calendarview: no view factory registered for %q", tag))
	}
	return f
}

// VisibleView pairs a visible item with the descriptor of its view.
type VisibleView struct {
	Item       LayoutItem
	Descriptor ItemDescriptor
}

// Assignment binds a visible item to the view displaying it.
type Assignment struct {
	Item       LayoutItem
	View       View
	Descriptor ItemDescriptor
}

// Reconciliation is the outcome of one reuse pass.
type Reconciliation struct {
	Create  []Assignment // Views constructed this pass
	Adopt   []Assignment // Pooled views taken by newly visible items
	Update  []Assignment // Views kept by items visible in both passes
	Release []View       // Views returned to the pool and not re-adopted
}

// Assignments returns every assignment of the pass.
func (r Reconciliation) Assignments() []Assignment {
	all := make([]Assignment, 0, len(r.Create)+len(r.Adopt)+len(r.Update))
	all = append(all, r.Update...)
	all = append(all, r.Adopt...)
	return append(all, r.Create...)
}

// ReuseManager is a pool of views keyed by ViewDifferentiator. It is owned by
// one engine and mutated only from the render loop.
type ReuseManager struct {
	registry *ViewRegistry
	free     map[ViewDifferentiator][]View
	diffs    map[View]ViewDifferentiator // Differentiator of every live view
	created  int
}

// NewReuseManager creates an empty pool that builds views through registry.
func NewReuseManager(registry *ViewRegistry) *ReuseManager {
	return &ReuseManager{
		registry: registry,
		free:     make(map[ViewDifferentiator][]View),
		diffs:    make(map[View]ViewDifferentiator),
	}
}

// Reconcile assigns views to current given the assignments of the previous
// pass. Items visible in both passes with an unchanged differentiator keep
// their view. Views of departed items go back to their differentiator's pool,
// where newly visible items adopt them before any new view is made.
func (m *ReuseManager) Reconcile(current []VisibleView, previous []Assignment) Reconciliation {
	var rec Reconciliation

	prevByType := make(map[ItemType]Assignment, len(previous))
	seenViews := make(map[View]bool, len(previous))
	for _, pa := range previous {
		if seenViews[pa.View] {
			panic(fmt.Sprintf("calendarview: view assigned to more than one item (%s)", pa.Item.Type))
		}
		seenViews[pa.View] = true
		prevByType[pa.Item.Type] = pa
	}

	seenItems := make(map[ItemType]bool, len(current))
	retained := make(map[ItemType]bool, len(current))
	for _, cv := range current {
		if seenItems[cv.Item.Type] {
			panic(fmt.Sprintf("calendarview: duplicate visible item %s", cv.Item.Type))
		}
		seenItems[cv.Item.Type] = true
		pa, ok := prevByType[cv.Item.Type]
		if !ok || m.differentiatorOf(pa.View) != cv.Descriptor.Differentiator() {
			continue
		}
		retained[cv.Item.Type] = true
		m.update(pa.View, cv.Descriptor)
		rec.Update = append(rec.Update, Assignment{Item: cv.Item, View: pa.View, Descriptor: cv.Descriptor})
	}

	released := make(map[View]bool)
	for _, pa := range previous {
		if retained[pa.Item.Type] {
			continue
		}
		diff := m.differentiatorOf(pa.View)
		m.free[diff] = append(m.free[diff], pa.View)
		released[pa.View] = true
	}

	for _, cv := range current {
		if retained[cv.Item.Type] {
			continue
		}
		diff := cv.Descriptor.Differentiator()
		if v, ok := m.take(diff); ok {
			delete(released, v)
			m.update(v, cv.Descriptor)
			rec.Adopt = append(rec.Adopt, Assignment{Item: cv.Item, View: v, Descriptor: cv.Descriptor})
			continue
		}
		v := m.construct(diff)
		m.update(v, cv.Descriptor)
		rec.Create = append(rec.Create, Assignment{Item: cv.Item, View: v, Descriptor: cv.Descriptor})
	}

	for _, pa := range previous {
		if released[pa.View] {
			rec.Release = append(rec.Release, pa.View)
		}
	}
	return rec
}

// Drain empties the pool of free views and returns them so the host can
// destroy them. Views in use are unaffected.
func (m *ReuseManager) Drain() []View {
	var drained []View
	for diff, views := range m.free {
		drained = append(drained, views...)
		for _, v := range views {
			delete(m.diffs, v)
		}
		delete(m.free, diff)
	}
	return drained
}

// PoolStats describes the pool for diagnostics.
type PoolStats struct {
	Created int // Views constructed over the pool's lifetime
	Live    int // Views currently tracked, in use or free
	Free    int // Views waiting for reuse
}

// Stats returns pool counters.
func (m *ReuseManager) Stats() PoolStats {
	free := 0
	for _, views := range m.free {
		free += len(views)
	}
	return PoolStats{Created: m.created, Live: len(m.diffs), Free: free}
}

func (m *ReuseManager) differentiatorOf(v View) ViewDifferentiator {
	diff, ok := m.diffs[v]
	if !ok {
		panic(fmt.Sprintf("calendarview: view %v was not created by this pool", v))
	}
	return diff
}

// take pops a free view for diff.
func (m *ReuseManager) take(diff ViewDifferentiator) (View, bool) {
	views := m.free[diff]
	if len(views) == 0 {
		return nil, false
	}
	v := views[len(views)-1]
	if got := m.diffs[v]; got != diff {
		panic(fmt.Sprintf("calendarview: pooled view of %q found in %q bucket", got.Tag, diff.Tag))
	}
	if len(views) == 1 {
		delete(m.free, diff)
	} else {
		m.free[diff] = views[:len(views)-1]
	}
	return v, true
}

func (m *ReuseManager) construct(diff ViewDifferentiator) View {
	v := m.registry.factory(diff.Tag).Make(diff.Config)
	if _, dup := m.diffs[v]; dup {
		panic(fmt.Sprintf("calendarview: factory for %q returned a view already in use", diff.Tag))
	}
	m.diffs[v] = diff
	m.created++
	Logger().Debug("calendarview: created view",
		slog.String("tag", diff.Tag),
		slog.Int("created", m.created))
	return v
}

func (m *ReuseManager) update(v View, d ItemDescriptor) {
	if f := m.registry.factory(d.Tag); f.Update != nil {
		f.Update(v, d.Content)
	}
}

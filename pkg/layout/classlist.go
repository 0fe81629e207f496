package layout

import "sort"

// ClassList is a set of marker classes, the stand-in for a DOM class list.
type ClassList struct {
	set map[string]struct{}
}

// NewClassList returns an empty list.
func NewClassList() *ClassList {
	return &ClassList{set: make(map[string]struct{})}
}

// Add inserts name. It reports whether the list changed.
func (l *ClassList) Add(name string) bool {
	if _, ok := l.set[name]; ok {
		return false
	}
	l.set[name] = struct{}{}
	return true
}

// Remove deletes name. It reports whether the list changed.
func (l *ClassList) Remove(name string) bool {
	if _, ok := l.set[name]; !ok {
		return false
	}
	delete(l.set, name)
	return true
}

// Has reports whether name is present.
func (l *ClassList) Has(name string) bool {
	_, ok := l.set[name]
	return ok
}

// List returns the classes in sorted order.
func (l *ClassList) List() []string {
	out := make([]string, 0, len(l.set))
	for name := range l.set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

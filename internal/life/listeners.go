package life

// listeners is a registration-ordered set of callbacks. Emitting iterates a
// snapshot, so callbacks may unsubscribe themselves while being invoked.
type listeners[T any] struct {
	nextID int
	subs   []subscriber[T]
}

type subscriber[T any] struct {
	id int
	fn func(T)
}

// add registers fn and returns a function that removes it again.
func (l *listeners[T]) add(fn func(T)) func() {
	l.nextID++
	id := l.nextID
	l.subs = append(l.subs, subscriber[T]{id: id, fn: fn})
	return func() { l.remove(id) }
}

func (l *listeners[T]) remove(id int) {
	for i, s := range l.subs {
		if s.id == id {
			// Full slice expression forces a copy so an in-flight emit keeps its view.
			l.subs = append(l.subs[:i:i], l.subs[i+1:]...)
			return
		}
	}
}

func (l *listeners[T]) emit(v T) {
	for _, s := range l.subs {
		s.fn(v)
	}
}

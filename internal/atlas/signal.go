package atlas

// Signal holds a value and notifies subscribers when it changes.
// It is not safe for concurrent use; everything runs on the event loop.
type Signal[T comparable] struct {
	value T
	subs  map[int]func(T)
	order []int
	next  int
}

func NewSignal[T comparable](v T) *Signal[T] {
	return &Signal[T]{value: v, subs: map[int]func(T){}}
}

func (s *Signal[T]) Get() T { return s.value }

// Set stores v and notifies subscribers in subscription order.
// Setting the current value again is a no-op.
func (s *Signal[T]) Set(v T) {
	if v == s.value {
		return
	}
	s.value = v
	for _, id := range append([]int(nil), s.order...) {
		if fn, ok := s.subs[id]; ok {
			fn(v)
		}
	}
}

// Subscribe registers fn and returns a function that removes it.
func (s *Signal[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	id := s.next
	s.next++
	s.subs[id] = fn
	s.order = append(s.order, id)
	return func() {
		if _, ok := s.subs[id]; !ok {
			return
		}
		delete(s.subs, id)
		for i, o := range s.order {
			if o == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
}

// Subscribers returns the number of live subscriptions.
func (s *Signal[T]) Subscribers() int { return len(s.subs) }

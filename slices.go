package fsa

// stack A LIFO that owns its elements: Pop hands the element over and clears the slot.
type stack[T any] struct {
	items []T
}

func (s *stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

func (s *stack[T]) Pop() (T, bool) {
	var empty T
	if len(s.items) == 0 {
		return empty, false
	}
	top := s.items[len(s.items)-1]
	s.items[len(s.items)-1] = empty
	s.items = s.items[:len(s.items)-1]
	return top, true
}

func (s *stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var empty T
		return empty, false
	}
	return s.items[len(s.items)-1], true
}

func (s *stack[T]) Len() int {
	return len(s.items)
}

package util

// Stack is a simple slice-backed LIFO stack.  Popped slots are reused by
// later pushes so a stack that grows and shrinks repeatedly (like the layout
// work list) does not keep reallocating.
type Stack[T any] struct {
	count int
	elts  []T
}

// Len returns the number of elements on the stack
func (s *Stack[T]) Len() int {
	return s.count
}

// Ref returns the i-th element counting from the bottom of the stack
func (s *Stack[T]) Ref(i int) T {
	if i < 0 || s.count <= i {
		panic("indexing past the end of stack")
	}

	return s.elts[i]
}

// Push pushes an element onto the top of the stack
func (s *Stack[T]) Push(elt T) {
	if s.count < len(s.elts) {
		s.elts[s.count] = elt
	} else {
		s.elts = append(s.elts, elt)
	}

	s.count++
}

// Pop removes and returns the top element of the stack
func (s *Stack[T]) Pop() T {
	if s.count == 0 {
		panic("popping from empty stack")
	}

	s.count--
	elt := s.elts[s.count]

	// clear the slot so the stack does not keep popped values alive
	var zero T
	s.elts[s.count] = zero

	return elt
}

// Top returns the top element of the stack without removing it
func (s *Stack[T]) Top() T {
	if s.count == 0 {
		panic("top from empty stack")
	}

	return s.elts[s.count-1]
}

// Empty indicates whether the stack has no elements
func (s *Stack[T]) Empty() bool {
	return s.count == 0
}

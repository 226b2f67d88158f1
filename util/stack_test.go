package util

import "testing"

func TestStackOrder(t *testing.T) {
	var s Stack[int]
	for i := 0; i < 5; i++ {
		s.Push(i)
	}

	if s.Len() != 5 {
		t.Fatalf("Len() = %d; expected 5", s.Len())
	}

	if s.Top() != 4 {
		t.Errorf("Top() = %d; expected 4", s.Top())
	}

	if s.Ref(0) != 0 || s.Ref(4) != 4 {
		t.Errorf("Ref indexes from the wrong end: Ref(0) = %d, Ref(4) = %d", s.Ref(0), s.Ref(4))
	}

	for want := 4; want >= 0; want-- {
		if got := s.Pop(); got != want {
			t.Errorf("Pop() = %d; expected %d", got, want)
		}
	}

	if !s.Empty() {
		t.Errorf("stack should be empty after popping every element")
	}
}

func TestStackReusesSlots(t *testing.T) {
	var s Stack[string]
	s.Push("a")
	s.Push("b")
	s.Pop()
	s.Push("c")

	if s.Len() != 2 || s.Top() != "c" || s.Ref(0) != "a" {
		t.Errorf("unexpected stack contents after reuse: len=%d top=%q bottom=%q", s.Len(), s.Top(), s.Ref(0))
	}
}

func TestStackPanics(t *testing.T) {
	cases := map[string]func(s *Stack[int]){
		"pop": func(s *Stack[int]) { s.Pop() },
		"top": func(s *Stack[int]) { s.Top() },
		"ref": func(s *Stack[int]) { s.Ref(0) },
	}

	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s on an empty stack should panic", name)
				}
			}()

			var s Stack[int]
			fn(&s)
		})
	}
}

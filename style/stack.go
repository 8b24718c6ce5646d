package style

// Stack is a stack of styles of elements currently being formatted.
type Stack struct {
	items []*Style
}

func (s *Stack) Push(st *Style) {
	s.items = append(s.items, st)
}

func (s *Stack) Pop() *Style {
	if len(s.items) == 0 {
		panic("pop from empty style stack")
	}
	st := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return st
}

// Top returns the innermost style or nil.
func (s *Stack) Top() *Style {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

// Block returns the innermost non-inline style.
func (s *Stack) Block() *Style {
	for i := len(s.items) - 1; i >= 0; i-- {
		if !s.items[i].Inline {
			return s.items[i]
		}
	}
	return nil
}

func (s *Stack) Len() int { return len(s.items) }

// At returns style at depth i, 0 is the outermost.
func (s *Stack) At(i int) *Style { return s.items[i] }

func (s *Stack) Clone() *Stack {
	return &Stack{items: append([]*Style(nil), s.items...)}
}

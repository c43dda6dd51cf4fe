package core

// ScreenStack holds modal screens; only the top one receives keys.
type ScreenStack struct {
	items []Screen
}

func (s *ScreenStack) Push(screen Screen) {
	if screen == nil {
		return
	}
	s.items = append(s.items, screen)
}

func (s *ScreenStack) Pop() Screen {
	if len(s.items) == 0 {
		return nil
	}
	last := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return last
}

// ReplaceTop swaps the top screen for next, typically the value a screen
// returned from its own Update.
func (s *ScreenStack) ReplaceTop(next Screen) {
	if len(s.items) == 0 || next == nil {
		return
	}
	s.items[len(s.items)-1] = next
}

func (s ScreenStack) Top() Screen {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

func (s ScreenStack) Len() int {
	return len(s.items)
}

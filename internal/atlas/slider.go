package atlas

// Slider keeps a numeric display in step with the scale. Display updates
// flow from the store only; input from the display comes back as proposals.
type Slider struct {
	limits Limits
	unsub  func()
}

// BindSlider shows the current scale and every later change on display.
func BindSlider(store *Store, display func(scale float64)) *Slider {
	display(store.Scale.Get())
	return &Slider{
		limits: store.Limits,
		unsub:  store.Scale.Subscribe(display),
	}
}

// Input turns a slider position in [0, 1] into a scale proposal.
func (s *Slider) Input(fraction float64) ScaleUpdate {
	v := s.limits.FromFraction(fraction)
	return func(float64) float64 { return v }
}

func (s *Slider) Close() {
	if s.unsub != nil {
		s.unsub()
		s.unsub = nil
	}
}

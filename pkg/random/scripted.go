package random

// Scripted is a deterministic Source that replays a fixed list of draws.
// Each value is reduced modulo n, so 0 always picks the first option.
// Once the script is exhausted it keeps returning 0.
type Scripted struct {
	draws []int
	pos   int
	Calls []int // n of every Intn call, in order
}

// NewScripted creates a Scripted source replaying draws.
func NewScripted(draws ...int) *Scripted {
	return &Scripted{draws: draws}
}

func (s *Scripted) Intn(n int) int {
	s.Calls = append(s.Calls, n)
	if s.pos >= len(s.draws) {
		return 0
	}
	v := s.draws[s.pos] % n
	s.pos++
	if v < 0 {
		v += n
	}
	return v
}

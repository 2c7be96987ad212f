package session

// Progress describes how far through the quiz the learner is.
type Progress struct {
	Position int // 1-based index of the current question
	Total    int
	Answered int
}

// Fraction returns Position/Total for progress bars.
func (p Progress) Fraction() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Position) / float64(p.Total)
}

// Progress reports the current position and the number answered.
func (s *State) Progress() Progress {
	p := Progress{Total: len(s.Questions)}
	if p.Total == 0 {
		return p
	}
	p.Position = s.Current + 1
	for _, a := range s.Answers {
		if a != Unanswered {
			p.Answered++
		}
	}
	return p
}

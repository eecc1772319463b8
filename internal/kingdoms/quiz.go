package kingdoms

import "nusantara/internal/engine"

// AnswerResult is published once per quiz session.
type AnswerResult struct {
	KingdomID   string
	Selected    int
	Correct     bool
	Explanation string
}

// Session is a single attempt at a kingdom's quiz. Only the first answer
// counts.
type Session struct {
	KingdomID     string
	Quiz          Quiz
	AnswerChecked engine.Event[AnswerResult]

	answered bool
	result   AnswerResult
}

func NewSession(k Kingdom) *Session {
	return &Session{KingdomID: k.ID, Quiz: k.Quiz}
}

// Answer checks option i. It returns false if the session was already
// answered or i is not a valid option.
func (s *Session) Answer(i int) (AnswerResult, bool) {
	if s.answered || i < 0 || i >= len(s.Quiz.Options) {
		return s.result, false
	}
	s.answered = true
	s.result = AnswerResult{
		KingdomID:   s.KingdomID,
		Selected:    i,
		Correct:     i == s.Quiz.Correct,
		Explanation: s.Quiz.Explanation,
	}
	s.AnswerChecked.Invoke(s.result)
	return s.result, true
}

// Answered reports whether the session is closed.
func (s *Session) Answered() bool {
	return s.answered
}

// Result returns the recorded answer, valid once Answered is true.
func (s *Session) Result() AnswerResult {
	return s.result
}

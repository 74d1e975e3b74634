package survey

import "fmt"

// Walker steps through the questionnaire one question at a time, holding
// the in-progress answers. It is created fresh when the survey opens and
// discarded once the completed form is handed off.
type Walker struct {
	index int
	form  Form
}

// NewWalker returns a walker positioned at the first question with the
// default answer vector.
func NewWalker() *Walker {
	return &Walker{form: DefaultForm()}
}

// Index returns the current question index.
func (w *Walker) Index() int {
	return w.index
}

// Question returns the current question.
func (w *Walker) Question() Question {
	return questions[w.index]
}

// Form returns a snapshot of the current answers.
func (w *Walker) Form() Form {
	return w.form
}

// Value returns the current answer for the active question.
func (w *Walker) Value() float64 {
	return w.form.Value(w.Question().ID)
}

// SetAnswer records an answer for a field. The input widget pre-clamps to
// the question's domain, but the walker re-validates so a malformed caller
// can never produce an out-of-range form.
func (w *Walker) SetAnswer(id FieldID, v float64) error {
	q, ok := QuestionFor(id)
	if !ok {
		return fmt.Errorf("unknown survey field: %q", id)
	}
	if v < q.Min || v > q.Max {
		return fmt.Errorf("value %v out of range [%v, %v] for %q", v, q.Min, q.Max, id)
	}
	return w.form.set(id, v)
}

// Adjust moves the active question's answer by n steps, clamped to the
// question's domain.
func (w *Walker) Adjust(n int) {
	q := w.Question()
	v := w.form.Value(q.ID) + float64(n)*q.Step
	if v < q.Min {
		v = q.Min
	}
	if v > q.Max {
		v = q.Max
	}
	_ = w.form.set(q.ID, v)
}

// Next advances to the following question. At the last question it leaves
// the walker unchanged and returns the completed form with done=true.
func (w *Walker) Next() (form Form, done bool) {
	if w.index < len(questions)-1 {
		w.index++
		return Form{}, false
	}
	return w.form, true
}

// Back moves to the previous question. At the first question it returns
// exit=true: the caller should leave the survey flow entirely.
func (w *Walker) Back() (exit bool) {
	if w.index > 0 {
		w.index--
		return false
	}
	return true
}

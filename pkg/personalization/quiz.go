package personalization

import "neurolearn-be/pkg/preference"

// Quiz is the onboarding state machine: a step over a fixed question list,
// the responses recorded so far and a completion flag.
type Quiz struct {
	questions  []Question
	step       int
	responses  Responses
	complete   bool
	resolution *Resolution
}

func NewQuiz() *Quiz {
	return NewQuizWithQuestions(OnboardingQuestions())
}

// NewQuizWithQuestions panics on an empty list; the step invariant needs at
// least one question.
func NewQuizWithQuestions(questions []Question) *Quiz {
	if len(questions) == 0 {
		panic("personalization: quiz needs at least one question")
	}
	return &Quiz{
		questions: questions,
		responses: Responses{},
	}
}

func (q *Quiz) Questions() []Question { return q.questions }
func (q *Quiz) Step() int             { return q.step }
func (q *Quiz) Complete() bool        { return q.complete }
func (q *Quiz) QuestionCount() int    { return len(q.questions) }

func (q *Quiz) Current() Question {
	return q.questions[q.step]
}

// Responses returns a copy of the recorded answers.
func (q *Quiz) Responses() Responses {
	out := make(Responses, len(q.responses))
	for k, v := range q.responses {
		out[k] = v
	}
	return out
}

// Resolution is the last result computed on completion, nil before that.
func (q *Quiz) Resolution() *Resolution {
	return q.resolution
}

// SelectOption records or overwrites the answer for key.
func (q *Quiz) SelectOption(key QuestionKey, value string) {
	q.responses[key] = value
}

func (q *Quiz) answered(key QuestionKey) bool {
	return q.responses[key] != ""
}

// Advance moves to the next question. On the final question it resolves the
// responses against current and marks the quiz complete. It reports false and
// leaves the state untouched while the current question is unanswered, or on
// the final question while any earlier answer is missing. A complete quiz
// only resolves again after Reset.
func (q *Quiz) Advance(current preference.Profile) (*Resolution, bool) {
	if !q.answered(q.Current().Key) {
		return nil, false
	}
	if q.step < len(q.questions)-1 {
		q.step++
		return nil, true
	}
	if q.complete || q.ProgressFraction() < 1 {
		return nil, false
	}

	res := Resolve(q.responses, current)
	q.resolution = &res
	q.complete = true
	return &res, true
}

// Back steps to the previous question, floored at the first.
func (q *Quiz) Back() {
	if q.step > 0 {
		q.step--
	}
}

// Reset clears the quiz so personalization can be recomputed.
func (q *Quiz) Reset() {
	q.step = 0
	q.responses = Responses{}
	q.complete = false
	q.resolution = nil
}

// ProgressFraction is answered questions over question count, in [0,1].
func (q *Quiz) ProgressFraction() float64 {
	answered := 0
	for _, question := range q.questions {
		if q.answered(question.Key) {
			answered++
		}
	}
	return float64(answered) / float64(len(q.questions))
}

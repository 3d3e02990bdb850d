package models

// QuizQuestion is a single multiple-choice question.
type QuizQuestion struct {
	Question string   `yaml:"question"`
	Options  []string `yaml:"options"`
	Correct  int      `yaml:"correct"`
}

// IsCorrect reports whether the option at index answers the question.
func (q QuizQuestion) IsCorrect(index int) bool {
	return index == q.Correct
}

// Gift is one of the surprises that can be revealed from the gift box.
type Gift struct {
	Emoji       string `yaml:"emoji"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Session is the accumulated state carried between stages.
type Session struct {
	CurrentStage Stage
	QuizScore    int
}

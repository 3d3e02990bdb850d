package models

import "fmt"

// Stage identifies one full-screen view in the fixed greeting sequence.
type Stage int

const (
	StageCountdown Stage = iota
	StageIntro
	StageQuiz
	StageGiftBox
	StageLoveMessage
	StageFinal
)

var stageNames = [...]string{
	StageCountdown:   "countdown",
	StageIntro:       "intro",
	StageQuiz:        "quiz",
	StageGiftBox:     "giftbox",
	StageLoveMessage: "lovemessage",
	StageFinal:       "final",
}

// Stages returns every stage in presentation order.
func Stages() []Stage {
	return []Stage{
		StageCountdown,
		StageIntro,
		StageQuiz,
		StageGiftBox,
		StageLoveMessage,
		StageFinal,
	}
}

func (s Stage) String() string {
	if s.Valid() {
		return stageNames[s]
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// Valid reports whether s is one of the six known stages.
func (s Stage) Valid() bool {
	return s >= StageCountdown && s <= StageFinal
}

// Successor returns the stage that follows s. The final stage has none.
func (s Stage) Successor() (Stage, bool) {
	switch s {
	case StageCountdown:
		return StageIntro, true
	case StageIntro:
		return StageQuiz, true
	case StageQuiz:
		return StageGiftBox, true
	case StageGiftBox:
		return StageLoveMessage, true
	case StageLoveMessage:
		return StageFinal, true
	default:
		return s, false
	}
}

// ParseStage converts a stage name back into a Stage.
func ParseStage(name string) (Stage, error) {
	for i, n := range stageNames {
		if n == name {
			return Stage(i), nil
		}
	}
	return StageCountdown, fmt.Errorf("unknown stage: %q", name)
}

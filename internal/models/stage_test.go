package models

import "testing"

func TestStagesOrder(t *testing.T) {
	want := []string{"countdown", "intro", "quiz", "giftbox", "lovemessage", "final"}
	got := Stages()
	if len(got) != len(want) {
		t.Fatalf("Stages() returned %d stages, want %d", len(got), len(want))
	}
	for i, s := range got {
		if s.String() != want[i] {
			t.Errorf("Stages()[%d] = %q, want %q", i, s.String(), want[i])
		}
	}
}

func TestSuccessor(t *testing.T) {
	tests := []struct {
		stage   Stage
		next    Stage
		hasNext bool
	}{
		{StageCountdown, StageIntro, true},
		{StageIntro, StageQuiz, true},
		{StageQuiz, StageGiftBox, true},
		{StageGiftBox, StageLoveMessage, true},
		{StageLoveMessage, StageFinal, true},
		{StageFinal, StageFinal, false},
	}

	for _, tt := range tests {
		t.Run(tt.stage.String(), func(t *testing.T) {
			next, ok := tt.stage.Successor()
			if ok != tt.hasNext {
				t.Fatalf("Successor() ok = %v, want %v", ok, tt.hasNext)
			}
			if ok && next != tt.next {
				t.Errorf("Successor() = %v, want %v", next, tt.next)
			}
		})
	}
}

func TestParseStage(t *testing.T) {
	for _, s := range Stages() {
		parsed, err := ParseStage(s.String())
		if err != nil {
			t.Fatalf("ParseStage(%q) returned error: %v", s.String(), err)
		}
		if parsed != s {
			t.Errorf("ParseStage(%q) = %v, want %v", s.String(), parsed, s)
		}
	}

	if _, err := ParseStage("encore"); err == nil {
		t.Error("expected error for unknown stage name")
	}
}

func TestValid(t *testing.T) {
	if Stage(-1).Valid() || Stage(6).Valid() {
		t.Error("out-of-range stages should not be valid")
	}
	if got := Stage(42).String(); got != "stage(42)" {
		t.Errorf("String() for unknown stage = %q", got)
	}
}

func TestQuizQuestionIsCorrect(t *testing.T) {
	q := QuizQuestion{Question: "?", Options: []string{"a", "b"}, Correct: 1}
	if !q.IsCorrect(1) {
		t.Error("expected option 1 to be correct")
	}
	if q.IsCorrect(0) {
		t.Error("expected option 0 to be incorrect")
	}
}

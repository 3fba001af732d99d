package lecture

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lectio/internal/content"
	"github.com/abhisek/lectio/internal/player"
	"github.com/abhisek/lectio/internal/screen"
)

func testLecture() *content.Lecture {
	return &content.Lecture{
		ID:              "ml-101",
		Title:           "Intro to Gradient Descent",
		DurationSeconds: 600,
		Transcript: []content.TranscriptLine{
			{AtSeconds: 0, Text: "welcome"},
			{AtSeconds: 30, Text: "the loss surface"},
		},
		PausePoints: []*content.PausePoint{
			{
				ID:            "pp-1",
				OffsetSeconds: 60,
				OrderIndex:    0,
				Item: &content.PracticeItem{
					ID:         "item-1",
					Body:       "Which direction does gradient descent step?",
					Type:       content.TypeMultipleChoice,
					BaseReward: 100,
					MultipleChoice: &content.MultipleChoice{
						Options:      []string{"Along the gradient", "Against the gradient", "Orthogonal"},
						CorrectIndex: 1,
					},
				},
			},
		},
	}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testScreen() *LectureScreen {
	return New(testLecture(), Deps{LearnerID: "learner-1"})
}

// tickUntilPause feeds playback ticks until the question triggers.
func tickUntilPause(t *testing.T, s *LectureScreen) {
	t.Helper()
	for i := 0; i < 300; i++ {
		s.Update(playbackTickMsg{})
		if s.state.Phase == player.PhasePausedForQuestion {
			return
		}
	}
	t.Fatal("pause point never triggered")
}

func TestLectureScreen_Title(t *testing.T) {
	s := testScreen()
	if s.Title() != "Intro to Gradient Descent" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestLectureScreen_ViewPlaying(t *testing.T) {
	s := testScreen()
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty view while playing")
	}
}

func TestLectureScreen_PauseTriggersQuestion(t *testing.T) {
	s := testScreen()
	tickUntilPause(t, s)

	if !s.mcActive {
		t.Error("expected multiple choice widget for MCQ pause point")
	}
	if s.stage != stageAnswer {
		t.Error("expected answer stage on trigger")
	}
	if s.View(80, 24) == "" {
		t.Error("expected non-empty question view")
	}
}

func TestLectureScreen_AnswerThenWagerFlow(t *testing.T) {
	s := testScreen()
	tickUntilPause(t, s)

	// Pick the correct option.
	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('j'))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*LectureScreen)
	if ss.stage != stageConfidence {
		t.Fatal("expected confidence stage after answer commit")
	}

	// Commit the default wager; the returned command only grades, the
	// transition lands when its message comes back through Update.
	scr, cmd := ss.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected grade command after wager commit")
	}
	if ss.state.Phase != player.PhaseGrading {
		t.Fatalf("phase = %s, want grading while the command runs", ss.state.Phase)
	}
	msg := cmd()
	if ss.state.Phase != player.PhaseGrading {
		t.Fatal("grade command must not mutate the player state")
	}
	scr, _ = scr.Update(msg)
	ss = scr.(*LectureScreen)

	if ss.state.Phase != player.PhaseResultShown {
		t.Fatalf("phase = %s, want result-shown", ss.state.Phase)
	}
	if !ss.state.LastResult.Correct {
		t.Error("expected correct result")
	}
	if ss.Points() != 100 {
		t.Errorf("Points = %d, want 100", ss.Points())
	}
	if ss.View(80, 24) == "" {
		t.Error("expected non-empty result view")
	}
}

func TestLectureScreen_QuitConfirm(t *testing.T) {
	s := testScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ss := scr.(*LectureScreen)
	if !ss.quitConfirm {
		t.Error("expected quit confirmation dialog")
	}

	scr, _ = ss.Update(keyPress('n'))
	ss = scr.(*LectureScreen)
	if ss.quitConfirm {
		t.Error("expected quit confirmation to be dismissed")
	}

	scr, _ = ss.Update(specialKey(tea.KeyEscape))
	ss = scr.(*LectureScreen)
	_, cmd := ss.Update(keyPress('y'))
	if cmd == nil {
		t.Error("expected pop command after quit confirmation")
	}
}

func TestLectureScreen_KeyHintsPerPhase(t *testing.T) {
	s := testScreen()
	if len(s.KeyHints()) == 0 {
		t.Error("expected key hints while playing")
	}

	tickUntilPause(t, s)
	hints := s.KeyHints()
	if len(hints) == 0 || hints[0].Key != "Enter" {
		t.Errorf("unexpected question hints: %+v", hints)
	}
}

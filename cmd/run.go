package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/lectio/internal/app"
	"github.com/abhisek/lectio/internal/content"
	"github.com/abhisek/lectio/internal/llm"
	"github.com/abhisek/lectio/internal/store"
)

// startMode selects which screen the TUI opens on.
type startMode int

const (
	startModeHome startMode = iota
	startModeLecture
	startModeReview
)

// runApp loads lectures, opens the store, builds dependencies, and
// launches the TUI.
func runApp(cmd *cobra.Command, lecturePaths []string, mode startMode) error {
	ctx := cmd.Context()

	lectures, err := loadLectures(lecturePaths)
	if err != nil {
		return err
	}
	if mode == startModeLecture && len(lectures) != 1 {
		return fmt.Errorf("play expects exactly one lecture file")
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	opts := app.Options{
		LearnerID: resolveLearnerID(cmd),
		Store:     st,
		Lectures:  lectures,
	}
	switch mode {
	case startModeLecture:
		opts.StartLecture = lectures[0]
	case startModeReview:
		opts.StartReview = true
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Short answers will be accepted ungraded and remediation is off.")
	} else {
		opts.LLMProvider = provider
	}

	return app.Run(opts)
}

func loadLectures(paths []string) ([]*content.Lecture, error) {
	var lectures []*content.Lecture
	for _, path := range paths {
		lec, err := content.LoadLecture(path)
		if err != nil {
			return nil, fmt.Errorf("load lecture %s: %w", path, err)
		}
		lectures = append(lectures, lec)
	}
	return lectures, nil
}

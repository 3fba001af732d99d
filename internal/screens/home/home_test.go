package home

import (
	"testing"

	"github.com/abhisek/lectio/internal/content"
)

func TestHomeScreen_MenuWithoutLectures(t *testing.T) {
	h := New(Deps{LearnerID: "learner-1"})

	// Review, Stats, Quit.
	if len(h.menu.Items) != 3 {
		t.Errorf("menu items = %d, want 3", len(h.menu.Items))
	}
	if h.View(80, 24) == "" {
		t.Error("expected non-empty view")
	}
}

func TestHomeScreen_MenuListsLectures(t *testing.T) {
	lectures := []*content.Lecture{
		{ID: "a", Title: "First Lecture", DurationSeconds: 100},
		{ID: "b", Title: "Second Lecture", DurationSeconds: 100},
	}
	h := New(Deps{LearnerID: "learner-1", Lectures: lectures})

	if len(h.menu.Items) != 5 {
		t.Fatalf("menu items = %d, want 5", len(h.menu.Items))
	}
	if h.menu.Items[0].Label != "First Lecture" {
		t.Errorf("first item = %q", h.menu.Items[0].Label)
	}
	if h.menu.Items[2].Label != "Review due items" {
		t.Errorf("review item = %q", h.menu.Items[2].Label)
	}
}

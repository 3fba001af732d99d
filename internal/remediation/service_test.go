package remediation

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/lectio/internal/llm"
	"github.com/abhisek/lectio/internal/store"
)

var (
	detectionJSON = json.RawMessage(`{
		"misconception": "Confuses learning rate with momentum",
		"missing_concept": "Role of the learning rate in gradient descent",
		"root_cause": "Both terms were introduced in the same slide",
		"recommended_timestamp": 120.0,
		"end_timestamp": 180.0
	}`)
	generationJSON = json.RawMessage(`{
		"explanation": "The learning rate scales each gradient step. Momentum is a separate term that smooths updates across steps.",
		"follow_up": {"question": "Which hyperparameter scales the size of each gradient step?", "answer": "learning rate"}
	}`)
	generationNoFollowUpJSON = json.RawMessage(`{
		"explanation": "The learning rate scales each gradient step.",
		"follow_up": null
	}`)
)

func testRequest() Request {
	return Request{
		LearnerID:       "learner-1",
		LectureID:       "ml-101",
		PausePointID:    "pp-1",
		QuestionText:    "What does the learning rate control?",
		CorrectAnswer:   "The step size of each update",
		StudentAnswer:   "How fast momentum builds up",
		QuestionType:    "short_answer",
		Transcript:      "115.0: the learning rate decides how big each step is\n130.0: momentum is different",
		DurationSeconds: 600,
	}
}

type fakeRemediationRepo struct {
	saved    []store.RemediationData
	resolved []int
	nextID   int
}

func (f *fakeRemediationRepo) Save(_ context.Context, data store.RemediationData) (int, error) {
	f.nextID++
	data.ID = f.nextID
	f.saved = append(f.saved, data)
	return f.nextID, nil
}

func (f *fakeRemediationRepo) Resolve(_ context.Context, id int, answer string, answered, correct bool) error {
	f.resolved = append(f.resolved, id)
	for i := range f.saved {
		if f.saved[i].ID == id {
			f.saved[i].FollowUpAnswer = answer
			f.saved[i].FollowUpAnswered = answered
			f.saved[i].FollowUpCorrect = correct
			f.saved[i].Resolved = true
		}
	}
	return nil
}

func (f *fakeRemediationRepo) ListByLecture(_ context.Context, learnerID, lectureID string) ([]*store.RemediationData, error) {
	var out []*store.RemediationData
	for i := range f.saved {
		if f.saved[i].LearnerID == learnerID && f.saved[i].LectureID == lectureID {
			out = append(out, &f.saved[i])
		}
	}
	return out, nil
}

func TestService_FullCycle(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: detectionJSON},
		llm.MockResponse{Content: generationJSON},
	)
	repo := &fakeRemediationRepo{}
	svc := NewService(mock, repo)

	plan, err := svc.Remediate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Remediate failed: %v", err)
	}
	if plan.Detection.JumpToSeconds != 120.0 || plan.Detection.EndSeconds != 180.0 {
		t.Errorf("segment = [%.1f, %.1f], want [120.0, 180.0]",
			plan.Detection.JumpToSeconds, plan.Detection.EndSeconds)
	}
	if plan.FollowUp == nil || plan.FollowUp.Answer != "learning rate" {
		t.Errorf("follow-up = %+v, want answer 'learning rate'", plan.FollowUp)
	}

	// Record persisted before the plan is exposed.
	if len(repo.saved) != 1 {
		t.Fatalf("expected 1 saved record, got %d", len(repo.saved))
	}
	if plan.ID != 1 {
		t.Errorf("plan ID = %d, want 1", plan.ID)
	}
	if repo.saved[0].Misconception == "" || repo.saved[0].Explanation == "" {
		t.Error("saved record missing detection or generation output")
	}
}

func TestService_NoFollowUp(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: detectionJSON},
		llm.MockResponse{Content: generationNoFollowUpJSON},
	)
	svc := NewService(mock, &fakeRemediationRepo{})

	plan, err := svc.Remediate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Remediate failed: %v", err)
	}
	if plan.FollowUp != nil {
		t.Errorf("expected nil follow-up, got %+v", plan.FollowUp)
	}
}

func TestService_DetectionFailureAborts(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	repo := &fakeRemediationRepo{}
	svc := NewService(mock, repo)

	_, err := svc.Remediate(context.Background(), testRequest())
	if err == nil {
		t.Fatal("expected error from failed detection")
	}
	if len(repo.saved) != 0 {
		t.Error("nothing should be persisted when detection fails")
	}
	// Generation must not have been attempted.
	if len(mock.Calls) != 1 {
		t.Errorf("expected 1 provider call, got %d", len(mock.Calls))
	}
}

func TestService_InvalidSegmentRejected(t *testing.T) {
	bad := json.RawMessage(`{
		"misconception": "x", "missing_concept": "y", "root_cause": "z",
		"recommended_timestamp": 200.0, "end_timestamp": 150.0
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: bad})
	svc := NewService(mock, &fakeRemediationRepo{})

	_, err := svc.Remediate(context.Background(), testRequest())
	if err == nil {
		t.Fatal("expected error for segment ending before it starts")
	}
}

func TestService_SegmentBeyondDurationRejected(t *testing.T) {
	bad := json.RawMessage(`{
		"misconception": "x", "missing_concept": "y", "root_cause": "z",
		"recommended_timestamp": 550.0, "end_timestamp": 700.0
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: bad})
	svc := NewService(mock, &fakeRemediationRepo{})

	_, err := svc.Remediate(context.Background(), testRequest())
	if err == nil {
		t.Fatal("expected error for segment beyond lecture duration")
	}
}

func TestService_DisabledWithoutProvider(t *testing.T) {
	svc := NewService(nil, &fakeRemediationRepo{})
	if svc.Enabled() {
		t.Error("service should be disabled without a provider")
	}
	_, err := svc.Remediate(context.Background(), testRequest())
	if err == nil {
		t.Fatal("expected error from disabled service")
	}
}

func TestService_Resolve(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: detectionJSON},
		llm.MockResponse{Content: generationJSON},
	)
	repo := &fakeRemediationRepo{}
	svc := NewService(mock, repo)

	plan, err := svc.Remediate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Remediate failed: %v", err)
	}

	svc.Resolve(context.Background(), plan.ID, "learning rate", true, true)
	if len(repo.resolved) != 1 || repo.resolved[0] != plan.ID {
		t.Fatalf("resolved = %v, want [%d]", repo.resolved, plan.ID)
	}
	if !repo.saved[0].Resolved || !repo.saved[0].FollowUpCorrect {
		t.Error("record not marked resolved/correct")
	}
}

func TestService_TimeoutBoundsCycle(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), &fakeRemediationRepo{})
	svc.SetTimeout(10 * time.Millisecond)

	start := time.Now()
	_, err := svc.Remediate(context.Background(), testRequest())
	if err == nil {
		t.Fatal("expected error")
	}
	if time.Since(start) > time.Second {
		t.Error("remediation exceeded its timeout bound")
	}
}

func TestDetectPromptContainsTranscript(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: detectionJSON})
	d := NewDetector(mock, DefaultDetectorConfig())

	_, err := d.Detect(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "learning rate decides") {
		t.Errorf("prompt missing transcript: %q", msg)
	}
	if !strings.Contains(msg, "How fast momentum builds up") {
		t.Errorf("prompt missing learner answer: %q", msg)
	}
}

package content

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// raw decode types mirroring the lecture file format.
type rawLecture struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	DurationSeconds float64      `json:"duration_seconds"`
	Transcript      []rawLine    `json:"transcript"`
	PausePoints     []rawPausePt `json:"pause_points"`
}

type rawLine struct {
	AtSeconds float64 `json:"at_seconds"`
	Text      string  `json:"text"`
}

type rawPausePt struct {
	ID            string      `json:"id"`
	OffsetSeconds float64     `json:"offset_seconds"`
	CognitiveLoad float64     `json:"cognitive_load"`
	OrderIndex    int         `json:"order_index"`
	Question      rawQuestion `json:"question"`
}

type rawQuestion struct {
	ID             string   `json:"id"`
	Topics         []string `json:"topics"`
	Difficulty     int      `json:"difficulty"`
	Body           string   `json:"body"`
	Type           string   `json:"type"`
	Options        []string `json:"options"`
	CorrectIndex   *int     `json:"correct_index"`
	ExpectedAnswer string   `json:"expected_answer"`
	Explanation    string   `json:"explanation"`
	BaseReward     int      `json:"base_reward"`
}

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func lectureSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		defBytes, err := json.Marshal(lectureSchemaDef)
		if err != nil {
			schemaErr = fmt.Errorf("marshal lecture schema: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			schemaErr = fmt.Errorf("parse lecture schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://lecture.json", defParsed); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile("schema://lecture.json")
	})
	return compiledSchema, schemaErr
}

// LoadLecture reads, schema-validates, and decodes a lecture file,
// resolving each question into its discriminated answer variant.
func LoadLecture(path string) (*Lecture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lecture file: %w", err)
	}
	return ParseLecture(data)
}

// ParseLecture validates and decodes lecture JSON.
func ParseLecture(data []byte) (*Lecture, error) {
	schema, err := lectureSchema()
	if err != nil {
		return nil, err
	}

	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("invalid lecture JSON: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("lecture schema validation: %w", err)
	}

	var raw rawLecture
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode lecture: %w", err)
	}

	lecture := &Lecture{
		ID:              raw.ID,
		Title:           raw.Title,
		DurationSeconds: raw.DurationSeconds,
	}
	for _, line := range raw.Transcript {
		lecture.Transcript = append(lecture.Transcript, TranscriptLine(line))
	}
	for _, rp := range raw.PausePoints {
		item, err := resolveQuestion(rp.Question)
		if err != nil {
			return nil, fmt.Errorf("pause point %q: %w", rp.ID, err)
		}
		lecture.PausePoints = append(lecture.PausePoints, &PausePoint{
			ID:            rp.ID,
			OffsetSeconds: rp.OffsetSeconds,
			CognitiveLoad: rp.CognitiveLoad,
			OrderIndex:    rp.OrderIndex,
			Item:          item,
		})
	}

	if err := lecture.validate(); err != nil {
		return nil, err
	}
	return lecture, nil
}

// resolveQuestion turns the loosely-shaped question payload into a
// PracticeItem with exactly one answer variant set.
func resolveQuestion(rq rawQuestion) (*PracticeItem, error) {
	item := &PracticeItem{
		ID:          rq.ID,
		Topics:      rq.Topics,
		Difficulty:  rq.Difficulty,
		Body:        rq.Body,
		Type:        ItemType(rq.Type),
		Explanation: rq.Explanation,
		BaseReward:  rq.BaseReward,
	}

	switch item.Type {
	case TypeMultipleChoice:
		if rq.CorrectIndex == nil {
			return nil, fmt.Errorf("item %q: multiple_choice requires correct_index", rq.ID)
		}
		item.MultipleChoice = &MultipleChoice{
			Options:      rq.Options,
			CorrectIndex: *rq.CorrectIndex,
		}
	case TypeShortAnswer:
		item.ShortAnswer = &ShortAnswer{ExpectedAnswer: rq.ExpectedAnswer}
	default:
		return nil, fmt.Errorf("item %q: unknown type %q", rq.ID, rq.Type)
	}

	return item, nil
}

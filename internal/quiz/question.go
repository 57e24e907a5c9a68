package quiz

import (
	"encoding/json"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/lexcard/lexcard-client/internal/catalog"
)

// NoOptionsPlaceholder is shown when a question arrives without a
// usable options list.
const NoOptionsPlaceholder = "No options available"

// Question is the display shape the quiz screens consume: options
// decoded, correct answer resolved to its text, review flag attached.
type Question struct {
	ID            int      `json:"id"`
	Question      string   `json:"question"`
	Answers       []string `json:"answers"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
	Reviewed      bool     `json:"reviewed"`
}

// Normalize converts a raw backend question into display form. It
// never fails: a record with unparsable or missing options degrades to
// the placeholder list and an empty correct answer.
func Normalize(raw catalog.RawQuestion) Question {
	options, err := decodeStrings(raw.Options)
	if err != nil {
		logrus.WithField("question_id", raw.ID).WithError(err).Error("parsing question options")
		options = nil
	}
	if len(options) == 0 {
		logrus.WithField("question_id", raw.ID).Warn("question has no valid options")
		options = []string{NoOptionsPlaceholder}
	}

	correct := ""
	if raw.Correct >= 0 && raw.Correct < len(options) {
		correct = options[raw.Correct]
	}

	return Question{
		ID:            raw.ID,
		Question:      raw.Question,
		Answers:       options,
		CorrectAnswer: correct,
		Explanation:   raw.Justification,
		Reviewed:      false,
	}
}

// decodeStrings resolves the backend's two encodings for list fields:
// a JSON array of strings, or a JSON string holding a serialized
// array. Anything else is an error.
func decodeStrings(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if err := json.Unmarshal([]byte(s), &list); err != nil {
			return nil, err
		}
		return list, nil
	}
	return nil, errors.New("options are neither a list nor a serialized list")
}

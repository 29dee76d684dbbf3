// Package prompttest provides a scripted prompt.Prompter for tests.
package prompttest

import (
	"fmt"

	"github.com/tsconfig-presets/tsconfig-presets/internal/prompt"
)

// Answer is one scripted response. Confirm consumes Yes; Select consumes Index.
// Err, when set, is returned instead.
type Answer struct {
	Yes   bool
	Index int
	Err   error
}

// Scripted replays answers in order and records every question asked.
type Scripted struct {
	Answers   []Answer
	Questions []string
}

// Confirm returns the next scripted answer.
func (s *Scripted) Confirm(message string, _ bool) (bool, error) {
	s.Questions = append(s.Questions, message)
	a, err := s.next(message)
	if err != nil {
		return false, err
	}
	return a.Yes, a.Err
}

// Select returns the next scripted index.
func (s *Scripted) Select(message string, options []prompt.Option) (int, error) {
	s.Questions = append(s.Questions, message)
	a, err := s.next(message)
	if err != nil {
		return 0, err
	}
	if a.Err != nil {
		return 0, a.Err
	}
	if a.Index < 0 || a.Index >= len(options) {
		return 0, fmt.Errorf("scripted index %d out of range for %q", a.Index, message)
	}
	return a.Index, nil
}

func (s *Scripted) next(message string) (Answer, error) {
	if len(s.Answers) == 0 {
		return Answer{}, fmt.Errorf("unexpected prompt %q", message)
	}
	a := s.Answers[0]
	s.Answers = s.Answers[1:]
	return a, nil
}

// Asked reports how many questions were asked.
func (s *Scripted) Asked() int {
	return len(s.Questions)
}

package app

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"tableflip.dev/flashq/pkg/dataset"
	"tableflip.dev/flashq/pkg/gesture"
	"tableflip.dev/flashq/pkg/navigator"
	"tableflip.dev/flashq/pkg/selection"
)

// Phase is the screen a session is on.
type Phase int

const (
	PhaseTopics Phase = iota
	PhaseSettings
	PhaseQuiz
)

func (p Phase) String() string {
	switch p {
	case PhaseSettings:
		return "settings"
	case PhaseQuiz:
		return "quiz"
	}
	return "topics"
}

// ErrPhase is returned when an operation does not fit the current phase.
var ErrPhase = errors.New("app: not allowed in this phase")

// Session is one user's walk from picking topics, through settings, to the
// quiz. It is single-owner and not safe for concurrent use.
type Session struct {
	ID string

	phase    Phase
	selected []string
	datasets []*dataset.Dataset
	registry *selection.Registry
	nav      *navigator.Navigator
	mode     navigator.Mode
	navOpts  []navigator.Option
}

// NewSession starts in the topic phase. opts are passed to the navigator.
func NewSession(opts ...navigator.Option) *Session {
	return &Session{
		ID:      uuid.New().String(),
		navOpts: opts,
	}
}

func (s *Session) Phase() Phase { return s.phase }

// Selected returns the chosen dataset keys in selection order.
func (s *Session) Selected() []string {
	return append([]string(nil), s.selected...)
}

func (s *Session) IsSelected(key string) bool {
	for _, k := range s.selected {
		if k == key {
			return true
		}
	}
	return false
}

// ToggleTopic adds or removes key from the selection and reports whether it
// is selected afterwards.
func (s *Session) ToggleTopic(key string) (bool, error) {
	if s.phase != PhaseTopics {
		return false, ErrPhase
	}
	for i, k := range s.selected {
		if k == key {
			s.selected = append(s.selected[:i], s.selected[i+1:]...)
			return false, nil
		}
	}
	s.selected = append(s.selected, key)
	return true, nil
}

// Adopt takes the loaded datasets and moves to settings. Column selections
// start from defaults.
func (s *Session) Adopt(ds []*dataset.Dataset) error {
	if s.phase != PhaseTopics {
		return ErrPhase
	}
	if len(ds) == 0 {
		return &navigator.ConfigurationError{Reason: "no datasets selected"}
	}
	s.datasets = ds
	s.registry = selection.ForDatasets(ds...)
	s.nav = navigator.New(ds, s.registry, s.navOpts...)
	s.phase = PhaseSettings
	return nil
}

func (s *Session) Datasets() []*dataset.Dataset { return s.datasets }

// Registry is nil until datasets are adopted.
func (s *Session) Registry() *selection.Registry { return s.registry }

func (s *Session) Mode() navigator.Mode { return s.mode }

// SetMode chooses the quiz mode.
func (s *Session) SetMode(m navigator.Mode) error {
	if s.phase != PhaseSettings {
		return ErrPhase
	}
	s.mode = m
	return nil
}

// ToggleColumn flips the eligibility of one column.
func (s *Session) ToggleColumn(key, column string) error {
	if s.phase != PhaseSettings {
		return ErrPhase
	}
	return s.registry.Toggle(key, column)
}

// ApplyColumns applies a "key=A,B;key2=C" column spec.
func (s *Session) ApplyColumns(spec string) error {
	if s.phase != PhaseSettings {
		return ErrPhase
	}
	return s.registry.Apply(spec)
}

// Start freezes the column selection and begins the quiz. On a
// configuration error the session stays in settings and nothing is frozen.
// Starting again after Back restarts from the first cell.
func (s *Session) Start() error {
	if s.phase != PhaseSettings {
		return ErrPhase
	}
	s.registry.Freeze()
	if err := s.nav.Start(s.mode); err != nil {
		s.registry.Thaw()
		return err
	}
	s.phase = PhaseQuiz
	return nil
}

// Back returns to the previous phase. Leaving settings drops the loaded
// datasets but keeps the topic selection.
func (s *Session) Back() error {
	switch s.phase {
	case PhaseQuiz:
		s.registry.Thaw()
		s.phase = PhaseSettings
	case PhaseSettings:
		s.datasets = nil
		s.registry = nil
		s.nav = nil
		s.phase = PhaseTopics
	default:
		return ErrPhase
	}
	return nil
}

// Navigator is nil until datasets are adopted.
func (s *Session) Navigator() *navigator.Navigator { return s.nav }

// Do performs a navigation action during the quiz.
func (s *Session) Do(a gesture.Action) error {
	if s.phase != PhaseQuiz {
		return ErrPhase
	}
	if err := gesture.Apply(s.nav, a); err != nil {
		return fmt.Errorf("app: %s: %w", a, err)
	}
	return nil
}

// CurrentCell returns the cell on screen.
func (s *Session) CurrentCell() (navigator.Cell, error) {
	if s.phase != PhaseQuiz {
		return navigator.Cell{}, ErrPhase
	}
	return s.nav.CurrentCell()
}

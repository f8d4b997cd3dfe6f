package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	MaxSkills          = 15
	MaxSuggestedSkills = 4
)

var (
	ErrSkillLimit = errors.New("skill limit reached")
	ErrEmptySkill = errors.New("skill name is empty")
)

// Language levels offered by the wizard.
const (
	LevelBasic        = "Basic"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
	LevelFluent       = "Fluent"
	LevelNative       = "Native"
)

func ValidLevel(level string) bool {
	switch level {
	case "", LevelBasic, LevelIntermediate, LevelAdvanced, LevelFluent, LevelNative:
		return true
	}
	return false
}

// Valid returns the skills with a non-blank name, in order.
func (s Skills) Valid() []Skill {
	out := make([]Skill, 0, len(s.Skills))
	for _, sk := range s.Skills {
		if strings.TrimSpace(sk.Name) != "" {
			out = append(out, sk)
		}
	}
	return out
}

func (s Skills) ValidSkillCount() int { return len(s.Valid()) }

// CheckLimit fails with ErrSkillLimit when more than MaxSkills non-blank
// skills are present.
func (s Skills) CheckLimit() error {
	if n := s.ValidSkillCount(); n > MaxSkills {
		return fmt.Errorf("%w: %d skills, at most %d allowed", ErrSkillLimit, n, MaxSkills)
	}
	return nil
}

// Names returns valid skill names.
func (s Skills) Names() []string {
	valid := s.Valid()
	out := make([]string, len(valid))
	for i, sk := range valid {
		out[i] = sk.Name
	}
	return out
}

// LanguageNames returns the names of languages with a non-blank name.
func (s Skills) LanguageNames() []string {
	var out []string
	for _, l := range s.Languages {
		if strings.TrimSpace(l.Name) != "" {
			out = append(out, l.Name)
		}
	}
	return out
}

// AddSkill appends a trimmed skill. Blank entries are dropped from the list
// on the way and never count toward MaxSkills.
func (s *Skills) AddSkill(name string) (Skill, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Skill{}, ErrEmptySkill
	}
	valid := s.Valid()
	if len(valid) >= MaxSkills {
		return Skill{}, ErrSkillLimit
	}
	sk := Skill{ID: uuid.NewString(), Name: name}
	s.Skills = append(valid, sk)
	return sk, nil
}

// MergeSuggestions adds up to MaxSuggestedSkills suggested names that are not
// already present (case-insensitive), stopping at MaxSkills. It returns the
// names actually added.
func (s *Skills) MergeSuggestions(names []string) []string {
	valid := s.Valid()
	seen := map[string]bool{}
	for _, sk := range valid {
		seen[strings.ToLower(sk.Name)] = true
	}
	slots := MaxSkills - len(valid)
	if slots > MaxSuggestedSkills {
		slots = MaxSuggestedSkills
	}
	var added []string
	for _, n := range names {
		if len(added) >= slots {
			break
		}
		n = strings.TrimSpace(n)
		if n == "" || seen[strings.ToLower(n)] {
			continue
		}
		seen[strings.ToLower(n)] = true
		valid = append(valid, Skill{ID: uuid.NewString(), Name: n})
		added = append(added, n)
	}
	s.Skills = valid
	return added
}

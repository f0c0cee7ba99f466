package scene

import (
	"fmt"

	"github.com/ThatOtherAndrew/Handcloud/internal/palette"
	"github.com/ThatOtherAndrew/Handcloud/internal/spawn"
)

// Kind tags a Command.
type Kind int

const (
	SetExpansionTarget Kind = iota
	CycleScheme
	CycleTemplate
	SetTemplate
	Reset
)

var kindNames = [...]string{
	SetExpansionTarget: "set_expansion_target",
	CycleScheme:        "cycle_scheme",
	CycleTemplate:      "cycle_template",
	SetTemplate:        "set_template",
	Reset:              "reset",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Command is a discrete state mutation. Template is read by SetTemplate and
// Value by SetExpansionTarget.
type Command struct {
	Kind     Kind
	Template spawn.ID
	Value    float32
}

func (c Command) String() string {
	switch c.Kind {
	case SetTemplate:
		return fmt.Sprintf("%s(%s)", c.Kind, c.Template)
	case SetExpansionTarget:
		return fmt.Sprintf("%s(%.2f)", c.Kind, c.Value)
	}
	return c.Kind.String()
}

// Apply returns the state after c and whether the particle field has to be
// resampled.
func (c Command) Apply(s State) (State, bool) {
	switch c.Kind {
	case SetExpansionTarget:
		s.Expansion.SetTarget(c.Value)
		return s, false

	case CycleScheme:
		s.Scheme = palette.Next(s.Scheme)
		return s, true

	case CycleTemplate:
		s.TemplateIndex = spawn.Next(s.TemplateIndex)
		s.Template = spawn.At(s.TemplateIndex)
		return s, true

	case SetTemplate:
		s.Template = c.Template
		return s, true

	case Reset:
		rate := s.Expansion.Rate
		rotation := s.Rotation
		s = New(rate)
		s.Rotation = rotation
		return s, true
	}
	return s, false
}

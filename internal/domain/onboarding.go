package domain

import (
	"fmt"
	"strings"
)

type Step int

const (
	StepWelcome Step = iota
	StepInterests
	StepExperience
	StepStyle
	StepIntent
)

const (
	FirstStep = StepWelcome
	LastStep  = StepIntent
)

var DefaultOpenTo = []string{"weekend projects"}

var InterestOptions = []string{
	"AI tools", "Web apps", "Mobile apps", "Games",
	"Open Source", "Dev tools", "Creative coding", "Blockchain",
	"Robotics", "Data Visualization", "Cybersecurity", "IoT",
}

var OpenToOptions = []string{
	"weekend projects", "hackathons", "long-term projects", "pair programming", "mentoring",
}

func (s Step) Title() string {
	switch s {
	case StepWelcome:
		return "Welcome"
	case StepInterests:
		return "Interests"
	case StepExperience:
		return "Experience"
	case StepStyle:
		return "Style"
	case StepIntent:
		return "Availability & intent"
	default:
		return fmt.Sprintf("Step(%d)", int(s))
	}
}

func clampStep(s Step) Step {
	if s < FirstStep {
		return FirstStep
	}
	if s > LastStep {
		return LastStep
	}
	return s
}

// Event is one input to the onboarding state machine.
type Event interface {
	event()
}

type (
	Next            struct{}
	Back            struct{}
	ToggleInterest  struct{ Tag string }
	SetExperience   struct{ Level ExperienceLevel }
	SetLearning     struct{ Raw string }
	SetStyle        struct{ Style BuildingStyle }
	ToggleOpenTo    struct{ Tag string }
	SetIdea         struct{ Idea string }
	SetAvailability struct{ Availability Availability }
	SetLookingFor   struct{ LookingFor LookingFor }
)

func (Next) event()            {}
func (Back) event()            {}
func (ToggleInterest) event()  {}
func (SetExperience) event()   {}
func (SetLearning) event()     {}
func (SetStyle) event()        {}
func (ToggleOpenTo) event()    {}
func (SetIdea) event()         {}
func (SetAvailability) event() {}
func (SetLookingFor) event()   {}

// Onboarding is the linear profile wizard. The draft lives only in memory until finalization.
type Onboarding struct {
	step     Step
	draft    Builder
	complete bool
}

func NewOnboarding(initial Builder) *Onboarding {
	draft := initial.Clone()
	if draft.Interests == nil {
		draft.Interests = []string{}
	}
	if draft.BuildingStyle == "" {
		draft.BuildingStyle = BuildingStyleFiguresItOut
	}
	if draft.Availability == "" {
		draft.Availability = AvailabilityOpen
	}
	if len(draft.OpenTo) == 0 {
		draft.OpenTo = append([]string(nil), DefaultOpenTo...)
	}
	if draft.Learning == nil {
		draft.Learning = []string{}
	}
	if draft.ExperienceLevel == "" {
		draft.ExperienceLevel = ExperienceIntermediate
	}
	if draft.LookingFor == "" {
		draft.LookingFor = LookingForBuildPartner
	}

	return &Onboarding{step: StepWelcome, draft: draft}
}

func (o *Onboarding) Step() Step {
	return o.step
}

func (o *Onboarding) Draft() Builder {
	return o.draft.Clone()
}

func (o *Onboarding) IsLastStep() bool {
	return o.step == LastStep
}

func (o *Onboarding) Complete() bool {
	return o.complete
}

// MarkComplete is called once the draft has been accepted by the server.
func (o *Onboarding) MarkComplete() {
	o.complete = true
}

func (o *Onboarding) Next() {
	_ = o.Apply(Next{})
}

func (o *Onboarding) Back() {
	_ = o.Apply(Back{})
}

// Apply is the single transition function. Navigation saturates at the bounds;
// field edits are only accepted on the step that owns the field.
func (o *Onboarding) Apply(ev Event) error {
	if o.complete {
		return fmt.Errorf("onboarding already complete")
	}

	switch e := ev.(type) {
	case Next:
		o.step = clampStep(o.step + 1)
	case Back:
		o.step = clampStep(o.step - 1)
	case ToggleInterest:
		if err := o.requireStep(StepInterests, ev); err != nil {
			return err
		}
		o.draft.Interests = ToggleTag(o.draft.Interests, e.Tag)
	case SetExperience:
		if err := o.requireStep(StepExperience, ev); err != nil {
			return err
		}
		if !e.Level.Valid() {
			return fmt.Errorf("unsupported experience level %q", e.Level)
		}
		o.draft.ExperienceLevel = e.Level
	case SetLearning:
		if err := o.requireStep(StepExperience, ev); err != nil {
			return err
		}
		o.draft.Learning = ParseTagList(e.Raw)
	case SetStyle:
		if err := o.requireStep(StepStyle, ev); err != nil {
			return err
		}
		if !e.Style.Valid() {
			return fmt.Errorf("unsupported building style %q", e.Style)
		}
		o.draft.BuildingStyle = e.Style
	case ToggleOpenTo:
		if err := o.requireStep(StepIntent, ev); err != nil {
			return err
		}
		o.draft.OpenTo = ToggleTag(o.draft.OpenTo, e.Tag)
	case SetIdea:
		if err := o.requireStep(StepIntent, ev); err != nil {
			return err
		}
		idea := strings.TrimSpace(e.Idea)
		if idea == "" {
			o.draft.CurrentIdea = nil
			break
		}
		o.draft.CurrentIdea = &idea
	case SetAvailability:
		if err := o.requireStep(StepIntent, ev); err != nil {
			return err
		}
		if !e.Availability.Valid() {
			return fmt.Errorf("unsupported availability %q", e.Availability)
		}
		o.draft.Availability = e.Availability
	case SetLookingFor:
		if err := o.requireStep(StepIntent, ev); err != nil {
			return err
		}
		if !e.LookingFor.Valid() {
			return fmt.Errorf("unsupported looking for %q", e.LookingFor)
		}
		o.draft.LookingFor = e.LookingFor
	default:
		return fmt.Errorf("unsupported onboarding event %T", ev)
	}

	return nil
}

func (o *Onboarding) requireStep(want Step, ev Event) error {
	if o.step != want {
		return fmt.Errorf("%w: %T on step %s", ErrStepMismatch, ev, o.step.Title())
	}
	return nil
}

// Package onboarding renders the onboarding state machine as a sequence of huh forms.
package onboarding

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/partners-cli/internal/application"
	"github.com/bnema/partners-cli/internal/domain"
	"github.com/charmbracelet/huh"
	"pkt.systems/pslog"
)

var ErrCancelled = errors.New("onboarding cancelled")

type Options struct {
	Input  io.Reader
	Output io.Writer
	// Accessible swaps the TUI for line-based prompts.
	Accessible bool
}

// Wizard shows one form per onboarding step. Every answer goes through the
// state machine, so the draft obeys the same rules as any other driver.
type Wizard struct {
	flow *application.OnboardingFlow
	opts Options
}

func NewWizard(flow *application.OnboardingFlow, opts Options) *Wizard {
	return &Wizard{flow: flow, opts: opts}
}

// answers holds the form-bound values of the current step.
type answers struct {
	advance bool

	interests    []string
	experience   domain.ExperienceLevel
	learning     string
	style        domain.BuildingStyle
	openTo       []string
	idea         string
	availability domain.Availability
	lookingFor   domain.LookingFor
}

func answersFromDraft(draft domain.Builder) answers {
	a := answers{
		advance:      true,
		interests:    append([]string(nil), draft.Interests...),
		experience:   draft.ExperienceLevel,
		learning:     strings.Join(draft.Learning, ", "),
		style:        draft.BuildingStyle,
		openTo:       append([]string(nil), draft.OpenTo...),
		availability: draft.Availability,
		lookingFor:   draft.LookingFor,
	}
	if draft.CurrentIdea != nil {
		a.idea = *draft.CurrentIdea
	}
	return a
}

// Run drives the wizard until the profile is submitted or the user aborts.
// A failed submission is reported and the last step is shown again with its draft.
func (w *Wizard) Run(ctx context.Context) (domain.Session, error) {
	log := pslog.Ctx(ctx)

	for {
		step := w.flow.Step()
		a := answersFromDraft(w.flow.Draft())

		if err := w.form(step, &a).RunWithContext(ctx); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return domain.Session{}, ErrCancelled
			}
			return domain.Session{}, err
		}
		if err := applyAnswers(w.flow.Onboarding, step, a); err != nil {
			return domain.Session{}, err
		}

		if !a.advance {
			w.flow.Back()
			continue
		}
		if !w.flow.IsLastStep() {
			w.flow.Next()
			continue
		}

		session, err := w.flow.Finalize(ctx)
		if err == nil {
			return session, nil
		}
		if ctx.Err() != nil {
			return domain.Session{}, err
		}
		log.Warn("onboarding submit failed", "err", err)
		if w.opts.Output != nil {
			_, _ = fmt.Fprintf(w.opts.Output, "Could not save your profile: %v\n", err)
		}
	}
}

func (w *Wizard) form(step domain.Step, a *answers) *huh.Form {
	var fields []huh.Field

	switch step {
	case domain.StepWelcome:
		fields = append(fields, huh.NewNote().
			Title("Welcome to Partners").
			Description("A few questions help us find builders who fit how you work."))
	case domain.StepInterests:
		fields = append(fields, huh.NewMultiSelect[string]().
			Title("What do you like building?").
			Options(tagOptions(domain.InterestOptions, a.interests)...).
			Value(&a.interests))
	case domain.StepExperience:
		fields = append(fields,
			huh.NewSelect[domain.ExperienceLevel]().
				Title("Experience level").
				Options(enumOptions(domain.ExperienceLevels, domain.ExperienceLevel.Label)...).
				Value(&a.experience),
			huh.NewInput().
				Title("Currently learning").
				Description("Comma separated, e.g. Rust, WebGPU").
				Value(&a.learning),
		)
	case domain.StepStyle:
		fields = append(fields, huh.NewSelect[domain.BuildingStyle]().
			Title("How do you build?").
			Options(styleOptions()...).
			Value(&a.style))
	case domain.StepIntent:
		fields = append(fields,
			huh.NewSelect[domain.Availability]().
				Title("Availability").
				Options(enumOptions(domain.Availabilities, domain.Availability.Label)...).
				Value(&a.availability),
			huh.NewSelect[domain.LookingFor]().
				Title("Looking for").
				Options(enumOptions(domain.LookingForOptions, domain.LookingFor.Label)...).
				Value(&a.lookingFor),
			huh.NewMultiSelect[string]().
				Title("Open to").
				Options(tagOptions(domain.OpenToOptions, a.openTo)...).
				Value(&a.openTo),
			huh.NewInput().
				Title("Current idea").
				Description("Optional").
				Value(&a.idea),
		)
	}

	fields = append(fields, navigation(step, &a.advance))

	form := huh.NewForm(
		huh.NewGroup(fields...).
			Title(fmt.Sprintf("Step %d of %d: %s", int(step)+1, int(domain.LastStep)+1, step.Title())),
	).WithTheme(newTheme()).WithAccessible(w.opts.Accessible)
	if w.opts.Input != nil {
		form = form.WithInput(w.opts.Input)
	}
	if w.opts.Output != nil {
		form = form.WithOutput(w.opts.Output)
	}

	return form
}

func navigation(step domain.Step, advance *bool) huh.Field {
	affirmative := "Next"
	if step == domain.LastStep {
		affirmative = "Finish"
	}
	confirm := huh.NewConfirm().Affirmative(affirmative).Value(advance)
	if step == domain.FirstStep {
		return confirm.Title("Ready?").Negative("")
	}
	return confirm.Title("Continue?").Negative("Back")
}

// applyAnswers replays the answers of one step as state machine events.
func applyAnswers(o *domain.Onboarding, step domain.Step, a answers) error {
	draft := o.Draft()
	var events []domain.Event

	switch step {
	case domain.StepInterests:
		for _, tag := range tagChanges(draft.Interests, a.interests) {
			events = append(events, domain.ToggleInterest{Tag: tag})
		}
	case domain.StepExperience:
		events = append(events, domain.SetExperience{Level: a.experience}, domain.SetLearning{Raw: a.learning})
	case domain.StepStyle:
		events = append(events, domain.SetStyle{Style: a.style})
	case domain.StepIntent:
		for _, tag := range tagChanges(draft.OpenTo, a.openTo) {
			events = append(events, domain.ToggleOpenTo{Tag: tag})
		}
		events = append(events,
			domain.SetIdea{Idea: a.idea},
			domain.SetAvailability{Availability: a.availability},
			domain.SetLookingFor{LookingFor: a.lookingFor},
		)
	}

	for _, ev := range events {
		if err := o.Apply(ev); err != nil {
			return err
		}
	}
	return nil
}

// tagChanges lists the tags whose membership differs between current and
// selected; toggling each of them turns current into selected.
func tagChanges(current, selected []string) []string {
	var changes []string
	for _, tag := range current {
		if !domain.HasTag(selected, tag) {
			changes = append(changes, tag)
		}
	}
	for _, tag := range selected {
		if !domain.HasTag(current, tag) && !domain.HasTag(changes, tag) {
			changes = append(changes, tag)
		}
	}
	return changes
}

// tagOptions offers the fixed choices plus any custom tags already on the draft.
func tagOptions(choices, selected []string) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(choices)+len(selected))
	for _, choice := range choices {
		options = append(options, huh.NewOption(choice, choice).Selected(domain.HasTag(selected, choice)))
	}
	for _, tag := range selected {
		if !domain.HasTag(choices, tag) {
			options = append(options, huh.NewOption(tag, tag).Selected(true))
		}
	}
	return options
}

func enumOptions[T ~string](values []T, label func(T) string) []huh.Option[T] {
	options := make([]huh.Option[T], 0, len(values))
	for _, value := range values {
		options = append(options, huh.NewOption(label(value), value))
	}
	return options
}

func styleOptions() []huh.Option[domain.BuildingStyle] {
	options := make([]huh.Option[domain.BuildingStyle], 0, len(domain.BuildingStyles))
	for _, style := range domain.BuildingStyles {
		options = append(options, huh.NewOption(style.Label()+": "+style.Description(), style))
	}
	return options
}

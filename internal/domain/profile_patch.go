package domain

import "fmt"

// ProfilePatch carries only the fields a caller wants to change. Nil means unchanged.
type ProfilePatch struct {
	Bio             *string
	City            *string
	Email           *string
	CurrentIdea     *string
	BuildingStyle   *BuildingStyle
	Availability    *Availability
	ExperienceLevel *ExperienceLevel
	LookingFor      *LookingFor
	Interests       *[]string
	OpenTo          *[]string
	Learning        *[]string
}

func (p ProfilePatch) IsEmpty() bool {
	return len(p.ChangedFields()) == 0
}

// ChangedFields lists the wire names of the fields set on the patch.
func (p ProfilePatch) ChangedFields() []string {
	fields := make([]string, 0, 11)
	if p.Bio != nil {
		fields = append(fields, "bio")
	}
	if p.City != nil {
		fields = append(fields, "city")
	}
	if p.Email != nil {
		fields = append(fields, "email")
	}
	if p.CurrentIdea != nil {
		fields = append(fields, "current_idea")
	}
	if p.BuildingStyle != nil {
		fields = append(fields, "building_style")
	}
	if p.Availability != nil {
		fields = append(fields, "availability")
	}
	if p.ExperienceLevel != nil {
		fields = append(fields, "experience_level")
	}
	if p.LookingFor != nil {
		fields = append(fields, "looking_for")
	}
	if p.Interests != nil {
		fields = append(fields, "interests")
	}
	if p.OpenTo != nil {
		fields = append(fields, "open_to")
	}
	if p.Learning != nil {
		fields = append(fields, "learning")
	}

	return fields
}

// Validate returns the wire name of the first invalid field alongside the error.
func (p ProfilePatch) Validate() (string, error) {
	if p.BuildingStyle != nil && !p.BuildingStyle.Valid() {
		return "building_style", fmt.Errorf("unsupported building style %q", *p.BuildingStyle)
	}
	if p.Availability != nil && !p.Availability.Valid() {
		return "availability", fmt.Errorf("unsupported availability %q", *p.Availability)
	}
	if p.ExperienceLevel != nil && !p.ExperienceLevel.Valid() {
		return "experience_level", fmt.Errorf("unsupported experience level %q", *p.ExperienceLevel)
	}
	if p.LookingFor != nil && !p.LookingFor.Valid() {
		return "looking_for", fmt.Errorf("unsupported looking for %q", *p.LookingFor)
	}

	return "", nil
}

// OnboardingPatch collects every field the onboarding wizard edits. A cleared
// idea is sent as "" so the server drops the stored one.
func OnboardingPatch(draft Builder) ProfilePatch {
	interests := NormalizeTags(draft.Interests)
	openTo := NormalizeTags(draft.OpenTo)
	learning := NormalizeTags(draft.Learning)
	style := draft.BuildingStyle
	availability := draft.Availability
	level := draft.ExperienceLevel
	lookingFor := draft.LookingFor
	idea := ""
	if draft.CurrentIdea != nil {
		idea = *draft.CurrentIdea
	}

	return ProfilePatch{
		CurrentIdea:     &idea,
		Interests:       &interests,
		OpenTo:          &openTo,
		Learning:        &learning,
		BuildingStyle:   &style,
		Availability:    &availability,
		ExperienceLevel: &level,
		LookingFor:      &lookingFor,
	}
}

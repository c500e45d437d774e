package domain

import (
	"fmt"
	"strings"
)

type BuildingStyle string

const (
	BuildingStyleShipsFast    BuildingStyle = "ships_fast"
	BuildingStylePlansFirst   BuildingStyle = "plans_first"
	BuildingStyleDesignsFirst BuildingStyle = "designs_first"
	BuildingStyleFiguresItOut BuildingStyle = "figures_it_out"
)

var BuildingStyles = []BuildingStyle{
	BuildingStyleShipsFast,
	BuildingStylePlansFirst,
	BuildingStyleDesignsFirst,
	BuildingStyleFiguresItOut,
}

func (s BuildingStyle) Valid() bool {
	switch s {
	case BuildingStyleShipsFast, BuildingStylePlansFirst, BuildingStyleDesignsFirst, BuildingStyleFiguresItOut:
		return true
	default:
		return false
	}
}

func (s BuildingStyle) Label() string {
	switch s {
	case BuildingStyleShipsFast:
		return "Ships Fast"
	case BuildingStylePlansFirst:
		return "Plans First"
	case BuildingStyleDesignsFirst:
		return "Designs First"
	case BuildingStyleFiguresItOut:
		return "Figures it Out"
	default:
		return string(s)
	}
}

func (s BuildingStyle) Description() string {
	switch s {
	case BuildingStyleShipsFast:
		return "Focus on MVP and speed"
	case BuildingStylePlansFirst:
		return "Detailed architecture before code"
	case BuildingStyleDesignsFirst:
		return "UI/UX excellence is priority"
	case BuildingStyleFiguresItOut:
		return "Experimental and agile"
	default:
		return ""
	}
}

type Availability string

const (
	AvailabilityThisWeekend Availability = "this_weekend"
	AvailabilityThisMonth   Availability = "this_month"
	AvailabilityOpen        Availability = "open"
	AvailabilityBusy        Availability = "busy"
)

var Availabilities = []Availability{
	AvailabilityThisWeekend,
	AvailabilityThisMonth,
	AvailabilityOpen,
	AvailabilityBusy,
}

func (a Availability) Valid() bool {
	switch a {
	case AvailabilityThisWeekend, AvailabilityThisMonth, AvailabilityOpen, AvailabilityBusy:
		return true
	default:
		return false
	}
}

func (a Availability) Label() string {
	switch a {
	case AvailabilityThisWeekend:
		return "This weekend"
	case AvailabilityThisMonth:
		return "This month"
	case AvailabilityOpen:
		return "Open"
	case AvailabilityBusy:
		return "Busy"
	default:
		return string(a)
	}
}

// ActivelyBuilding reports whether the builder is available soon.
func (a Availability) ActivelyBuilding() bool {
	switch a {
	case AvailabilityThisWeekend, AvailabilityThisMonth:
		return true
	case AvailabilityOpen, AvailabilityBusy:
		return false
	default:
		return false
	}
}

type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

var ExperienceLevels = []ExperienceLevel{
	ExperienceBeginner,
	ExperienceIntermediate,
	ExperienceAdvanced,
}

func (l ExperienceLevel) Valid() bool {
	switch l {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced:
		return true
	default:
		return false
	}
}

func (l ExperienceLevel) Label() string {
	switch l {
	case ExperienceBeginner:
		return "Beginner"
	case ExperienceIntermediate:
		return "Intermediate"
	case ExperienceAdvanced:
		return "Advanced"
	default:
		return string(l)
	}
}

type LookingFor string

const (
	LookingForMentor        LookingFor = "mentor"
	LookingForBuildPartner  LookingFor = "build_partner"
	LookingForLearningBuddy LookingFor = "learning_buddy"
)

var LookingForOptions = []LookingFor{
	LookingForMentor,
	LookingForBuildPartner,
	LookingForLearningBuddy,
}

func (l LookingFor) Valid() bool {
	switch l {
	case LookingForMentor, LookingForBuildPartner, LookingForLearningBuddy:
		return true
	default:
		return false
	}
}

func (l LookingFor) Label() string {
	switch l {
	case LookingForMentor:
		return "Mentor"
	case LookingForBuildPartner:
		return "Build partner"
	case LookingForLearningBuddy:
		return "Learning buddy"
	default:
		return string(l)
	}
}

func ParseBuildingStyle(raw string) (BuildingStyle, error) {
	style := BuildingStyle(normalizeVariant(raw))
	if !style.Valid() {
		return "", fmt.Errorf("unsupported building style %q", raw)
	}

	return style, nil
}

func ParseAvailability(raw string) (Availability, error) {
	availability := Availability(normalizeVariant(raw))
	if !availability.Valid() {
		return "", fmt.Errorf("unsupported availability %q", raw)
	}

	return availability, nil
}

func ParseExperienceLevel(raw string) (ExperienceLevel, error) {
	level := ExperienceLevel(normalizeVariant(raw))
	if !level.Valid() {
		return "", fmt.Errorf("unsupported experience level %q", raw)
	}

	return level, nil
}

func ParseLookingFor(raw string) (LookingFor, error) {
	lookingFor := LookingFor(normalizeVariant(raw))
	if !lookingFor.Valid() {
		return "", fmt.Errorf("unsupported looking for %q", raw)
	}

	return lookingFor, nil
}

// normalizeVariant accepts "Ships Fast", "ships-fast" and "ships_fast" alike.
func normalizeVariant(raw string) string {
	value := strings.ToLower(strings.TrimSpace(raw))
	value = strings.ReplaceAll(value, "-", "_")
	return strings.ReplaceAll(value, " ", "_")
}

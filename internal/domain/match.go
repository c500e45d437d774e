package domain

// MatchResult is the scored compatibility with one target. It is never persisted.
type MatchResult struct {
	Builder        Builder
	ChemistryScore int
	Vibe           string
	Why            string
	BuildIdea      string
}

// ScoreBand buckets the chemistry score for display.
func (m MatchResult) ScoreBand() string {
	switch {
	case m.ChemistryScore >= 80:
		return "strong"
	case m.ChemistryScore >= 50:
		return "promising"
	default:
		return "weak"
	}
}

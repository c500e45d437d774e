package card

import (
	"fmt"
	"math"
	"strings"

	"github.com/bnema/partners-cli/internal/application"
	"github.com/bnema/partners-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	scoreBarWidth    = 20
	directoryLangMax = 3
)

type DirectoryOptions struct {
	Search string
}

func sessionView(session domain.Session, signedIn bool, s styles) string {
	if !signedIn {
		return s.empty.Render("Not signed in. Run `partners login` or `partners register`.")
	}

	lines := []string{
		s.title.Render(fmt.Sprintf("Signed in as %s", session.Profile.Username)),
		s.header.Render(fmt.Sprintf("session: %s", session.ID)),
	}
	if session.NeedsOnboarding {
		lines = append(lines, s.warning.Render("Onboarding pending. Run `partners onboard` to finish your profile."))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func profileView(b domain.Builder, s styles) string {
	lines := []string{
		s.username.Render(builderTitle(b)),
		s.header.Render(b.AvatarURL()),
	}
	if bio := strings.TrimSpace(b.Bio); bio != "" {
		lines = append(lines, s.quote.Render(bio))
	}

	lines = append(lines, field(s, "city", orNA(b.City)))
	lines = append(lines, field(s, "style", enumLabel(string(b.BuildingStyle), b.BuildingStyle.Label())))
	lines = append(lines, field(s, "availability", availabilityLabel(b.Availability)))
	lines = append(lines, field(s, "experience", enumLabel(string(b.ExperienceLevel), b.ExperienceLevel.Label())))
	lines = append(lines, field(s, "looking for", enumLabel(string(b.LookingFor), b.LookingFor.Label())))
	lines = append(lines, field(s, "interests", tags(s, b.Interests)))
	lines = append(lines, field(s, "open to", tags(s, b.OpenTo)))
	if len(b.Learning) > 0 {
		lines = append(lines, field(s, "learning", tags(s, b.Learning)))
	}
	if b.CurrentIdea != nil {
		lines = append(lines, field(s, "building", *b.CurrentIdea))
	}
	if b.GitHubUsername != "" {
		lines = append(lines, field(s, "github", fmt.Sprintf("%s (%d repos, %d stars)", b.GitHubUsername, b.PublicRepos, b.TotalStars)))
	}
	if len(b.GitHubLanguages) > 0 {
		lines = append(lines, field(s, "languages", strings.Join(b.GitHubLanguages, ", ")))
	}
	for _, repo := range b.GitHubRepos {
		lines = append(lines, s.detail.Render(repoLine(repo)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func directoryView(builders []domain.Builder, opts DirectoryOptions, s styles) string {
	header := fmt.Sprintf("builders: %d", len(builders))
	if search := strings.TrimSpace(opts.Search); search != "" {
		header = fmt.Sprintf("builders matching %q: %d", search, len(builders))
	}
	lines := []string{
		s.title.Render("Builder Directory"),
		s.header.Render(header),
	}

	if len(builders) == 0 {
		lines = append(lines, s.empty.Render("No builders found."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, b := range builders {
		lines = append(lines, s.section.Render(directoryEntry(b, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func directoryEntry(b domain.Builder, s styles) string {
	parts := []string{s.username.Render(builderTitle(b))}
	if bio := strings.TrimSpace(b.Bio); bio != "" {
		parts = append(parts, s.detail.Render(bio))
	}

	meta := []string{availabilityLabel(b.Availability)}
	if b.Availability.ActivelyBuilding() {
		meta = append(meta, "actively building")
	}
	if langs := b.TopLanguages(directoryLangMax); len(langs) > 0 {
		meta = append(meta, strings.Join(langs, ", "))
	}
	parts = append(parts, s.label.Render(strings.Join(meta, " · ")))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func matchesView(outcomes []application.MatchOutcome, s styles) string {
	if len(outcomes) == 0 {
		return s.empty.Render("No match requested.")
	}

	blocks := make([]string, 0, len(outcomes))
	for i, outcome := range outcomes {
		block := matchView(outcome, s)
		if i > 0 {
			block = s.section.Render(block)
		}
		blocks = append(blocks, block)
	}

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func matchView(outcome application.MatchOutcome, s styles) string {
	title := s.username.Render(fmt.Sprintf("You × %s", outcome.Target))
	if outcome.Err != nil {
		return lipgloss.JoinVertical(lipgloss.Left, title, s.warning.Render("match failed: "+outcome.Err.Error()))
	}

	result := outcome.Result
	scoreStyle := lipgloss.NewStyle().Foreground(scoreColor(result.ChemistryScore))
	score := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.label.Render("chemistry:"),
		" ",
		renderScoreBar(result.ChemistryScore, scoreBarWidth, s),
		" ",
		scoreStyle.Render(fmt.Sprintf("%d/100 (%s)", clampScore(result.ChemistryScore), result.ScoreBand())),
	)

	lines := []string{title, score}
	if result.Vibe != "" {
		lines = append(lines, field(s, "vibe", result.Vibe))
	}
	if result.Why != "" {
		lines = append(lines, field(s, "why", result.Why))
	}
	if result.BuildIdea != "" {
		lines = append(lines, field(s, "build idea", result.BuildIdea))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderScoreBar(score, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * float64(clampScore(score)) / 100))
	fill := lipgloss.NewStyle().Foreground(scoreColor(score))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		fill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// scoreColor follows the same bands as MatchResult.ScoreBand.
func scoreColor(score int) lipgloss.Color {
	switch {
	case score >= 80:
		return lipgloss.Color("42")
	case score >= 50:
		return lipgloss.Color("220")
	default:
		return lipgloss.Color("203")
	}
}

func builderTitle(b domain.Builder) string {
	if city := strings.TrimSpace(b.City); city != "" {
		return fmt.Sprintf("%s (%s)", b.Username, city)
	}
	return string(b.Username)
}

func field(s styles, name, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, s.label.Render(name+":"), " ", s.detail.Render(value))
}

func tags(s styles, values []string) string {
	if len(values) == 0 {
		return "n/a"
	}
	return s.tag.Render(strings.Join(values, ", "))
}

func repoLine(repo domain.Repo) string {
	line := fmt.Sprintf("  %s ★%d", repo.Name, repo.Stars)
	if repo.Language != "" {
		line += " [" + repo.Language + "]"
	}
	if repo.Description != "" {
		line += " " + repo.Description
	}
	return line
}

func availabilityLabel(a domain.Availability) string {
	return enumLabel(string(a), a.Label())
}

func enumLabel(raw, label string) string {
	if raw == "" {
		return "n/a"
	}
	return label
}

func orNA(value string) string {
	if strings.TrimSpace(value) == "" {
		return "n/a"
	}
	return value
}

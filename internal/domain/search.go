package domain

import "strings"

// Search keeps candidates whose username, bio or one of the GitHub languages
// contains query, ignoring case. Only the empty query returns candidates
// unchanged; whitespace is part of the needle.
func Search(candidates []Builder, query string) []Builder {
	needle := strings.ToLower(query)
	if needle == "" {
		return candidates
	}

	matches := make([]Builder, 0, len(candidates))
	for _, candidate := range candidates {
		if candidateMatches(candidate, needle) {
			matches = append(matches, candidate)
		}
	}

	return matches
}

func candidateMatches(candidate Builder, needle string) bool {
	if strings.Contains(strings.ToLower(string(candidate.Username)), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(candidate.Bio), needle) {
		return true
	}
	for _, language := range candidate.GitHubLanguages {
		if strings.Contains(strings.ToLower(language), needle) {
			return true
		}
	}

	return false
}

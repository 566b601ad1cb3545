package service

import (
	"strings"
	"unicode"
)

// Scoring is a deterministic length/structure heuristic. The real analysis
// engine is an external collaborator; this keeps exercise records scored and
// comparable without it.

const maxScore = 100

// ScoreStoryAnswer rates a submitted story answer and returns the score with
// improvement suggestions.
func ScoreStoryAnswer(answer string) (int, string) {
	words := strings.Fields(answer)
	sentences := countSentences(answer)

	score := 40
	if n := len(words); n > 50 {
		score += 40
	} else {
		score += n * 4 / 5
	}
	if sentences >= 3 {
		score += 10
	}
	if startsCapitalized(answer) {
		score += 10
	}
	if score > maxScore {
		score = maxScore
	}

	var suggestions []string
	if len(words) < 30 {
		suggestions = append(suggestions, "Develop the story with more detail.")
	}
	if sentences < 3 {
		suggestions = append(suggestions, "Split your answer into more sentences.")
	}
	if !startsCapitalized(answer) {
		suggestions = append(suggestions, "Start sentences with a capital letter.")
	}
	if len(suggestions) == 0 {
		suggestions = append(suggestions, "Well structured answer, keep it up.")
	}
	return score, strings.Join(suggestions, " ")
}

// ScoreEssay rates a writing submission.
func ScoreEssay(text string) int {
	words := strings.Fields(text)
	sentences := countSentences(text)

	score := 30
	if n := len(words); n > 120 {
		score += 50
	} else {
		score += n * 5 / 12
	}
	if sentences >= 5 {
		score += 10
	}
	if startsCapitalized(text) {
		score += 10
	}
	if score > maxScore {
		score = maxScore
	}
	return score
}

func countSentences(s string) int {
	n := strings.Count(s, ".") + strings.Count(s, "!") + strings.Count(s, "?")
	return n
}

func startsCapitalized(s string) bool {
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		return unicode.IsUpper(r)
	}
	return false
}

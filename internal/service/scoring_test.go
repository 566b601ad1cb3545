package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScoreStoryAnswer(t *testing.T) {
	t.Run("short answer", func(t *testing.T) {
		score, suggestions := ScoreStoryAnswer("hi there")
		require.Less(t, score, 60)
		require.Contains(t, suggestions, "more detail")
		require.Contains(t, suggestions, "capital letter")
	})

	t.Run("developed answer", func(t *testing.T) {
		answer := "The picture shows a busy market. " +
			strings.Repeat("People are trading fresh vegetables and talking loudly. ", 10) +
			"Everyone seems happy."
		score, suggestions := ScoreStoryAnswer(answer)
		require.Equal(t, 100, score)
		require.Contains(t, suggestions, "keep it up")
	})

	t.Run("deterministic", func(t *testing.T) {
		a, _ := ScoreStoryAnswer("One fine day. The dog ran home. It was tired.")
		b, _ := ScoreStoryAnswer("One fine day. The dog ran home. It was tired.")
		require.Equal(t, a, b)
	})
}

func TestScoreEssay(t *testing.T) {
	require.Less(t, ScoreEssay("short text"), 50)

	long := "This essay discusses language learning. " + strings.Repeat("Practice makes progress over time. ", 30)
	require.Equal(t, 100, ScoreEssay(long))

	require.GreaterOrEqual(t, ScoreEssay(""), 0)
}

package ats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	vocab := []string{"python", "sql", "docker"}

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "case insensitive",
			text: "I know Python and SQL",
			want: []string{"python", "sql"},
		},
		{
			name: "empty text",
			text: "",
			want: []string{},
		},
		{
			name: "no matches",
			text: "I herd sheep for a living",
			want: []string{},
		},
		{
			name: "all matches sorted",
			text: "SQL, Docker and Python daily",
			want: []string{"docker", "python", "sql"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.text, vocab))
		})
	}
}

func TestMatch_SubstringFalsePositive(t *testing.T) {
	// "java" is contained in "javascript"; containment matching keeps
	// this behavior on purpose.
	got := Match("Senior JavaScript developer", []string{"java", "javascript"})
	assert.Equal(t, []string{"java", "javascript"}, got)
}

func TestMatch_OutputSubsetOfVocabulary(t *testing.T) {
	vocab := Vocabulary()
	got := Match("python react kubernetes rest api and some noise", vocab)

	inVocab := make(map[string]bool, len(vocab))
	for _, s := range vocab {
		inVocab[s] = true
	}
	for _, s := range got {
		assert.True(t, inVocab[s], "matched skill %q not in vocabulary", s)
	}
}

func TestMatch_Idempotent(t *testing.T) {
	text := "Python, SQL, Docker, Kubernetes"
	vocab := Vocabulary()
	assert.Equal(t, Match(text, vocab), Match(text, vocab))
}

func TestVocabulary_ReturnsCopy(t *testing.T) {
	v := Vocabulary()
	v[0] = "clobbered"
	assert.NotEqual(t, "clobbered", Vocabulary()[0])
}

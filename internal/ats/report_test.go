package ats

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReport(t *testing.T) {
	report := BuildReport(
		[]string{"python", "sql", "git"},
		[]string{"python", "kubernetes", "sql", "aws"},
	)

	assert.Equal(t, []string{"python", "sql"}, report.MatchedSkills)
	assert.Equal(t, []string{"aws", "kubernetes"}, report.MissingSkills)
	assert.Equal(t, map[string]int{
		"python":     100,
		"sql":        100,
		"aws":        0,
		"kubernetes": 0,
	}, report.SkillScores)
}

func TestBuildReport_SpecExample(t *testing.T) {
	vocab := []string{"python", "sql"}
	resumeSkills := Match("I know Python and SQL", vocab)
	jobSkills := Match("Need Python", vocab)

	report := BuildReport(resumeSkills, jobSkills)
	assert.Equal(t, []string{"python"}, report.MatchedSkills)
	assert.Empty(t, report.MissingSkills)
	assert.Equal(t, 100, KeywordScore("I know Python and SQL", jobSkills))
}

func TestBuildReport_EmptyInputs(t *testing.T) {
	report := BuildReport(nil, nil)
	assert.Empty(t, report.MatchedSkills)
	assert.Empty(t, report.MissingSkills)
	assert.Empty(t, report.SkillScores)

	report = BuildReport(nil, []string{"aws"})
	assert.Empty(t, report.MatchedSkills)
	assert.Equal(t, []string{"aws"}, report.MissingSkills)
	assert.Equal(t, map[string]int{"aws": 0}, report.SkillScores)
}

// matched and missing partition the job skill set: disjoint, and their
// union equals it.
func TestBuildReport_Partition(t *testing.T) {
	cases := []struct {
		resume []string
		job    []string
	}{
		{[]string{"python"}, []string{"python", "sql"}},
		{[]string{}, []string{"aws", "docker", "kubernetes"}},
		{[]string{"git", "css", "html"}, []string{"git", "css", "html"}},
		{[]string{"react", "node.js"}, []string{"flutter"}},
	}

	for _, tc := range cases {
		report := BuildReport(tc.resume, tc.job)

		seen := make(map[string]bool)
		for _, s := range report.MatchedSkills {
			seen[s] = true
		}
		for _, s := range report.MissingSkills {
			require.False(t, seen[s], "skill %q in both matched and missing", s)
			seen[s] = true
		}

		union := make([]string, 0, len(seen))
		for s := range seen {
			union = append(union, s)
		}
		sort.Strings(union)

		want := append([]string(nil), tc.job...)
		sort.Strings(want)
		assert.Equal(t, want, union)

		require.Len(t, report.SkillScores, len(tc.job))
		for _, s := range report.MatchedSkills {
			assert.Equal(t, 100, report.SkillScores[s])
		}
		for _, s := range report.MissingSkills {
			assert.Equal(t, 0, report.SkillScores[s])
		}
	}
}

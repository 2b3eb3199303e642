package ats

import (
	"math"
	"strings"
)

// KeywordScore computes the ATS score: the share of jobSkills found in the
// resume text, rounded to an integer percentage. Containment is checked
// against the full resume text, not a pre-extracted skill set. An empty
// jobSkills list scores 0.
func KeywordScore(resumeText string, jobSkills []string) int {
	if len(jobSkills) == 0 {
		return 0
	}
	t := strings.ToLower(resumeText)
	matched := 0
	for _, skill := range jobSkills {
		if strings.Contains(t, strings.ToLower(skill)) {
			matched++
		}
	}
	return int(math.Round(float64(matched) / float64(len(jobSkills)) * 100))
}

package ats

import "sort"

// Report pairs the matched/missing skill lists with a per-skill binary
// score for every skill the job description asks for.
type Report struct {
	MatchedSkills []string       `json:"matched_skills"`
	MissingSkills []string       `json:"missing_skills"`
	SkillScores   map[string]int `json:"skill_scores"`
}

// BuildReport intersects the resume's skills with the job description's.
// Matched is the intersection, missing is jobSkills minus resumeSkills,
// both sorted ascending. SkillScores maps every job skill to 100 when
// matched and 0 otherwise. Pure function of its inputs.
func BuildReport(resumeSkills, jobSkills []string) Report {
	have := make(map[string]bool, len(resumeSkills))
	for _, s := range resumeSkills {
		have[s] = true
	}

	report := Report{
		MatchedSkills: []string{},
		MissingSkills: []string{},
		SkillScores:   make(map[string]int, len(jobSkills)),
	}

	seen := make(map[string]bool, len(jobSkills))
	for _, skill := range jobSkills {
		if seen[skill] {
			continue
		}
		seen[skill] = true

		if have[skill] {
			report.MatchedSkills = append(report.MatchedSkills, skill)
			report.SkillScores[skill] = 100
		} else {
			report.MissingSkills = append(report.MissingSkills, skill)
			report.SkillScores[skill] = 0
		}
	}

	sort.Strings(report.MatchedSkills)
	sort.Strings(report.MissingSkills)
	return report
}

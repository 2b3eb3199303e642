package critique

import (
	"fmt"
	"strings"
)

// excerptChars bounds how much of the job description and resume go into
// the prompt.
const excerptChars = 800

// Input carries everything the prompt needs about one scored resume.
type Input struct {
	ResumeText     string
	JobDescription string
	Score          int
	Matched        []string
	Missing        []string
}

// BuildPrompt renders the hiring-manager critique prompt.
func BuildPrompt(in Input) string {
	return fmt.Sprintf(`Job Description:
%s

Resume:
%s

ATS Score: %d%%

Matched Skills: %s
Missing Skills: %s

Answer as a hiring manager:
1. Why is the ATS score this value?
2. Resume weaknesses.
3. Skills to prioritize.
4. Real projects to build for this role.
5. A realistic 60-day improvement plan.`,
		excerpt(in.JobDescription),
		excerpt(in.ResumeText),
		in.Score,
		joinOrNone(in.Matched),
		joinOrNone(in.Missing),
	)
}

func excerpt(s string) string {
	if len(s) > excerptChars {
		return s[:excerptChars]
	}
	return s
}

func joinOrNone(skills []string) string {
	if len(skills) == 0 {
		return "None"
	}
	return strings.Join(skills, ", ")
}

// Package ats implements the keyword-matching core: skill detection in
// free text, the ATS percentage score, and report assembly.
package ats

import "slices"

// commonSkills is the fixed vocabulary of recognized skill keywords.
// Entries are lowercase; matching is case-insensitive substring containment.
var commonSkills = []string{
	"python", "java", "javascript", "react", "next.js",
	"node.js", "fastapi", "sql", "mysql", "postgresql",
	"mongodb", "aws", "docker", "kubernetes",
	"git", "github", "rest api", "html", "css",
	"flutter", "dart",
	"machine learning", "data analysis",
}

// Vocabulary returns a copy of the skill vocabulary. The underlying list is
// loaded once and never mutated.
func Vocabulary() []string {
	return slices.Clone(commonSkills)
}

package critique

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubProvider struct {
	response string
	err      error
	prompt   string
}

func (s *stubProvider) Complete(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.response, s.err
}

func TestAnalyze_ReturnsProviderText(t *testing.T) {
	stub := &stubProvider{response: "  Focus on Kubernetes.\n"}
	got := Analyze(context.Background(), stub, Input{Score: 50})
	assert.Equal(t, "Focus on Kubernetes.", got)
}

func TestAnalyze_FoldsErrorIntoText(t *testing.T) {
	stub := &stubProvider{err: errors.New("connection refused")}
	got := Analyze(context.Background(), stub, Input{Score: 50})
	assert.Equal(t, "AI error: connection refused", got)
}

func TestAnalyze_DisabledProvider(t *testing.T) {
	got := Analyze(context.Background(), Disabled{}, Input{})
	assert.Equal(t, DisabledMessage, got)
}

func TestBuildPrompt(t *testing.T) {
	stub := &stubProvider{response: "ok"}
	Analyze(context.Background(), stub, Input{
		ResumeText:     "Python developer",
		JobDescription: "Need Python and SQL",
		Score:          50,
		Matched:        []string{"python"},
		Missing:        []string{"sql"},
	})

	assert.Contains(t, stub.prompt, "Need Python and SQL")
	assert.Contains(t, stub.prompt, "Python developer")
	assert.Contains(t, stub.prompt, "ATS Score: 50%")
	assert.Contains(t, stub.prompt, "Matched Skills: python")
	assert.Contains(t, stub.prompt, "Missing Skills: sql")
	assert.Contains(t, stub.prompt, "60-day improvement plan")
}

func TestBuildPrompt_EmptySkillListsShowNone(t *testing.T) {
	prompt := BuildPrompt(Input{Score: 0})
	assert.Contains(t, prompt, "Matched Skills: None")
	assert.Contains(t, prompt, "Missing Skills: None")
}

func TestBuildPrompt_TruncatesLongInputs(t *testing.T) {
	long := strings.Repeat("x", excerptChars*2)
	prompt := BuildPrompt(Input{ResumeText: long, JobDescription: long})
	assert.NotContains(t, prompt, strings.Repeat("x", excerptChars+1))
}

package critique

import (
	"context"
	"fmt"
	"strings"
)

// Analyze asks the provider for a critique of the scored resume. Provider
// failures are folded into the returned text so a broken or slow LLM can
// never fail the request that carries the score.
func Analyze(ctx context.Context, p Provider, in Input) string {
	out, err := p.Complete(ctx, BuildPrompt(in))
	if err != nil {
		return fmt.Sprintf("AI error: %v", err)
	}
	return strings.TrimSpace(out)
}

package review

import (
	"fmt"
	"strings"

	"github.com/pm-runner/pmrunner/pkg/models"
)

// BuildModificationPrompt constructs the next executor input after a
// REJECT: every failing gate with its reason, the concrete remediation
// each one demands, then the original request in full.
func BuildModificationPrompt(original string, failed []models.GateResult) string {
	var b strings.Builder
	b.WriteString("Your previous attempt failed quality review. Fix every issue below and redo the task completely.\n")
	b.WriteString("\nFailed checks:\n")
	for _, g := range failed {
		fmt.Fprintf(&b, "- %s: %s\n", g.Gate, g.Reason)
	}
	b.WriteString("\nRequired fixes:\n")
	for _, g := range failed {
		fmt.Fprintf(&b, "- %s\n", gateDemand(g.Gate))
	}
	b.WriteString("\nOriginal request:\n")
	b.WriteString(original)
	return b.String()
}

// gateDemand states the remediation a failing gate requires.
func gateDemand(id models.GateID) string {
	switch id {
	case models.GateFilesVerified:
		return "Modify the required files and report each path you touched; every reported path must exist."
	case models.GateNoTodo:
		return "Remove every TODO, FIXME, and TBD marker by implementing the remaining work."
	case models.GateNoOmission:
		return "Write complete file contents; never elide code with omission markers."
	case models.GateSyntaxComplete:
		return "Emit complete output: balance braces, brackets, and parentheses, and close every code fence."
	case models.GateEvidencePresent:
		return "Back the work with evidence: modify files and report them as verified."
	case models.GateNoEarlyTermination:
		return "Do not claim completion until the work is done and verifiable."
	default:
		return "Resolve the reported issue."
	}
}

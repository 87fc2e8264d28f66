package errors

import (
	"fmt"
	"strings"
)

// FormatForCLI formats an error for terminal display: message, suggestion
// when present, and the code for reference.
func FormatForCLI(err error) string {
	if err == nil {
		return ""
	}

	qe, ok := err.(*QueryError)
	if !ok {
		qe = Wrap(ErrCodeInternal, err)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Error: %s\n", qe.Message))
	if qe.Suggestion != "" {
		sb.WriteString(fmt.Sprintf("Suggestion: %s\n", qe.Suggestion))
	}
	sb.WriteString(fmt.Sprintf("[%s]", qe.Code))
	return sb.String()
}

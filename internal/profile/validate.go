package profile

import (
	"fmt"
	"regexp"
	"strings"

	"profiled/pkg/httperr"
)

const (
	NameMaxLength  = 100
	EmailMaxLength = 254
)

// emailPattern is a deliberately simple shape check (local part, "@", domain
// containing a dot). It is an externally observable contract for existing
// clients; do not swap it for a stricter RFC grammar.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Submission is the caller-supplied profile write payload.
type Submission struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Validate checks the submission rules in order and reports only the first
// violation. On success it returns the trimmed values ready for the write.
func (s Submission) Validate() (Submission, error) {
	name := strings.TrimSpace(s.Name)
	if name == "" {
		return Submission{}, httperr.New(httperr.CodeInvalidInput, "Name must be a non-empty string")
	}
	if len([]rune(name)) > NameMaxLength {
		return Submission{}, httperr.New(httperr.CodeInvalidInput,
			fmt.Sprintf("Name must not exceed %d characters", NameMaxLength))
	}

	email := strings.TrimSpace(s.Email)
	if email == "" || !emailPattern.MatchString(email) {
		return Submission{}, httperr.New(httperr.CodeInvalidInput, "Email must be a valid email address")
	}
	if len(email) > EmailMaxLength {
		return Submission{}, httperr.New(httperr.CodeInvalidInput,
			fmt.Sprintf("Email must not exceed %d characters", EmailMaxLength))
	}

	return Submission{Name: name, Email: email}, nil
}

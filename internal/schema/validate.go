package schema

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Issue describes one failed validation rule on a single field.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Result is the uniform outcome of validating a typed extraction against
// its struct tags (spec.md §4.5).
type Result struct {
	OK     bool    `json:"ok"`
	Issues []Issue `json:"issues,omitempty"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate runs struct-tag validation over v (a *model.Check or
// *model.Receipt) and reports every failing field, not just the first.
func Validate(v any) Result {
	err := validate.Struct(v)
	if err == nil {
		return Result{OK: true}
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Result{OK: false, Issues: []Issue{{Path: "", Message: err.Error()}}}
	}

	issues := make([]Issue, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, Issue{
			Path:    fe.Namespace(),
			Message: fmt.Sprintf("failed rule %q", fe.Tag()),
		})
	}
	return Result{OK: false, Issues: issues}
}

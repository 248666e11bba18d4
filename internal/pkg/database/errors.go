package database

import (
	"errors"

	"github.com/lib/pq"
)

const (
	codeUniqueViolation     = "23505"
	codeExclusionViolation  = "23P01"
	codeForeignKeyViolation = "23503"
)

func pqCode(err error) (string, string) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), pqErr.Constraint
	}
	return "", ""
}

// IsUniqueViolation reports a unique constraint failure, optionally for a named constraint.
func IsUniqueViolation(err error, constraint ...string) bool {
	return matches(err, codeUniqueViolation, constraint)
}

func IsExclusionViolation(err error, constraint ...string) bool {
	return matches(err, codeExclusionViolation, constraint)
}

func IsForeignKeyViolation(err error, constraint ...string) bool {
	return matches(err, codeForeignKeyViolation, constraint)
}

func matches(err error, code string, constraint []string) bool {
	got, name := pqCode(err)
	if got != code {
		return false
	}
	if len(constraint) == 0 {
		return true
	}
	for _, c := range constraint {
		if c == name {
			return true
		}
	}
	return false
}

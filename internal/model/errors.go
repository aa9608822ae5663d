package model

import "fmt"

// ConfigError reports a malformed case: an argument concluding one of its
// own premises, a duplicate argument identifier, or a reference to an
// undeclared statement. It is raised while building a case, never during
// evaluation.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "configuration: " + e.Reason
}

// Configf builds a ConfigError from a format string.
func Configf(format string, args ...any) *ConfigError {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}

// UnknownStandardError reports a proof-standard name outside the four
// recognized values. It surfaces when a standard assignment is consulted and
// aborts only the evaluation of the implicated statement.
type UnknownStandardError struct {
	Name string
}

func (e *UnknownStandardError) Error() string {
	return fmt.Sprintf("unknown proof standard %q", e.Name)
}

package domain

import (
	"strings"
	"time"
)

// Command is a fully constructed subprocess invocation. Construction is
// pure; all failure is deferred to execution.
type Command struct {
	Argv []string
	Dir  string
	Env  map[string]string
}

// String renders the argument vector for logs and telemetry.
func (c Command) String() string {
	return strings.Join(c.Argv, " ")
}

// InvocationRecord is one entry of the driver's append-only invocation
// log: the command vector plus captured output and the exit verdict.
type InvocationRecord struct {
	Argv    []string
	Stdout  string
	Stderr  string
	Success bool
}

// StepInfo records the input hash of a completed step, keyed by its
// resolved output path. Used only by the content-hash staleness mode.
type StepInfo struct {
	Output    string    `json:"output,omitzero"`
	InputHash string    `json:"input_hash,omitzero"`
	Timestamp time.Time `json:"timestamp,omitzero"`
}

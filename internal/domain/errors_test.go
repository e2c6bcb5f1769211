package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "elmdecode.dev/pkg/elmdecode/internal/model"
)

func TestOutcomeError_Error(t *testing.T) {
	tests := []struct {
		name   string
		result m.ExecutionResult
		want   string
	}{
		{name: "decode", result: m.ErrorResult(m.FailureDecode, "Expecting an INT"), want: "Expecting an INT"},
		{name: "runtime", result: m.ErrorResult(m.FailureRuntime, "Runtime error: boom"), want: "Runtime error: boom"},
		{name: "input", result: m.ErrorResult(m.FailureInput, "JSON syntax error: bad"), want: "JSON syntax error: bad"},
		{name: "compilation", result: m.ErrorResult(m.FailureCompilation, "-- ERROR --"), want: "Elm compilation failed: -- ERROR --"},
		{name: "timeout", result: m.ErrorResult(m.FailureTimeout, "execution timed out"), want: "timeout failure: execution timed out"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &OutcomeError{Outcome: m.Outcome{Candidate: "A.decoder", Result: tt.result}}
			assert.Equal(t, tt.want, err.Error())
			assert.Equal(t, tt.result.Failure, err.Kind())
		})
	}
}

func TestCompilationError_Error(t *testing.T) {
	err := &CompilationError{Diagnostics: "-- TYPE MISMATCH --"}
	assert.Equal(t, "Elm compilation failed: -- TYPE MISMATCH --", err.Error())
}

package model

// ResultTag is the tag carried by the host program's outbound message.
type ResultTag string

const (
	// TagSuccess marks a value the decoder accepted.
	TagSuccess ResultTag = "Success"
	// TagError marks any failure rendered as text.
	TagError ResultTag = "Error"
)

// FailureKind distinguishes why a run did not succeed.
type FailureKind int

const (
	// FailureNone means the decoder succeeded.
	FailureNone FailureKind = iota
	// FailureDecode means the decoder rejected the input.
	FailureDecode
	// FailureCompilation means the compiler rejected the host program.
	FailureCompilation
	// FailureRuntime means the isolated program threw.
	FailureRuntime
	// FailureInput means the input was not valid JSON.
	FailureInput
	// FailureTimeout means the run exceeded its deadline.
	FailureTimeout
	// FailureTargetNotFound means the module could not be resolved to a file.
	FailureTargetNotFound
	// FailurePatch means the module could not be made visible, for example
	// because a backup from an earlier run is still in place.
	FailurePatch
)

func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureDecode:
		return "decode"
	case FailureCompilation:
		return "compilation"
	case FailureRuntime:
		return "runtime"
	case FailureInput:
		return "input"
	case FailureTimeout:
		return "timeout"
	case FailureTargetNotFound:
		return "target not found"
	case FailurePatch:
		return "module patch"
	default:
		return "unknown"
	}
}

// ExecutionResult is the unit exchanged across the isolated execution
// boundary.
type ExecutionResult struct {
	Tag     ResultTag
	Value   string
	Failure FailureKind
}

// Succeeded reports whether the result carries a decoded value.
func (r ExecutionResult) Succeeded() bool {
	return r.Tag == TagSuccess
}

// SuccessResult builds a successful result.
func SuccessResult(value string) ExecutionResult {
	return ExecutionResult{Tag: TagSuccess, Value: value, Failure: FailureNone}
}

// ErrorResult builds a failed result of the given kind.
func ErrorResult(kind FailureKind, value string) ExecutionResult {
	return ExecutionResult{Tag: TagError, Value: value, Failure: kind}
}

// Outcome pairs a candidate with the result of running it.
type Outcome struct {
	Candidate Candidate
	Result    ExecutionResult
}

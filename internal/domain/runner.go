package domain

// ExecutionUnit is one test case execution inside a batch request. All
// payload fields are transport-encoded (base64) so binary inputs survive
// the wire.
type ExecutionUnit struct {
	LanguageID     int
	SourceCode     string
	Stdin          string
	ExpectedOutput string
}

// BatchRequest is an ordered batch of executions for the runner. Unit order
// matches test case order and is the join key for the returned handles.
type BatchRequest struct {
	Units []ExecutionUnit
}

// RawResult is the runner's current view of one execution, already
// transport-decoded. StatusID is the runner's own status code; unknown
// codes are tolerated downstream.
type RawResult struct {
	StatusID      int
	Stdout        *string
	Stderr        *string
	CompileOutput *string
	Time          *string
	Memory        *int
}

package errs

import "errors"

var (
	NotFound            = errors.New("not found")
	UnsupportedLanguage = errors.New("language is not supported")
	NoTestCases         = errors.New("problem has no test cases")
	RunnerUnavailable   = errors.New("code runner is unavailable")
	ContestNotOpen      = errors.New("contest is not open")
	NotRegistered       = errors.New("you are not registered for this contest")
	ProblemNotInContest = errors.New("problem is not part of this contest")
	Validation          = errors.New("invalid request")
)

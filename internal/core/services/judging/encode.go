package judging

import (
	"encoding/base64"

	"gitlab.com/algoarena.net/internal/domain"
)

// buildBatch produces one execution unit per test case, in test case order.
// Unit order is the join key between test cases and the handles the runner
// returns, so it must never be permuted here.
func buildBatch(code string, languageID int, testCases []*domain.TestCase) domain.BatchRequest {
	encodedCode := base64.StdEncoding.EncodeToString([]byte(code))

	units := make([]domain.ExecutionUnit, len(testCases))
	for i, tc := range testCases {
		units[i] = domain.ExecutionUnit{
			LanguageID:     languageID,
			SourceCode:     encodedCode,
			Stdin:          base64.StdEncoding.EncodeToString([]byte(tc.Input)),
			ExpectedOutput: base64.StdEncoding.EncodeToString([]byte(tc.ExpectedOutput)),
		}
	}

	return domain.BatchRequest{Units: units}
}

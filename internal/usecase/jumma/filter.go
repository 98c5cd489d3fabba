package jumma

import (
	"strings"

	"gatepass-backend/internal/domain/applicant"
)

// EligibilityFilter selects the batch-issuance population: gender is a
// case-sensitive match against the configured literal, religion must
// contain one of the configured terms (case-insensitive).
type EligibilityFilter struct {
	Gender        string
	ReligionTerms []string
}

// DefaultFilter mirrors the Friday-prayer population: male students
// whose religion reads "Muslim" or "Islam" in any casing.
func DefaultFilter() EligibilityFilter {
	return EligibilityFilter{Gender: "Male", ReligionTerms: []string{"muslim", "islam"}}
}

func (f EligibilityFilter) Matches(s *applicant.Student) bool {
	if s.Gender != f.Gender {
		return false
	}
	religion := strings.ToLower(s.Religion)
	for _, term := range f.ReligionTerms {
		if strings.Contains(religion, strings.ToLower(term)) {
			return true
		}
	}
	return false
}

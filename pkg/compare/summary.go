package compare

// Summary tallies comparison rows by status.
// Total always equals Matches+Differs+OnlyInA+OnlyInB.
type Summary struct {
	Total   int `json:"total"`
	Matches int `json:"matches"`
	Differs int `json:"differs"`
	OnlyInA int `json:"only_in_a"`
	OnlyInB int `json:"only_in_b"`
}

// Summarize counts rows per classification in a single pass.
func Summarize(rows []Row) Summary {
	s := Summary{Total: len(rows)}
	for _, row := range rows {
		switch row.Status {
		case StatusMatch:
			s.Matches++
		case StatusDiffer:
			s.Differs++
		case StatusOnlyInA:
			s.OnlyInA++
		case StatusOnlyInB:
			s.OnlyInB++
		}
	}
	return s
}

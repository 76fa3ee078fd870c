package match

// Match is one ranked entry from the correlation collaborator. Candidates the
// collaborator did not rank simply have no entry; absence means "no match
// data", not an error.
type Match struct {
	ID         string  `json:"id"`
	MatchScore float64 `json:"matchScore"`
	Reason     string  `json:"reason"`
}

// candidateSummary is the slice of a candidate profile handed to the
// collaborator; credential fields never cross this boundary.
type candidateSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Domain     string `json:"domain"`
	Skills     string `json:"skills"`
	Experience string `json:"experience"`
}

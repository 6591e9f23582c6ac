package stateminimizer

// Report A serializable summary of a Result.
type Report struct {
	Alphabet   []string          `json:"alphabet"`
	States     []State           `json:"states"`
	Initial    int               `json:"initial"`
	Finals     []int             `json:"finals"`
	Signatures []SignatureReport `json:"signatures"`
	Red        []Pair            `json:"red"`
	Blue       []Pair            `json:"blue"`
	Marked     []Pair            `json:"marked"`
	Groups     [][]string        `json:"groups"`
}

type SignatureReport struct {
	ID     int    `json:"id"`
	Final  bool   `json:"final"`
	Key    string `json:"key"`
	States []int  `json:"states"`
}

// NewReport Summarizes res.
func NewReport(res *Result) Report {
	dfa := res.Automaton()
	report := Report{
		Alphabet: dfa.Alphabet(),
		States:   dfa.States(),
		Initial:  InitialStateID,
		Finals:   dfa.FinalIDs(),
		Red:      res.RedPairs(),
		Blue:     res.BluePairs(),
		Marked:   res.MarkedPairs(),
	}
	for _, g := range res.Signatures().Groups() {
		report.Signatures = append(report.Signatures, SignatureReport{
			ID:     g.ID,
			Final:  g.Final,
			Key:    g.Key,
			States: g.States,
		})
	}
	for _, g := range res.Groups() {
		report.Groups = append(report.Groups, g.Names())
	}
	return report
}

package api

type ReadinessFactor struct {
	Name   string `json:"name"`
	Score  int    `json:"score"`
	Status string `json:"status"`
}

type FundingReadiness struct {
	Company        string            `json:"company_id"`
	Score          int               `json:"score"`
	Factors        []ReadinessFactor `json:"factors"`
	Recommendation string            `json:"recommendation"`
}

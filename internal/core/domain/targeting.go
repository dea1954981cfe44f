package domain

// Targeting describes who should see a campaign
type Targeting struct {
	AgeRange  string   `json:"age"`
	Location  string   `json:"location"`
	Interests []string `json:"interests"`
}

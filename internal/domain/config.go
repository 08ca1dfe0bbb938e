package domain

// FinishNone is the zero-cost default finish.
const FinishNone = "None"

// PrintConfig is the set of print options a customer selects for one
// product. It is mutable while configuring and copied by value into a
// cart item, which freezes it.
type PrintConfig struct {
	PaperType string `json:"paper_type"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
	Finish    string `json:"finish"`
}

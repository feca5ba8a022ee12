package domain

// Result holds the outcome of a proximity check.
type Result struct {
	Name      string                 `json:"name"`
	Close     bool                   `json:"close"`
	Threshold float64                `json:"threshold"`
	Count     int                    `json:"count"`
	Compared  bool                   `json:"compared"`
	MinGap    float64                `json:"min_gap"`
	Lower     float64                `json:"lower"`
	Upper     float64                `json:"upper"`
	Details   map[string]interface{} `json:"details,omitempty"`
}

package domain

// PeriodCount is one point of the registration trend.
type PeriodCount struct {
	Month string `json:"month"`
	Users int    `json:"users"`
}

// RegionCount is one bar of the region breakdown.
type RegionCount struct {
	Region string `json:"region"`
	Count  int    `json:"count"`
}

// ActivitySplit is the two-way active/inactive aggregate.
type ActivitySplit struct {
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

// Analytics is a snapshot of the three dashboard aggregates. It is replaced
// wholesale on every successful fetch.
type Analytics struct {
	RegistrationTrend []PeriodCount `json:"registrationTrend"`
	UsersByRegion     []RegionCount `json:"usersByRegion"`
	ActiveVsInactive  ActivitySplit `json:"activeVsInactive"`
}

// Clone returns a deep copy of a.
func (a Analytics) Clone() Analytics {
	out := Analytics{ActiveVsInactive: a.ActiveVsInactive}
	if a.RegistrationTrend != nil {
		out.RegistrationTrend = append([]PeriodCount(nil), a.RegistrationTrend...)
	}
	if a.UsersByRegion != nil {
		out.UsersByRegion = append([]RegionCount(nil), a.UsersByRegion...)
	}
	return out
}

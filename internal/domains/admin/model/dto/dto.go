package dto

// StatsResponse aggregates the dashboard counters.
type StatsResponse struct {
	Tours        int     `json:"tours"`
	Events       int     `json:"events"`
	Bookings     int     `json:"bookings"`
	Profiles     int     `json:"profiles"`
	TotalRevenue float64 `json:"total_revenue"`
}

type TableStat struct {
	Table   string `json:"table"`
	Count   int    `json:"count"`
	HasData bool   `json:"has_data"`
}

type DatabaseStatsResponse struct {
	Healthy bool        `json:"healthy"`
	Tables  []TableStat `json:"tables"`
}

type VerifySampleDataResponse struct {
	Tables   []TableStat `json:"tables"`
	Complete bool        `json:"complete"`
}

package report

import "time"

// Status describes whether a resort's lifts or trails are running.
type Status string

const (
	StatusOpen    Status = "Open"
	StatusClosed  Status = "Closed"
	StatusUnknown Status = "Unknown"
)

// OverviewRecord holds the snow and lift data for one resort row on a country
// overview page. Optional fields use pointers so that "no measurement" is
// distinguishable from a legitimate zero and omitted from JSON output.
type OverviewRecord struct {
	SnowValleyCm    *float64 `json:"snow_valley_cm,omitempty"`
	SnowMountainCm  *float64 `json:"snow_mountain_cm,omitempty"`
	NewSnowCm       *float64 `json:"new_snow_cm,omitempty"`
	LiftsOpenCount  *int     `json:"lifts_open_count,omitempty"`
	LiftsTotalCount *int     `json:"lifts_total_count,omitempty"`
	Status          Status   `json:"status,omitempty"`
	LastUpdate      string   `json:"last_update,omitempty"`
}

// CrossCountryReport holds the trail report parsed from a single resort's
// cross-country detail page. A zero LastUpdate means the report time could
// not be determined.
type CrossCountryReport struct {
	ResortName          string    `json:"resort_name"`
	ClassicalDistanceKm *float64  `json:"classical_distance_km,omitempty"`
	ClassicalCondition  string    `json:"classical_condition,omitempty"`
	SkatingDistanceKm   *float64  `json:"skating_distance_km,omitempty"`
	SkatingCondition    string    `json:"skating_condition,omitempty"`
	OperationStatus     string    `json:"operation_status,omitempty"`
	Status              Status    `json:"status"`
	LastUpdate          time.Time `json:"last_update,omitzero"`
}

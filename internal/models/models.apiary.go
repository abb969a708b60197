// FilePath: internal/models/models.apiary.go
package models

// Source tags where an entity came from when demo data and locally
// created records are merged into one fleet.
type Source string

const (
	SourceDemo  Source = "demo"
	SourceLocal Source = "local"
	SourceMixed Source = "mixed"
)

// ApiaryStatus is the three-tier health classification shared by
// apiaries and hives.
type ApiaryStatus string

const (
	StatusHealthy   ApiaryStatus = "healthy"
	StatusAttention ApiaryStatus = "attention"
	StatusCritical  ApiaryStatus = "critical"
)

// Rank orders statuses for classification: critical > attention > healthy.
// Unknown values rank below healthy.
func (s ApiaryStatus) Rank() int {
	switch s {
	case StatusCritical:
		return 3
	case StatusAttention:
		return 2
	case StatusHealthy:
		return 1
	default:
		return 0
	}
}

// Management is the apiary management style.
type Management string

const (
	ManagementIntegrated   Management = "integrated"
	ManagementConventional Management = "conventional"
	ManagementOrganic      Management = "organic"
)

type Apiary struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Location  string       `json:"location,omitempty"`
	Latitude  *float64     `json:"lat,omitempty"`
	Longitude *float64     `json:"lng,omitempty"`
	Elevation *float64     `json:"elevation,omitempty"`
	Mgmt      Management   `json:"mgmt,omitempty"`
	Notes     string       `json:"notes,omitempty"`
	Status    ApiaryStatus `json:"status,omitempty"`
	ImageURL  string       `json:"imageUrl,omitempty"`
	Source    Source       `json:"source"`
}

// ActiveApiary is the small record persisted under hr.apiary marking the
// apiary new hives get attached to by default.
type ActiveApiary struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Location  string   `json:"location,omitempty"`
	Latitude  *float64 `json:"lat,omitempty"`
	Longitude *float64 `json:"lng,omitempty"`
}

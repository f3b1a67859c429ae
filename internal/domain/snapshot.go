package domain

type EntityKind string

const (
	EntityUser  EntityKind = "user"
	EntityRound EntityKind = "round"
	EntityOrder EntityKind = "order"
)

type EntityRef struct {
	Kind EntityKind
	ID   string
}

// Snapshot is a read-only view of a contended row: current value plus the
// version a caller would CAS against. Used for observability and tests.
type Snapshot struct {
	Kind        EntityKind
	ID          string
	Version     int64
	Balance     float64
	SoldShares  int64
	TotalShares int64
	Status      string
}

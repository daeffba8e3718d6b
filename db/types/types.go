package types

// Migration is a single schema change, written as one embedded SQL file with the
// down statements first and the up statements after the "-- +migrate Up" marker.
type Migration struct {
	ID     string
	SQL    string
	Prefix string
}

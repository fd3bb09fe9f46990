package models

// Park describes one amusement park in the fixed catalog served by the
// public /parks endpoint. The catalog is static application data, not a
// table-store entity.
type Park struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

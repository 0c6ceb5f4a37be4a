package models

type Waiting struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Table_size int    `json:"tableSize"`
	Timestamp  string `json:"timestamp"`
	Consent    bool   `json:"consent"`
}

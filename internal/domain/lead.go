package domain

// NoDescription is the placeholder used when a source yields no snippet text.
const NoDescription = "No description available"

// Lead is a normalized candidate business record. Name and URL are always
// non-empty; records missing either are dropped before they reach the pipeline.
type Lead struct {
	Name        string `json:"name"`
	URL         string `json:"url"` // dedup key
	Description string `json:"description"`
	Contact     string `json:"contact,omitempty"` // email or phone, first match in Description
	Source      string `json:"source"`            // adapter that produced the record
	Synthetic   bool   `json:"synthetic"`
}

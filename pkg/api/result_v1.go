// pkg/api/result_v1.go
package api

// ResultV1 is the stable JSON schema for cipher runs.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ResultV1 struct {
	Ciphertext    string   `json:"ciphertext"`
	FinalPosition string   `json:"final_position"`
	Reflector     string   `json:"reflector"`
	Rotors        []string `json:"rotors"` // left to right
	Rings         []int    `json:"rings"`
	Position      string   `json:"position"` // ground setting the run started from
	Plugboard     []string `json:"plugboard,omitempty"`
}

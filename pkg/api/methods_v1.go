// pkg/api/methods_v1.go
package api

// MethodV1 is the stable JSON schema for a catalog listing entry.
type MethodV1 struct {
	Name      string         `json:"name"`
	Bells     int            `json:"bells"`
	Coverable bool           `json:"coverable,omitempty"`
	Source    string         `json:"source"`
	Extents   []ExtentInfoV1 `json:"extents"`
}

// ExtentInfoV1 describes one extent a method offers, before expansion.
type ExtentInfoV1 struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Length     int    `json:"length"`
	Definition string `json:"definition"`
	Mutable    bool   `json:"mutable,omitempty"`
}

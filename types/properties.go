package types

// ServerProperty is a server-wide configuration key/value pair as returned
// by the serverproperties endpoint.
type ServerProperty struct {
	Name         string `json:"name"`
	Value        string `json:"value"`
	DisplayName  string `json:"displayName"`
	DefaultValue string `json:"defaultValue"`
}

// ClientProperty is a per-client-agent configuration key/value pair.
type ClientProperty struct {
	DisplayName string `json:"displayName"`
	Key         string `json:"key"`
	Value       string `json:"value"`
}

package types

// Session is the authenticated API session for a single backup run. It is
// created once by xenmobile.Authenticate and never mutated afterwards.
type Session struct {
	Host      string
	Port      int
	AuthToken string
}

package types

import "time"

// ReportDocument is the assembled backup, handed to the renderer.
type ReportDocument struct {
	BackupID         string
	GeneratedAt      time.Time
	ServerHost       string
	ServerProperties []ServerProperty
	ClientProperties []ClientProperty
	Applications     []Application
}

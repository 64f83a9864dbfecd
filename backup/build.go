package backup

import (
	"time"

	"github.com/xenbackup/xenbackup/types"
)

// BuildReport assembles the three top-level sections into one report
// document. Pure data assembly: no network, no I/O, deterministic for
// fixed inputs. Absent optional fields stay absent; the renderer decides
// their presentation.
func BuildReport(host, backupID string, generatedAt time.Time, serverProperties []types.ServerProperty, clientProperties []types.ClientProperty, applications []types.Application) *types.ReportDocument {
	return &types.ReportDocument{
		BackupID:         backupID,
		GeneratedAt:      generatedAt,
		ServerHost:       host,
		ServerProperties: serverProperties,
		ClientProperties: clientProperties,
		Applications:     applications,
	}
}

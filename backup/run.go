package backup

import (
	"time"

	"github.com/google/uuid"

	"github.com/xenbackup/xenbackup/prometheus"
	"github.com/xenbackup/xenbackup/types"
	"github.com/xenbackup/xenbackup/xenmobile"
)

// Fetcher is the XenMobile client surface the pipeline consumes.
type Fetcher interface {
	GetServerProperties() ([]types.ServerProperty, error)
	GetClientProperties() ([]types.ClientProperty, error)
	FilterApplications() ([]types.ApplicationSummary, error)
	DetailFetcher
}

// Run executes the full backup pipeline against an authenticated session:
// server properties, client properties and the application list in turn
// (each fatal on failure), then the per-application aggregation, then the
// report assembly.
func Run(session *types.Session) (*types.ReportDocument, error) {
	return run(xenmobile.NewClient(session), session.Host)
}

func run(client Fetcher, host string) (*types.ReportDocument, error) {
	started := time.Now()

	prometheus.FetchRequests.WithLabelValues(xenmobile.ResourceServerProperties).Inc()
	serverProperties, err := client.GetServerProperties()
	if err != nil {
		prometheus.FetchFailures.WithLabelValues(xenmobile.ResourceServerProperties).Inc()
		return nil, err
	}
	InfoLogger(LogHolder{
		Resource: xenmobile.ResourceServerProperties,
		Message:  "fetched server properties",
	})

	prometheus.FetchRequests.WithLabelValues(xenmobile.ResourceClientProperties).Inc()
	clientProperties, err := client.GetClientProperties()
	if err != nil {
		prometheus.FetchFailures.WithLabelValues(xenmobile.ResourceClientProperties).Inc()
		return nil, err
	}
	InfoLogger(LogHolder{
		Resource: xenmobile.ResourceClientProperties,
		Message:  "fetched client properties",
	})

	prometheus.FetchRequests.WithLabelValues(xenmobile.ResourceApplications).Inc()
	summaries, err := client.FilterApplications()
	if err != nil {
		prometheus.FetchFailures.WithLabelValues(xenmobile.ResourceApplications).Inc()
		return nil, err
	}
	InfoLogger(LogHolder{
		Resource: xenmobile.ResourceApplications,
		Message:  "fetched application list",
	})

	applications := Aggregate(client, summaries)

	doc := BuildReport(host, uuid.NewString(), time.Now().UTC(), serverProperties, clientProperties, applications)

	prometheus.BackupDuration.Observe(time.Since(started).Seconds())
	prometheus.LastBackup.SetToCurrentTime()

	return doc, nil
}

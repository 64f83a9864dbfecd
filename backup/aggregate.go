package backup

import (
	"strconv"

	"github.com/xenbackup/xenbackup/prometheus"
	"github.com/xenbackup/xenbackup/types"
)

// DetailFetcher is the part of the XenMobile client the aggregator needs.
type DetailFetcher interface {
	GetApplication(classification types.Classification, id int) (*types.ApplicationDetail, error)
}

// Aggregate classifies each listed application and, for managed (mobile)
// types, fetches the detail container and merges it into the record. A
// failed detail fetch keeps the summary-only record and moves on to the
// next application. Output order matches input order regardless of
// per-application outcomes.
func Aggregate(client DetailFetcher, summaries []types.ApplicationSummary) []types.Application {
	apps := make([]types.Application, 0, len(summaries))

	for _, summary := range summaries {
		app := types.Application{ApplicationSummary: summary}

		classification := types.Classify(summary.AppType)
		if classification.HasDetail() {
			prometheus.FetchRequests.WithLabelValues("application").Inc()
			detail, err := client.GetApplication(classification, summary.ID)
			if err != nil {
				prometheus.FetchFailures.WithLabelValues("application").Inc()
				ErrorLogger(LogHolder{
					AppID:   strconv.Itoa(summary.ID),
					AppName: summary.Name,
					AppType: summary.AppType,
					Message: err.Error(),
				})
			} else {
				app.Detail = detail
				checkPlatforms(app)
			}
		}

		apps = append(apps, app)
	}

	return apps
}

// checkPlatforms logs unconfigured platforms of a managed application and
// sanity checks the configured ones. Both platforms are independently
// optional; the renderer shows an explicit marker for absent ones.
func checkPlatforms(app types.Application) {
	platforms := []struct {
		name string
		cfg  *types.PlatformConfig
	}{
		{"ios", app.Detail.IOS},
		{"android", app.Detail.Android},
	}

	for _, platform := range platforms {
		if platform.cfg == nil {
			InfoLogger(LogHolder{
				AppID:    strconv.Itoa(app.ID),
				AppName:  app.Name,
				Platform: platform.name,
				Message:  "platform not configured",
			})
			continue
		}
		checkOSRange(app.Name, platform.name, platform.cfg)
	}
}

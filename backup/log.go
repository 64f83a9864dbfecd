package backup

import (
	log "github.com/sirupsen/logrus"
)

type LogHolder struct {
	AppID    string
	AppName  string
	AppType  string
	Platform string
	Resource string
	Message  string
	Metric   string
}

func processFields(logholder LogHolder) *log.Entry {
	logger := log.WithFields(log.Fields{})
	if logholder.AppID != "" {
		logger = logger.WithFields(
			log.Fields{
				"app_id": logholder.AppID,
			})
	}

	if logholder.AppName != "" {
		logger = logger.WithFields(
			log.Fields{
				"app_name": logholder.AppName,
			})
	}

	if logholder.AppType != "" {
		logger = logger.WithFields(
			log.Fields{
				"app_type": logholder.AppType,
			})
	}

	if logholder.Platform != "" {
		logger = logger.WithFields(
			log.Fields{
				"platform": logholder.Platform,
			})
	}

	if logholder.Resource != "" {
		logger = logger.WithFields(
			log.Fields{
				"resource": logholder.Resource,
			})
	}

	if logholder.Metric != "" {
		logger = logger.WithFields(
			log.Fields{
				"metric": logholder.Metric,
			})
	}

	return logger
}

func DebugLogger(logholder LogHolder) {
	logger := processFields(logholder)
	logger.Debug(logholder.Message)
}

func InfoLogger(logholder LogHolder) {
	logger := processFields(logholder)
	logger.Info(logholder.Message)
}

func WarnLogger(logholder LogHolder) {
	logger := processFields(logholder)

	logger.Warn(logholder.Message)
}

func ErrorLogger(logholder LogHolder) {
	logger := processFields(logholder)

	logger.Error(logholder.Message)
}

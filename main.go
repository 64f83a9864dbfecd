package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/micromdm/go4/env"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/xenbackup/xenbackup/backup"
	"github.com/xenbackup/xenbackup/prometheus"
	"github.com/xenbackup/xenbackup/report"
	"github.com/xenbackup/xenbackup/settings"
	"github.com/xenbackup/xenbackup/xenmobile"
)

// DefaultAPIPort is the XenMobile REST API port
const DefaultAPIPort = 4443

func main() {
	var host string
	var port int
	var username string
	var password string
	var output string
	var loglevel string
	var interval time.Duration
	var metricsPort string

	defaults := settings.LoadSettings()
	if defaults.Port == 0 {
		defaults.Port = DefaultAPIPort
	}

	flag.StringVar(&host, "host", defaults.Host, "XenMobile server hostname")
	flag.IntVar(&port, "port", defaults.Port, "XenMobile REST API port")
	flag.StringVar(&username, "username", defaults.Username, "XenMobile administrator username")
	flag.StringVar(&password, "password", "", "XenMobile administrator password. Prompted for when omitted.")
	flag.StringVar(&output, "output", defaults.Output, "Path for the HTML report. Defaults to <host>-<timestamp>.html.")
	flag.StringVar(&loglevel, "loglevel", "warn", "Log level (debug, info, warn or error)")
	flag.DurationVar(&interval, "interval", 0, "Re-run the backup on this interval. 0 runs once and exits.")
	flag.StringVar(&metricsPort, "metrics-port", "8000", "Port for /metrics and /healthcheck in interval mode")

	flag.Parse()

	if err := setLogLevel(loglevel); err != nil {
		log.Fatalf("Unable to parse the log level - %s \n", err)
	}

	if host == "" {
		log.Fatal("XenMobile server hostname missing. Exiting.")
	}

	if username == "" {
		log.Fatal("XenMobile username missing. Exiting.")
	}

	if password == "" {
		password = env.String("XENMOBILE_PASSWORD", "")
	}
	if password == "" {
		var err error
		password, err = promptPassword(username)
		if err != nil {
			log.Fatal(err)
		}
	}

	if interval == 0 {
		if err := runBackup(host, port, username, password, output); err != nil {
			log.Fatal(err)
		}
		return
	}

	r := mux.NewRouter()
	r.HandleFunc("/healthcheck", backup.HealthCheck).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	http.Handle("/", r)

	prometheus.Metrics()

	fmt.Println("xenbackup is running, hold onto your butts...")

	go func() {
		if err := runBackup(host, port, username, password, output); err != nil {
			log.Print(err)
		}
		for range time.Tick(interval) {
			if err := runBackup(host, port, username, password, output); err != nil {
				log.Print(err)
			}
		}
	}()

	log.Print(http.ListenAndServe(":"+metricsPort, nil))
}

func runBackup(host string, port int, username, password, output string) error {
	session, err := xenmobile.Authenticate(host, port, username, password)
	if err != nil {
		return err
	}

	doc, err := backup.Run(session)
	if err != nil {
		return err
	}

	path := output
	if path == "" {
		path = report.Filename(host, doc.GeneratedAt)
	}
	if err := report.Write(doc, path); err != nil {
		return err
	}

	fmt.Printf("Report written to %s\n", path)
	return nil
}

// setLogLevel aligns logrus's own filter with the -loglevel flag so the
// structured loggers honor it too, not just the log facade.
func setLogLevel(level string) error {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logrus.SetLevel(parsed)
	return nil
}

func promptPassword(username string) (string, error) {
	fmt.Printf("Password for %s: ", username)
	secret, err := terminal.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(secret), nil
}

package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-remote-url base URL of the remote versioned store bridge
//	-remote-timeout timeout for remote store calls (e.g., "1m")
//	-c/-config json file path with configs
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-worker-count per-type entity processing concurrency
//	-job-retention how long finished job statuses stay pollable
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var remoteURL string
	var remoteTimeout time.Duration
	var jsonConfigPath string
	var requestTimeout time.Duration
	var workerCount int
	var jobRetention time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&remoteURL, "remote-url", "", "Remote versioned store base URL")
	flag.DurationVar(&remoteTimeout, "remote-timeout", 0, "Remote store call timeout (e.g., 1m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.IntVar(&workerCount, "worker-count", 0, "Per-type entity processing concurrency")
	flag.DurationVar(&jobRetention, "job-retention", 0, "Finished job status retention (e.g., 10m)")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Remote: Remote{
			BaseURL: remoteURL,
			Timeout: remoteTimeout,
		},
		Engine: Engine{
			WorkerCount:  workerCount,
			JobRetention: jobRetention,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

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

// ParseFlags parses all configuration flags from the process command line.
// Positional arguments left after the flags stay available via flag.Args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-c/-config json file path with configs
//	-app-name service name attached to log records
//	-app-version version reported by /api/version
//	-log-level minimum log level
//	-log-console-json write console logs as JSON
//	-log-error-file error-only log file
//	-log-combined-file combined log file
//	-u calculator service base URL used by the client
//	-client-timeout client request timeout
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var requestTimeout time.Duration
	var jsonConfigPath string
	var appName, appVersion string
	var logLevel, errorFile, combinedFile string
	var consoleJSON bool
	var adapterAddress string
	var adapterTimeout time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&appName, "app-name", "", "Service name attached to log records")
	flag.StringVar(&appVersion, "app-version", "", "Application version")
	flag.StringVar(&logLevel, "log-level", "", "Minimum log level (debug, info, warn, error)")
	flag.BoolVar(&consoleJSON, "log-console-json", false, "Write console logs as JSON")
	flag.StringVar(&errorFile, "log-error-file", "", "Error-only log file")
	flag.StringVar(&combinedFile, "log-combined-file", "", "Combined log file")
	flag.StringVar(&adapterAddress, "u", "", "Calculator service base URL")
	flag.DurationVar(&adapterTimeout, "client-timeout", 0, "Client request timeout (e.g., 5s)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Name:    appName,
			Version: appVersion,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Logging: Logging{
			Level:        logLevel,
			ConsoleJSON:  consoleJSON,
			ErrorFile:    errorFile,
			CombinedFile: combinedFile,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: adapterTimeout,
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
// An empty host means all interfaces. Any other host must be "localhost" or
// a literal IP address.
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

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

package config

import (
	"errors"
	"flag"
	"net"
	"os"
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

// ParseFlags parses all configuration flags from os.Args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-env-file dotenv file path
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-shutdown-timeout graceful shutdown timeout
//	-cors-origins comma separated allowed origins
//	-rate-limit per-IP requests per -rate-limit-window
//	-gee-url Earth Engine REST base URL
//	-gee-project Earth Engine cloud project
//	-gee-timeout Earth Engine request timeout
//	-gee-credentials service account key file
//	-require-credentials fail at startup without valid credentials
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var jsonConfigPath string
	var envFilePath string
	var requestTimeout, shutdownTimeout time.Duration
	var corsOrigins string
	var rateLimit int
	var rateLimitWindow time.Duration
	var engineURL, engineProject, engineCredentials string
	var engineTimeout time.Duration
	var requireCredentials bool

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&envFilePath, "env-file", "", "Dotenv file path")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")
	fs.StringVar(&corsOrigins, "cors-origins", "", "Comma separated allowed CORS origins")
	fs.IntVar(&rateLimit, "rate-limit", 0, "Per-IP request limit, 0 disables")
	fs.DurationVar(&rateLimitWindow, "rate-limit-window", 0, "Rate limit window")
	fs.StringVar(&engineURL, "gee-url", "", "Earth Engine REST base URL")
	fs.StringVar(&engineProject, "gee-project", "", "Earth Engine cloud project")
	fs.DurationVar(&engineTimeout, "gee-timeout", 0, "Earth Engine request timeout")
	fs.StringVar(&engineCredentials, "gee-credentials", "", "Service account key file")
	fs.BoolVar(&requireCredentials, "require-credentials", false, "Fail at startup without valid credentials")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Server: Server{
			HTTPAddress:        serverAddress.String(),
			RequestTimeout:     requestTimeout,
			ShutdownTimeout:    shutdownTimeout,
			CORSAllowedOrigins: splitList(corsOrigins),
			RateLimitRequests:  rateLimit,
			RateLimitWindow:    rateLimitWindow,
		},
		Engine: Engine{
			BaseURL:            engineURL,
			Project:            engineProject,
			RequestTimeout:     engineTimeout,
			ServiceAccountFile: engineCredentials,
			RequireCredentials: requireCredentials,
		},
		JSONFilePath: jsonConfigPath,
		EnvFilePath:  envFilePath,
	}, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
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
// An empty host means all interfaces. It validates the port range, checks IP
// correctness unless host is "localhost", and returns an error if the format
// or values are invalid.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in 1..65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

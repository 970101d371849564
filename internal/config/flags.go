package config

import (
	"errors"
	"flag"
	"io"
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

// ParseFlags parses configuration flags from args (program name excluded).
// Unknown flags are reported as an error.
//
// Flags:
//
//	-store-uri store URI (postgres://, sqlite://, memory://)
//	-store-timeout store connect timeout (e.g., "10s")
//	-config discovery document file
//	-clients client registrations file
//	-accounts account profiles file
//	-upsert replace existing documents
//	-dry-run validate only, do not write
//	-metrics-push-url prometheus pushgateway url
//	-a discovery server address in format [host]:[port]
//	-request-timeout request timeout (e.g., "5s")
//	-redis-addr redis address for the discovery cache
//	-cache-ttl discovery cache TTL (e.g., "1h")
//	-log-level log level
//	-c/-settings json file path with settings
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var storeURI, configPath, clientsPath, accountsPath string
	var redisAddr, logLevel, jsonConfigPath, pushURL string
	var storeTimeout, requestTimeout, cacheTTL time.Duration
	var upsert, dryRun bool

	fs := flag.NewFlagSet("gnap", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&storeURI, "store-uri", "", "Store URI")
	fs.DurationVar(&storeTimeout, "store-timeout", 0, "Store connect timeout (e.g., 10s)")
	fs.StringVar(&configPath, "config", "", "Discovery document file")
	fs.StringVar(&clientsPath, "clients", "", "Client registrations file")
	fs.StringVar(&accountsPath, "accounts", "", "Account profiles file")
	fs.BoolVar(&upsert, "upsert", false, "Replace existing documents")
	fs.BoolVar(&dryRun, "dry-run", false, "Validate only")
	fs.StringVar(&pushURL, "metrics-push-url", "", "Prometheus Pushgateway URL")
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 5s)")
	fs.StringVar(&redisAddr, "redis-addr", "", "Redis address host:port")
	fs.DurationVar(&cacheTTL, "cache-ttl", 0, "Discovery cache TTL (e.g., 1h)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON settings file path")
	fs.StringVar(&jsonConfigPath, "settings", "", "JSON settings file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Storage: Storage{
			URI:     storeURI,
			Timeout: storeTimeout,
		},
		Cache: Cache{
			RedisAddr: redisAddr,
			TTL:       cacheTTL,
		},
		Seed: Seed{
			ConfigPath:     configPath,
			ClientsPath:    clientsPath,
			AccountsPath:   accountsPath,
			Upsert:         upsert,
			DryRun:         dryRun,
			MetricsPushURL: pushURL,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
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
// An empty host listens on all interfaces.
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
		return errors.New("port number must be in range 1..65535")
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

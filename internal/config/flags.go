package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses args (without the program name) into a config layer.
// Positional arguments end up in [StructuredConfig.Paths].
//
// Flags:
//
//	-e environment name
//	-dir configuration source directory
//	-prefix namespace prefix for directory loads
//	-constant-prefix constant name prefix
//	-numeric-coercion convert numeric strings after constant substitution
//	-canonicalize-paths canonicalize strings containing ".."
//	-log-level minimum log level
//	-snapshot enable snapshot restore/dump
//	-snapshot-dir snapshot directory
//	-snapshot-file snapshot filename
//	-cache cache driver (none, memory, sqlite, postgres, http)
//	-cache-dsn cache database DSN
//	-cache-address remote cache service base URL
//	-cache-timeout remote cache request timeout
//	-a cache service listen address in format [host]:[port]
//	-request-timeout cache service request timeout
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var cfg StructuredConfig
	var serverAddress NetAddress

	fs := flag.NewFlagSet("confkeeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.App.Environment, "e", "", "Environment name")
	fs.StringVar(&cfg.Source.Dir, "dir", "", "Configuration source directory")
	fs.StringVar(&cfg.Source.NamespacePrefix, "prefix", "", "Namespace prefix for directory loads")
	fs.StringVar(&cfg.App.ConstantPrefix, "constant-prefix", "", "Constant name prefix")
	fs.BoolVar(&cfg.App.NumericCoercion, "numeric-coercion", false, "Convert numeric strings after constant substitution")
	fs.BoolVar(&cfg.App.PathCanonicalization, "canonicalize-paths", false, "Canonicalize strings containing ..")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Minimum log level")
	fs.BoolVar(&cfg.Snapshot.Enabled, "snapshot", false, "Enable snapshot restore and dump")
	fs.StringVar(&cfg.Snapshot.Dir, "snapshot-dir", "", "Snapshot directory")
	fs.StringVar(&cfg.Snapshot.File, "snapshot-file", "", "Snapshot filename")
	fs.StringVar(&cfg.Cache.Driver, "cache", "", "Cache driver: none, memory, sqlite, postgres, http")
	fs.StringVar(&cfg.Cache.DSN, "cache-dsn", "", "Cache database DSN")
	fs.StringVar(&cfg.Cache.HTTPAddress, "cache-address", "", "Remote cache service base URL")
	fs.DurationVar(&cfg.Cache.RequestTimeout, "cache-timeout", 0, "Remote cache request timeout (e.g., 5s)")
	fs.Var(&serverAddress, "a", "Cache service address host:port")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Cache service request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, errors.Join(ErrInvalidFlags, err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	if fs.NArg() > 0 {
		cfg.Paths = fs.Args()
	}

	return &cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// It returns an empty string when neither Host nor Port are set.
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


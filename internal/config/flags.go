package config

import (
	"errors"
	"flag"
	"fmt"
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

// parseFlags parses the server command line.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-db-driver database driver ("postgres" or "sqlite")
//	-c/-config json file path with configs
//	-l log level
//	-clinic-config inline clinic JSON override
//	-clinic-config-file path to a clinic JSON override
//	-client-id registered tenant id
//	-webhook booking webhook URL
//	-webhook-signing-key HMAC key for webhook signatures
//	-admin-login admin login
//	-admin-password-hash bcrypt hash of the admin password
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-forward-interval booking forward retry interval
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("dental-site", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	var (
		databaseDSN       string
		databaseDriver    string
		jsonConfigPath    string
		logLevel          string
		clinicConfig      string
		clinicConfigFile  string
		clientID          string
		webhookURL        string
		webhookSigningKey string
		adminLogin        string
		adminPasswordHash string
		tokenSignKey      string
		tokenIssuer       string
		tokenDuration     time.Duration
		requestTimeout    time.Duration
		forwardInterval   time.Duration
	)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "db-driver", "", "Database driver (postgres, sqlite)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logLevel, "l", "", "Log level")
	fs.StringVar(&clinicConfig, "clinic-config", "", "Inline clinic JSON override")
	fs.StringVar(&clinicConfigFile, "clinic-config-file", "", "Clinic JSON override file path")
	fs.StringVar(&clientID, "client-id", "", "Registered tenant id")
	fs.StringVar(&webhookURL, "webhook", "", "Booking webhook URL")
	fs.StringVar(&webhookSigningKey, "webhook-signing-key", "", "HMAC key for webhook signatures")
	fs.StringVar(&adminLogin, "admin-login", "", "Admin login")
	fs.StringVar(&adminPasswordHash, "admin-password-hash", "", "Bcrypt hash of the admin password")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&forwardInterval, "forward-interval", 0, "Booking forward retry interval")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel:          logLevel,
			AdminLogin:        adminLogin,
			AdminPasswordHash: adminPasswordHash,
			TokenSignKey:      tokenSignKey,
			TokenIssuer:       tokenIssuer,
			TokenDuration:     tokenDuration,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN:    databaseDSN,
				Driver: databaseDriver,
			},
		},
		Site: Site{
			ClinicConfig:     clinicConfig,
			ClinicConfigFile: clinicConfigFile,
			ClientID:         clientID,
		},
		Adapter: Adapter{
			WebhookURL: webhookURL,
			SigningKey: webhookSigningKey,
		},
		Workers: Workers{
			ForwardInterval: forwardInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// It returns "" when neither Host nor Port is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
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
		return errors.New("port number must be in range 1-65535")
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

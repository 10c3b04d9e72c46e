package config

import (
	"errors"

	"github.com/cyverse-de/go-mod/cfg"
)

var ServiceName = "RQS"

// Specification defines the configuration settings for the RQS service.
type Specification struct {
	DatabaseURI         string
	RunSchemaMigrations bool
	ReinitDB            bool
	ListenPort          int
	JWTSecret           string
	NatsCluster         string
	DotEnvPath          string
	ConfigPath          string
	EnvPrefix           string
	MaxReconnects       int
	ReconnectWait       int
	CACertPath          string
	TLSKeyPath          string
	TLSCertPath         string
	CredsPath           string
	BaseSubject         string
	BaseQueueName       string
}

// LoadConfig loads the configuration for the RQS service.
func LoadConfig(envPrefix, configPath, dotEnvPath string) (*Specification, error) {
	k, err := cfg.Init(&cfg.Settings{
		EnvPrefix:   envPrefix,
		ConfigPath:  configPath,
		DotEnvPath:  dotEnvPath,
		StrictMerge: false,
		FileType:    cfg.YAML,
	})

	var s Specification

	s.DatabaseURI = k.String("database.uri")
	if s.DatabaseURI == "" {
		return nil, errors.New("database.uri or RQS_DATABASE_URI must be set")
	}

	s.RunSchemaMigrations = k.Bool("database.migrate")
	s.ReinitDB = k.Bool("database.reinit")

	s.ListenPort = k.Int("listen.port")
	if s.ListenPort == 0 {
		s.ListenPort = 9000
	}

	s.JWTSecret = k.String("jwt.secret")
	if s.JWTSecret == "" {
		return nil, errors.New("jwt.secret or RQS_JWT_SECRET must be set")
	}

	s.NatsCluster = k.String("nats.cluster")
	if s.NatsCluster == "" {
		return nil, errors.New("nats.cluster must be set in the configuration file")
	}

	s.MaxReconnects = k.Int("nats.reconnects.max")
	s.ReconnectWait = k.Int("nats.reconnects.wait")
	s.CACertPath = k.String("nats.tls.cacert")
	s.TLSCertPath = k.String("nats.tls.cert")
	s.TLSKeyPath = k.String("nats.tls.key")
	s.CredsPath = k.String("nats.creds")

	s.BaseSubject = k.String("nats.subject.base")
	if s.BaseSubject == "" {
		s.BaseSubject = "rqs.>"
	}

	s.BaseQueueName = k.String("nats.queue.base")
	if s.BaseQueueName == "" {
		s.BaseQueueName = "rqs"
	}

	return &s, err
}

package server

import (
	"fmt"
	"strings"
	"time"

	"github.com/batchrecords/rqs/config"
	"github.com/batchrecords/rqs/internal/controllers"
	"github.com/batchrecords/rqs/internal/db"
	"github.com/batchrecords/rqs/logging"
	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"
)

var log = logging.GetLogger().WithFields(logrus.Fields{"package": "server"})

func natsSubject(base string, fields ...string) string {
	trimmed := strings.TrimSuffix(
		strings.TrimSuffix(base, ".*"),
		".>",
	)
	addFields := strings.Join(fields, ".")
	return fmt.Sprintf("%s.%s", trimmed, addFields)
}

func natsQueue(qBase string, fields ...string) string {
	return fmt.Sprintf("%s.%s", qBase, strings.Join(fields, "."))
}

func queueSub(conn *nats.EncodedConn, spec *config.Specification, name string, handler nats.Handler) {
	var err error

	subject := natsSubject(spec.BaseSubject, name)
	queue := natsQueue(spec.BaseQueueName, name)

	if _, err = conn.QueueSubscribe(subject, queue, handler); err != nil {
		log.Fatal(err)
	}

	log.Infof("subscribed to %s on queue %s", subject, queue)
}

func InitNATS(spec *config.Specification) *nats.EncodedConn {
	nc, err := nats.Connect(
		spec.NatsCluster,
		nats.UserCredentials(spec.CredsPath),
		nats.RootCAs(spec.CACertPath),
		nats.ClientCert(spec.TLSCertPath, spec.TLSKeyPath),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(spec.MaxReconnects),
		nats.ReconnectWait(time.Duration(spec.ReconnectWait)*time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Errorf("disconnected from nats: %s", err.Error())
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Infof("reconnected to %s", nc.ConnectedUrl())
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			log.Errorf("connection closed: %s", nc.LastError().Error())
		}),
	)
	if err != nil {
		log.Fatal(err)
	}

	log.Infof("configured servers: %s", strings.Join(nc.Servers(), " "))
	log.Infof("connected to NATS host: %s", nc.ConnectedServerName())

	conn, err := nats.NewEncodedConn(nc, nats.JSON_ENCODER)
	if err != nil {
		log.Fatal(err)
	}

	log.Infof("set up encoded connection to NATS")

	return conn
}

func Init(spec *config.Specification) {
	log := log.WithFields(logrus.Fields{"context": "server init"})

	e := InitRouter()

	// Establish the database connection.
	log.Info("establishing the database connection")
	dbconn, gormdb, err := db.Init("postgres", spec.DatabaseURI)
	if err != nil {
		log.Fatalf("service initialization failed: %s", err.Error())
	}

	conn := InitNATS(spec)

	s := controllers.Server{
		Router:   e,
		DB:       dbconn,
		GORMDB:   gormdb,
		NATSConn: conn,
		Service:  "rqs",
		Title:    "RQS Record Quota Service",
		Version:  "1.0.0",
	}

	// Register the handlers.
	RegisterHandlers(s, []byte(spec.JWTSecret))

	// Usage snapshot reads for other services.
	queueSub(conn, spec, "usage.get", s.GetUsageNATS)

	// Only use this endpoint from the ingestion pipeline; it appends upload
	// records directly.
	queueSub(conn, spec, "usage.add", s.AddUploadNATS)

	log.Info("starting the service")
	log.Fatal(e.Start(fmt.Sprintf(":%d", spec.ListenPort)))
}

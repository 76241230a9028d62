package messaging

import (
	"fmt"
	"time"

	"doctor-registration/config"

	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"
)

func NewNATSConnection(cfg config.NATSConfig) (*nats.Conn, error) {
	conn, err := nats.Connect(cfg.URL,
		nats.Name("doctor-registration"),
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logrus.Warnf("Disconnected from NATS: %+v", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logrus.Infof("Reconnected to NATS at %s", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	logrus.Info("Successfully connected to NATS")

	return conn, nil
}

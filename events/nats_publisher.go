package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

const (
	natsMaxReconnects  = -1
	natsReconnectWait  = 2 * time.Second
	defaultNATSSubject = "league"
)

// ConnectNATS opens a connection that reconnects forever and logs state changes.
func ConnectNATS(url string, logger *slog.Logger) (*nats.Conn, error) {
	opts := []nats.Option{
		nats.Name("league-manager"),
		nats.MaxReconnects(natsMaxReconnects),
		nats.ReconnectWait(natsReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			logger.Warn("NATS disconnected", slog.Any("error", err))
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", slog.String("url", nc.ConnectedUrl()))
		}),
		nats.ErrorHandler(func(nc *nats.Conn, sub *nats.Subscription, err error) {
			logger.Error("NATS error", slog.Any("error", err))
		}),
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}
	return nc, nil
}

// MsgPublisher is the part of *nats.Conn the publisher needs.
type MsgPublisher interface {
	PublishMsg(msg *nats.Msg) error
}

// NATSPublisher publishes to "<prefix>.championship.<id>.round_resolved".
type NATSPublisher struct {
	nc     MsgPublisher
	prefix string
}

func NewNATSPublisher(nc MsgPublisher, subjectPrefix string) *NATSPublisher {
	if subjectPrefix == "" {
		subjectPrefix = defaultNATSSubject
	}
	return &NATSPublisher{nc: nc, prefix: subjectPrefix}
}

func RoundResolvedSubject(prefix string, championshipID int) string {
	return fmt.Sprintf("%s.championship.%d.round_resolved", prefix, championshipID)
}

func (p *NATSPublisher) PublishRoundResolved(ctx context.Context, event RoundResolved) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal round event: %w", err)
	}
	subject := RoundResolvedSubject(p.prefix, event.ChampionshipID)
	msg := nats.NewMsg(subject)
	msg.Data = data
	msg.Header.Set("Content-Type", "application/json")
	msg.Header.Set("Event-Type", event.Type)
	// один тур чемпионата публикуется один раз
	msg.Header.Set(nats.MsgIdHdr, fmt.Sprintf("%d-%d", event.ChampionshipID, event.Round))
	if err := p.nc.PublishMsg(msg); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	return nil
}

package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Dosada05/league-manager/brackets"
)

type recordingPublisher struct {
	got []RoundResolved
	err error
}

func (r *recordingPublisher) PublishRoundResolved(_ context.Context, e RoundResolved) error {
	r.got = append(r.got, e)
	return r.err
}

func TestMultiPublisher(t *testing.T) {
	ok := &recordingPublisher{}
	failing := &recordingPublisher{err: errors.New("down")}
	multi := MultiPublisher{ok, nil, failing, NopPublisher{}}

	err := multi.PublishRoundResolved(context.Background(), RoundResolved{ChampionshipID: 3, Round: 1})
	if err == nil || !errors.Is(err, failing.err) {
		t.Fatalf("want joined error containing %v, got %v", failing.err, err)
	}
	if len(ok.got) != 1 || len(failing.got) != 1 {
		t.Fatalf("every publisher must receive the event: ok=%d failing=%d", len(ok.got), len(failing.got))
	}
}

func TestRoundResolvedSubject(t *testing.T) {
	if got := RoundResolvedSubject("league", 12); got != "league.championship.12.round_resolved" {
		t.Fatalf("unexpected subject %q", got)
	}
}

func TestHubPublisherBroadcastsToChampionshipRoom(t *testing.T) {
	hub := brackets.NewHub(nil)
	go hub.Run()
	defer hub.Stop()

	client := &brackets.Client{Hub: hub, Send: make(chan []byte, 4), Room: brackets.ChampionshipRoom(5)}
	hub.Register <- client

	deadline := time.Now().Add(time.Second)
	for hub.RoomSize(client.Room) == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client was not registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	pub := NewHubPublisher(hub)
	if err := pub.PublishRoundResolved(context.Background(), RoundResolved{ChampionshipID: 5, Round: 2, Completed: true}); err != nil {
		t.Fatal(err)
	}
	// другой чемпионат не должен попасть в комнату
	if err := pub.PublishRoundResolved(context.Background(), RoundResolved{ChampionshipID: 6, Round: 1}); err != nil {
		t.Fatal(err)
	}

	select {
	case raw := <-client.Send:
		var msg struct {
			Type    string        `json:"type"`
			RoomID  string        `json:"room_id"`
			Payload RoundResolved `json:"payload"`
		}
		if err := json.Unmarshal(raw, &msg); err != nil {
			t.Fatal(err)
		}
		if msg.Type != TypeSeasonCompleted || msg.RoomID != "championship_5" || msg.Payload.Round != 2 {
			t.Fatalf("unexpected message: %+v", msg)
		}
	case <-time.After(time.Second):
		t.Fatal("no message delivered")
	}

	select {
	case raw := <-client.Send:
		t.Fatalf("unexpected extra message: %s", raw)
	default:
	}
}

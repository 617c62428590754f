//go:build integration
// +build integration

package bus

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) (addr string, terminate func()) {
	t.Helper()
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	if err != nil {
		t.Fatalf("container start: %v", err)
	}
	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		t.Fatalf("endpoint: %v", err)
	}
	return endpoint, func() { _ = container.Terminate(context.Background()) }
}

// serve answers every request on subject with reply until ctx ends.
func serve(ctx context.Context, t *testing.T, tr *RedisTransport, subject string, reply func(envelope) Message) {
	t.Helper()
	reqs, err := tr.Subscribe(ctx, subject)
	if err != nil {
		t.Fatalf("subscribe %s: %v", subject, err)
	}
	go func() {
		for raw := range reqs {
			var env envelope
			if err := json.Unmarshal(raw, &env); err != nil {
				continue
			}
			b, _ := json.Marshal(reply(env))
			_ = tr.Publish(ctx, env.ReplyTo, b)
		}
	}()
}

func TestRedisTransport_RequestReply(t *testing.T) {
	addr, terminate := startRedis(t)
	defer terminate()

	tr := NewRedisTransport(redis.NewClient(&redis.Options{Addr: addr}))
	defer tr.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := tr.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}

	serve(ctx, t, tr, SubjectRegions, func(envelope) Message {
		return Message{Code: CodeOK, Data: `["us","eu"]`}
	})
	serve(ctx, t, tr, SubjectStatus, func(env envelope) Message {
		return Message{Code: CodeNotFound, Error: "unknown region " + env.Data}
	})

	c := NewClient(tr, 2*time.Second)

	msg, err := c.Request(ctx, SubjectRegions, nil)
	if err != nil {
		t.Fatalf("regions: %v", err)
	}
	var regions []string
	if err := msg.Decode(&regions); err != nil || len(regions) != 2 {
		t.Fatalf("regions decode: %v %v", regions, err)
	}

	if _, err := c.Request(ctx, SubjectStatus, map[string]string{"region_name": "xx"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("status err=%v, want ErrNotFound", err)
	}

	short := NewClient(tr, 100*time.Millisecond)
	if _, err := short.Request(ctx, SubjectOwners, nil); !errors.Is(err, ErrTimeout) {
		t.Fatalf("owners err=%v, want ErrTimeout", err)
	}
}

package checkers

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestPostgresChecker(t *testing.T) {
	ok := NewPostgresChecker(pingFunc(func(ctx context.Context) error {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		return nil
	}))
	assert.Equal(t, "postgres", ok.Name())
	assert.NoError(t, ok.Check(context.Background()))

	down := NewPostgresChecker(pingFunc(func(context.Context) error { return errors.New("refused") }))
	assert.Error(t, down.Check(context.Background()))
}

func TestRedisChecker(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	defer client.Close()

	c := NewRedisChecker(client)
	assert.NoError(t, c.Check(context.Background()))

	srv.Close()
	assert.Error(t, c.Check(context.Background()))
}

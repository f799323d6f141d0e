package middleware

import (
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_AllowPerKey(t *testing.T) {
	rl := NewRateLimiter(0.001, 2)

	assert.True(t, rl.Allow("a"))
	assert.True(t, rl.Allow("a"))
	assert.False(t, rl.Allow("a"))

	// other visitors have their own bucket
	assert.True(t, rl.Allow("b"))
}

func TestRateLimiter_ConcurrentFirstRequests(t *testing.T) {
	const burst = 5
	rl := NewRateLimiter(0.001, burst)

	var (
		allowed int32
		wg      sync.WaitGroup
	)
	start := make(chan struct{})
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if rl.Allow("10.0.0.1") {
				atomic.AddInt32(&allowed, 1)
			}
		}()
	}
	close(start)
	wg.Wait()

	// один bucket на ключ, даже если первые запросы пришли одновременно
	assert.Equal(t, int32(burst), atomic.LoadInt32(&allowed))
	assert.Equal(t, 1, rl.visitors.Len())
}

func TestRateLimiter_Handler(t *testing.T) {
	rl := NewRateLimiter(0.001, 1)

	app := fiber.New()
	app.Use(rl.Handler())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "1", resp.Header.Get("Retry-After"))
}

// Package ratelimiter provides token bucket rate limiting with an in-memory
// store and HTTP middleware.
//
// A bucket starts full at Capacity tokens. Every RefillInterval it gains
// RefillRate tokens, never exceeding Capacity. Each request takes one token;
// a request that does not fit is denied and takes nothing, so clients that
// keep retrying while limited are not pushed further back.
//
// # Usage
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       5,
//		RefillRate:     1,
//		RefillInterval: time.Minute,
//	})
//	if err != nil {
//		return err
//	}
//
//	r.With(ratelimiter.Middleware(limiter, ratelimiter.ByIP)).Post("/", submit)
//
// The middleware sets X-RateLimit-Limit, X-RateLimit-Remaining and
// X-RateLimit-Reset on every limited route, plus Retry-After (whole seconds,
// rounded up) on denied requests. WithLimitedHandler replaces the default
// plain-text 429 body.
//
// Config carries env tags, so it can be embedded into an application config
// with a prefix such as CONTACT_RATE_.
package ratelimiter

// Package redis connects to Redis with retries and exposes a readiness probe.
//
// Config is filled from REDIS_* environment variables. REDIS_URL is optional:
// Config.Enabled reports whether it is set, and Connect refuses an empty URL
// with ErrEmptyConnectionURL.
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//	if cfg.Enabled() {
//		client, err := redis.Connect(ctx, cfg)
//		if err != nil {
//			return err
//		}
//		defer client.Close()
//		checks = append(checks, httpserver.Check{Name: "redis", Fn: redis.Healthcheck(client)})
//	}
package redis

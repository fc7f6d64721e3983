package middleware

import (
	"task-reminder-bot/pkg/log"
)

type Middleware struct {
	l             log.Logger
	webhookSecret string
	rl            *rateLimiter
}

func New(l log.Logger, webhookSecret string, rateLimitPerMin int) Middleware {
	return Middleware{
		l:             l,
		webhookSecret: webhookSecret,
		rl:            newRateLimiter(rateLimitPerMin),
	}
}

package middleware

import (
	"goldensage/pkg/log"
	"goldensage/pkg/scope"
)

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	limiters   *visitorLimiters
}

func New(l log.Logger, jwtManager scope.Manager) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		limiters:   newVisitorLimiters(),
	}
}

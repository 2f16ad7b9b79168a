package server

import (
	"net/http"
	"time"

	"github.com/agbru/digitcalc/internal/logging"
)

// WithRateLimiter sets a custom rate limiter for the server.
func WithRateLimiter(rl *RateLimiter) Option {
	return func(s *Server) {
		s.rateLimiter = rl
	}
}

// WithSecurityConfig sets a custom security configuration for the server.
func WithSecurityConfig(config SecurityConfig) Option {
	return func(s *Server) {
		s.securityConfig = config
	}
}

// WithMaxBodyBytes caps the size of POST /evaluate bodies.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		s.securityConfig.MaxBodyBytes = n
	}
}

// loggingMiddleware logs the method, path, client and duration of each request.
func (s *Server) loggingMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next(w, r)
		s.logger.Info("request served",
			logging.String("method", r.Method),
			logging.String("path", r.URL.Path),
			logging.String("client", getClientIP(r)),
			logging.Duration("duration", time.Since(start)))
	}
}

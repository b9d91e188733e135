package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
)

const (
	msgRateLimited = "превышен лимит запросов, повторите позже"

	// Секунды для заголовка Retry-After
	retryAfterSeconds = 60

	// Период очистки неактивных клиентов
	cleanupInterval = 5 * time.Minute
	clientTTL       = 10 * time.Minute
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipLimiters отдельный token bucket на каждый IP
type ipLimiters struct {
	mu        sync.Mutex
	clients   map[string]*client
	perMinute int
}

func newIPLimiters(perMinute int) *ipLimiters {
	return &ipLimiters{
		clients:   make(map[string]*client),
		perMinute: perMinute,
	}
}

// allow проверяет, укладывается ли клиент в лимит
func (l *ipLimiters) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.clients[ip]
	if !ok {
		// Токены пополняются равномерно, burst равен минутному лимиту
		c = &client{
			limiter: rate.NewLimiter(rate.Limit(float64(l.perMinute)/60.0), l.perMinute),
		}
		l.clients[ip] = c
	}
	c.lastSeen = time.Now()

	return c.limiter.Allow()
}

// cleanup удаляет клиентов, не появлявшихся дольше clientTTL
func (l *ipLimiters) cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := time.Now().Add(-clientTTL)
	for ip, c := range l.clients {
		if c.lastSeen.Before(cutoff) {
			delete(l.clients, ip)
		}
	}
}

// RateLimiter ограничитель частоты запросов
//
// Глобальный лимит действует на все маршруты; для горячих операций
// (просмотр доступности, создание брони) действует дополнительный,
// более строгий лимит
type RateLimiter struct {
	global *ipLimiters
	hot    *ipLimiters
	logger Logger
}

// NewRateLimiter создает новый ограничитель частоты запросов
func NewRateLimiter(globalPerMinute, hotPerMinute int, logger Logger, stopCh <-chan struct{}) *RateLimiter {
	rl := &RateLimiter{
		global: newIPLimiters(globalPerMinute),
		hot:    newIPLimiters(hotPerMinute),
		logger: logger,
	}

	go func() {
		ticker := time.NewTicker(cleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				rl.global.cleanup()
				rl.hot.cleanup()
			case <-stopCh:
				return
			}
		}
	}()

	return rl
}

// Middleware возвращает mux middleware с проверкой лимитов
func (rl *RateLimiter) Middleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)

			if !rl.global.allow(ip) {
				rl.logger.Warn("RateLimit - Global limit exceeded: ip=%s, path=%s", ip, r.URL.Path)
				handlers.RespondTooManyRequests(w, retryAfterSeconds, msgRateLimited)
				return
			}

			if isHotEndpoint(r) && !rl.hot.allow(ip) {
				rl.logger.Warn("RateLimit - Hot endpoint limit exceeded: ip=%s, path=%s", ip, r.URL.Path)
				handlers.RespondTooManyRequests(w, retryAfterSeconds, msgRateLimited)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// isHotEndpoint выделяет операции, которые штурмуют в пиковые часы
func isHotEndpoint(r *http.Request) bool {
	switch {
	case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/reservations"):
		return true
	case r.Method == http.MethodGet && strings.HasSuffix(r.URL.Path, "/availability"):
		return true
	}
	return false
}

// clientIP извлекает IP клиента с учётом X-Forwarded-For
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

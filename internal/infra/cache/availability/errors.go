package availability

import "errors"

var (
	// ErrCacheMiss возвращается, когда ключ не найден в кэше
	ErrCacheMiss = errors.New("availability.cache: cache miss")

	// ErrCacheUnavailable возвращается при ошибках обращения к Redis
	// Вызывающий код деградирует к прямому вычислению, запрос не падает
	ErrCacheUnavailable = errors.New("availability.cache: cache unavailable")
)

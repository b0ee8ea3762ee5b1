package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/banachtech/vasicek/util"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	authorizationHeaderKey  = "authorization"
	authorizationTypeBearer = "bearer"
	authorizationPrefixKey  = "prefix"
)

// authentication checks the bearer api key "prefix.secret" against the
// bcrypt hash stored for prefix.
func (server *Server) authentication(c *gin.Context) {
	authorizationHeader := c.GetHeader(authorizationHeaderKey)

	if len(authorizationHeader) == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse(errors.New("authorization header is not provided")))
		return
	}

	fields := strings.Fields(authorizationHeader)
	if len(fields) < 2 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse(errors.New("invalid authorization header format")))
		return
	}

	authorizationType := strings.ToLower(fields[0])
	if authorizationType != authorizationTypeBearer {
		c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse(fmt.Errorf("unsupported authorization type: %s", authorizationType)))
		return
	}

	apiKey := fields[1]

	prefix, _, found := strings.Cut(apiKey, ".")
	if !found || len(prefix) != util.PrefixLength {
		c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse(errors.New("please input a valid API Key")))
		return
	}

	user, err := server.store.GetUser(c, prefix)
	if err != nil {
		abortWithError(c, err)
		return
	}

	if time.Now().After(user.ExpiredAt) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse(errors.New("api key is expired")))
		return
	}

	if err := util.CheckAPIKey(apiKey, user.Token); err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse(errors.New("please input a valid API Key")))
		return
	}

	c.Set(authorizationPrefixKey, prefix)
	c.Next()
}

// limiters holds one token bucket per api key prefix.
type limiters struct {
	mu    sync.Mutex
	rps   rate.Limit
	burst int
	m     map[string]*rate.Limiter
}

func newLimiters(rps float64, burst int) *limiters {
	if rps <= 0 {
		rps = 1
	}
	if burst < 1 {
		burst = 1
	}
	return &limiters{rps: rate.Limit(rps), burst: burst, m: make(map[string]*rate.Limiter)}
}

func (l *limiters) get(prefix string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	limiter, ok := l.m[prefix]
	if !ok {
		limiter = rate.NewLimiter(l.rps, l.burst)
		l.m[prefix] = limiter
	}
	return limiter
}

func (server *Server) rateLimit(c *gin.Context) {
	prefix := c.GetString(authorizationPrefixKey)
	if prefix == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse(errors.New("authentication error")))
		return
	}
	if !server.limiters.get(prefix).Allow() {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, errorResponse(errors.New("too many requests")))
		return
	}
	c.Next()
}

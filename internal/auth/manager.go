// Package auth は単一の共有トークンによるアクセス制御を提供します。
package auth

import (
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const (
	apiKeyHeader = "X-API-Key"
)

var (
	failureWindow    = 15 * time.Minute
	lockDuration     = 10 * time.Minute
	maxTokenFailures = 5
)

type attemptState struct {
	count        int
	firstAttempt time.Time
	lockedUntil  time.Time
}

// Manager は共有トークンの検証と失敗回数の管理を行います。
type Manager struct {
	tokenHash []byte
	now       func() time.Time
	lock      sync.Mutex
	attempts  map[string]*attemptState
}

// NewManager は認証マネージャーを作成します。tokenHash が空の場合は認証を行いません。
func NewManager(tokenHash string) *Manager {
	return &Manager{
		tokenHash: []byte(tokenHash),
		now:       time.Now,
		attempts:  make(map[string]*attemptState),
	}
}

// Enabled は共有トークンが設定されているかを返します。
func (m *Manager) Enabled() bool {
	return len(m.tokenHash) > 0
}

// RequireToken は X-API-Key または Authorization: Bearer を検証するミドルウェアを返します。
func (m *Manager) RequireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.Enabled() || c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		ip := c.ClientIP()
		if retryAfter := m.checkLock(ip); retryAfter > 0 {
			// Retry-After は秒数で返す
			c.Header("Retry-After", strconv.FormatInt(int64(retryAfter.Seconds()), 10))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"code":    "TOO_MANY_ATTEMPTS",
				"message": "Too many failed attempts. Try again later.",
			})
			return
		}

		token := extractToken(c.Request)
		if token == "" || !m.verify(token) {
			remaining := m.recordFailure(ip)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":              "UNAUTHORIZED",
				"message":           "A valid API token is required.",
				"remainingAttempts": remaining,
			})
			return
		}

		m.resetAttempts(ip)
		c.Next()
	}
}

func (m *Manager) verify(token string) bool {
	return bcrypt.CompareHashAndPassword(m.tokenHash, []byte(token)) == nil
}

func (m *Manager) checkLock(ip string) time.Duration {
	m.lock.Lock()
	defer m.lock.Unlock()

	state, ok := m.attempts[ip]
	if !ok {
		return 0
	}
	now := m.now()
	if now.After(state.lockedUntil) {
		return 0
	}
	return state.lockedUntil.Sub(now)
}

func (m *Manager) recordFailure(ip string) int {
	m.lock.Lock()
	defer m.lock.Unlock()

	now := m.now()
	state, ok := m.attempts[ip]
	if !ok || now.Sub(state.firstAttempt) > failureWindow {
		state = &attemptState{firstAttempt: now}
		m.attempts[ip] = state
	}

	state.count++
	if state.count >= maxTokenFailures {
		state.lockedUntil = now.Add(lockDuration)
		state.count = maxTokenFailures
	}

	remaining := maxTokenFailures - state.count
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}

func (m *Manager) resetAttempts(ip string) {
	m.lock.Lock()
	defer m.lock.Unlock()
	delete(m.attempts, ip)
}

func extractToken(r *http.Request) string {
	if value := strings.TrimSpace(r.Header.Get(apiKeyHeader)); value != "" {
		return value
	}
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}

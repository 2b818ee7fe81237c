package cache

import (
	"errors"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
)

// Commands for one chat must be applied in arrival order, and one
// command's persistence must finish before the next is decoded. The
// per-chat lock below is how that ordering is enforced in front of the
// engine.

const (
	lockTTLSec   = 10
	lockRetry    = 50 * time.Millisecond
	lockAttempts = 60
)

var ErrLockBusy = errors.New("chat is busy with another command")

func lockKey(chatId int64) string {
	return fmt.Sprintf("chat.%d.lock", chatId)
}

// AcquireChatLock takes the chat's command lock, waiting briefly if
// another command holds it. The lock expires on its own should the
// holder die mid-command.
func AcquireChatLock(chatId int64, conn redis.Conn) error {
	for i := 0; i < lockAttempts; i++ {
		reply, err := redis.String(conn.Do("SET", lockKey(chatId), 1, "NX", "EX", lockTTLSec))
		if err == nil && reply == "OK" {
			return nil
		}
		if err != nil && err != redis.ErrNil {
			return err
		}
		time.Sleep(lockRetry)
	}
	return ErrLockBusy
}

// ReleaseChatLock frees the chat's command lock.
func ReleaseChatLock(chatId int64, conn redis.Conn) error {
	_, err := conn.Do("DEL", lockKey(chatId))
	return err
}

// WithChatLock runs fn while holding the chat's command lock.
func WithChatLock(chatId int64, pool *redis.Pool, fn func() error) error {
	conn := pool.Get()
	defer conn.Close()

	if err := AcquireChatLock(chatId, conn); err != nil {
		return err
	}
	defer ReleaseChatLock(chatId, conn)
	return fn()
}

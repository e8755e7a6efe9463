package middleware

import (
	"fmt"
	"runtime/debug"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Recover keeps a panicking handler from taking the poller down
func Recover(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Panic recovered in handler",
						zap.String("panic", fmt.Sprint(r)),
						zap.String("stack", string(debug.Stack())),
					)
					err = nil
				}
			}()
			return next(c)
		}
	}
}

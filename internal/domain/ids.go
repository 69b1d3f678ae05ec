package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// NewThreadID returns a time-ordered thread id
func NewThreadID(t time.Time) string {
	return fmt.Sprintf("thread-%s", newULID(t))
}

// NewReplyID returns a time-ordered reply id
func NewReplyID(t time.Time) string {
	return fmt.Sprintf("reply-%s", newULID(t))
}

// ProfileID derives the profile id from the wallet address
func ProfileID(address string) string {
	return fmt.Sprintf("profile-%s", NormalizeAddress(address))
}

func newULID(t time.Time) string {
	return strings.ToLower(ulid.MustNew(ulid.Timestamp(t), ulid.DefaultEntropy()).String())
}

package cache

import (
	"fmt"
	"time"
)

// Cache keys are namespaced by entity type and scope so writers can
// invalidate exactly what they may have staled.
const (
	ListTTL    = 30 * time.Second
	BalanceTTL = 30 * time.Second
)

// ListKey caches one page of a user's cash flows.
func ListKey(userID string, page, limit int) string {
	return fmt.Sprintf("cash-flow:list:%s:%d:%d", userID, page, limit)
}

// ListPattern matches every cached list page of one user.
func ListPattern(userID string) string {
	return "cash-flow:list:" + userID + ":*"
}

// BalanceKey caches a user's aggregate balance.
func BalanceKey(userID string) string {
	return "cash-flow:balance:" + userID
}

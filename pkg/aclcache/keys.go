package aclcache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/credvault/credvault-acl/pkg/acl"
)

// Key derives the cache key for one (actor, account, action) tuple. The key
// is a hex SHA-256 digest so it is safe to use directly as a file name.
func Key(userID, accountID int, action acl.ActionID) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("u%d:a%d:op%d", userID, accountID, int(action))))
	return hex.EncodeToString(sum[:])
}

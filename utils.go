/*
Package gocharm mines the frequent closed itemsets of a transaction database
with the CHARM algorithm (tidsets) and its dCHARM variant (diffsets).

The mining engine lives in package charm. This package holds what the
command line tool and the Redis backed result store share: the Redis client
and a few helpers.
*/
package gocharm

import (
	"math/rand"
	"time"
	"unsafe"
)

var src = rand.NewSource(time.Now().UnixNano())

const letterBytes = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
const (
	letterIdxBits = 6                    // 6 bits to represent a letter index
	letterIdxMask = 1<<letterIdxBits - 1 // All 1-bits, as many as letterIdxBits
	letterIdxMax  = 63 / letterIdxBits   // # of letter indices fitting in 63 bits
)

// KeyPrefix is prepended to the Redis keys created by gocharm
const KeyPrefix = "gocharm:"

// GenerateRandomString returns _n_ random ASCII letters
func GenerateRandomString(n int) string {
	b := make([]byte, n)
	for i, cache, remain := n-1, src.Int63(), letterIdxMax; i >= 0; {
		if remain == 0 {
			cache, remain = src.Int63(), letterIdxMax
		}
		if idx := int(cache & letterIdxMask); idx < len(letterBytes) {
			b[i] = letterBytes[idx]
			i--
		}
		cache >>= letterIdxBits
		remain--
	}

	return *(*string)(unsafe.Pointer(&b))
}

// GenerateRedisKey returns a fresh Redis key for a mining run
func GenerateRedisKey() string {
	return KeyPrefix + GenerateRandomString(16)
}

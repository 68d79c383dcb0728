// Package suppression records email addresses that unsubscribed.
//
// Addresses are normalised (trimmed, lower-cased) before storage, so
// "Alice@Example.com " and "alice@example.com" are the same entry.
// MemoryStore serves development and tests; RedisStore persists to a Redis
// set named by DefaultRedisKey unless WithKey says otherwise.
package suppression

// Package cache provides the shared read-through cache used by the task
// service: opaque string values under string keys with a TTL, plus
// glob-pattern invalidation. The Redis implementation works against a single
// node, a failover group, or a cluster.
package cache

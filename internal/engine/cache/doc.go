// Package cache stores computed estimates so repeated requests for the same
// household inputs skip recomputation and rendering work.
//
// Two backends implement Store:
//   - MemoryStore keeps entries in-process with per-entry TTL expiration
//   - RedisStore shares entries between server replicas through Redis
//
// Keys are SHA256 digests of the normalized inputs, so they are deterministic
// across processes and safe to use as Redis key suffixes.
package cache

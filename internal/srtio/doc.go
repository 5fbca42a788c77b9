// Package srtio reads and writes subtitle line streams at the process
// boundary. Input decoding tolerates UTF-8 and UTF-16 byte order marks,
// which subtitle files in the wild carry often; output is newline-joined
// UTF-8 with a single trailing terminator. In-place rewrites are guarded by
// a sidecar file lock.
package srtio

// Package relay implements the transparent TCP relay engine for portbridge.
//
// Features:
//   - Server owns the listener lifecycle (Start/Stop) and the shared
//     cancellation context for everything spawned under it
//   - An accept loop spawns one Session per inbound connection and keeps
//     accepting until the server is stopped
//   - Each Session dials the fixed remote endpoint and runs two
//     one-directional copy pipes, forming a full duplex relay
//   - When either direction finishes, the session cancels the other so a
//     half-open peer cannot leak a connection or a goroutine
//   - Stop blocks until the accept loop and every live session have fully
//     unwound, so nothing outlives a completed Stop call
//
// Usage:
//  1. Create a Server with NewServer and a Config naming the local port and
//     the remote host/port
//  2. Call Start; it returns as soon as the listener is bound
//  3. Call Stop to quiesce; the local port is free to rebind when it returns
//
// The relay is content-agnostic: bytes are forwarded unmodified in both
// directions and no state is kept across connections.
package relay

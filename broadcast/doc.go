// Package broadcast implements component I: a fan-out publisher that
// clones a value to every subscriber, and a reactive wrapper that
// publishes whatever Values flow into it.
//
// Grounded on original_source/src/sync/broadcast.rs's Broadcast/
// ReactiveBroadcast. Subscribers are signal.Channel receivers
// (component B) rather than mio's SignalReceiver, so a subscriber can be
// driven by any engine via the root sonr package's NewSignalReceiver.
package broadcast

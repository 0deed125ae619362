// Package server runs the feedback API over HTTP and the health service over
// gRPC.
//
// Both transports share one lifetime: a signal, a cancelled context or a
// failing listener stops all of them.
package server

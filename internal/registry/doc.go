// Package registry maps resolved plugin identities to their registered
// implementations. It is populated once at startup by Module values and read
// by the pipeline; the resolver itself never consults it, since computing
// the order does not require the plugins to exist.
package registry

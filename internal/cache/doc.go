// Package cache locates and clears the Recon GUI cache directory.
//
// Recon keeps rendered GUI assets of development Rack Extensions in a
// per-user cache. When assets change without a version bump the stale
// cache has to be removed by hand; the -Z flag of re-cmake does it before
// any build step runs.
package cache

// Package poller keeps an in-memory air-quality series fresh.
//
// The Poller:
//   - Fetches the full series immediately on Start, then every Interval
//   - Bounds each fetch with an explicit Timeout
//   - Tags fetches with a sequence number so a slow, older response never
//     overwrites a newer one
//   - Keeps the last good points when a refresh fails
//   - Stops scheduling on Stop or on a configuration error
package poller

// Package simdata handles fetching and decoding simulation result documents.
//
// A result document is a JSON array of frames, one per simulated time step,
// published by the traffic simulator. The decoder is tolerant of the
// simulator's field-name variants and of its compressed vehicle form.
//
// The main types are SimulationRun (an ordered sequence of frames) and Client
// which fetches documents from an HTTP base URL or a local results directory.
package simdata

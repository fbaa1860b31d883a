// Package application provides application initialization and dependency wiring.
// It encapsulates the creation of the bag, selection policy, distributor,
// pacer and report printer, and drives a full distribution run, keeping the
// main package focused on CLI parsing and orchestration.
package application

// Package region holds the constant lookup tables that tie identifier prefixes
// to issuing provinces (SIN leading digit) and states (SSN area number).
//
// Forward lookups are used by validation; reverse lookups bias generation
// toward a caller-supplied hint. All tables are immutable after init.
package region

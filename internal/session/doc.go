// Package session implements the stateful browse engine at the heart of
// smokifit: a page-oriented session over one search's results.
//
// A Session owns the cursor over an immutable ResultSet, the set of
// pages already "eaten" into the calorie ledger, and the dispatch of
// page-scoped actions:
//   - AggregatePage: per-page nutrition totals on a per-100g basis,
//     plus the mindful-food scan
//   - Advise: the fixed threshold table mapping totals to advice text
//   - LegalCommands: the mode- and state-dependent command set
//
// The engine performs no I/O of its own beyond the injected Store; all
// rendering happens outside, driven by the View it produces.
package session

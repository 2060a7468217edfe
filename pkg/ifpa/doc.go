// Package ifpa provides types, interfaces, and helpers for working with the
// IFPA (International Flipper Pinball Association) API.
//
// # Overview
//
// The ifpa package defines the domain types (Player, Tournament, Ranking,
// Series, Director), the error taxonomy, and the immutable query builders used
// by every resource client. A concrete implementation of the clients is
// provided by the ifpaclient package, which wires configuration, transport and
// caching. Most consumers import ifpaclient to construct a client and then use
// the interfaces exposed here.
//
// # Queries
//
// Resource clients return Query or PagedQuery values. Both are immutable:
// every filter returns a new value and the receiver keeps its parameters, so a
// query can be stored as a base and branched freely.
//
//	base := ifpa.WithCountry(cli.Rankings().WPPR(), "US")
//	top := base.WithPageSize(10)
//	next := top.WithOffset(10)
//
// Filters are generic functions (WithName, WithCountry, WithStateProv,
// WithCity, WithDateRange, Set) that accept any builder.
//
// # Pagination
//
// Only PagedQuery can paginate. Iterate returns a lazy iter.Seq2 that starts
// at offset zero on every call and stops after an empty or short page:
//
//	for ranking, err := range base.Iterate(ctx, 100) {
//	  if err != nil { return err }
//	  fmt.Println(ranking.CurrentRank, ranking.FirstName)
//	}
//
// All collects every item and fails with ErrMaxResultsExceeded instead of
// truncating when PaginationOptions.MaxResults would be exceeded.
//
// # Asynchronous use
//
// GetAsync, AllAsync and StreamPages run the same blocking code on a separate
// goroutine and deliver results through a Future or a channel. Cancel them by
// cancelling the context.
//
// # Errors
//
// Every error type in this package implements Error. Transport failures are
// *APIError values; StatusCode is zero when no response was received.
// Use errors.As to inspect them:
//
//	var apiErr *ifpa.APIError
//	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
//	  // ...
//	}
package ifpa

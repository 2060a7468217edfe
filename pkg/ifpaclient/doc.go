// Package ifpaclient provides the primary entry point for constructing an
// IFPA API client that implements the ifpa.Client interface.
//
// It layers configuration, the HTTP transport and the optional response cache
// on top of the resource interfaces and query builders defined in the ifpa
// package.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/ifpa-client/pkg/ifpa"
//	  "github.com/fivetwenty-io/ifpa-client/pkg/ifpaclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  cli, err := ifpaclient.NewFromEnv(&ifpa.Config{})
//	  if err != nil { log.Fatal(err) }
//	  defer cli.Close()
//
//	  player, err := cli.Players().Get(ctx, 8202)
//	  if err != nil { log.Fatal(err) }
//	  log.Println(player.Name())
//
//	  // Builders are immutable: derive as many queries from a base as needed.
//	  base := ifpa.WithCountry(cli.Players().Search(), "US")
//	  smiths := ifpa.WithName(base, "Smith")
//	  for p, err := range smiths.Iterate(ctx, 50) {
//	    if err != nil { log.Fatal(err) }
//	    log.Println(p.FirstName, p.LastName)
//	  }
//	}
//
// # Errors
//
// Every failure of an exchange is an *ifpa.APIError. A missing API key is an
// *ifpa.ConfigurationError returned by New before any request is sent.
package ifpaclient

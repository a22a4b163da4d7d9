// Package configuration provides the central logic for calculating the runtime
// configuration of a Syndesis installation.
//
// In the Syndesis Operator, an installation's configuration can come from
// multiple sources:
//  1. The shipped configuration template (default values for every field).
//  2. The operator process environment (a fixed allow-list of variables).
//  3. The Syndesis custom resource (the sparse administrator-authored spec).
//  4. Generated secrets (materialized on first resolution, then stable).
//  5. The cluster route (the externally reachable hostname).
//
// The Resolver is the single source of truth for combining these sources. It
// guarantees that repeated resolutions of the same installation are
// reproducible: generated secrets are never regenerated once present, and
// every template default survives unless a later source explicitly overrides
// it.
//
// # Stage Order
//
// Sources are applied strictly downstream, each stage consuming the previous
// stage's output:
//
//  1. Template:        decode the base document into a Config.
//  2. Environment:     overwrite allow-listed fields from the injected env.
//  3. CustomResource:  overlay the non-zero fields of the Syndesis spec,
//     then re-apply secrets persisted by an earlier pass.
//  4. Secrets:         generate any credential still empty.
//  5. Route:           adopt the externally reachable hostname.
//
// No stage re-reads an upstream source after it has run, and no stage hands a
// partially applied Config downstream: a stage either succeeds completely or
// the whole resolution fails with a typed error.
//
// Usage:
//
//	res := configuration.NewResolver(templatePath, env, routes)
//
//	config, err := res.Resolve(ctx, syndesis, persisted)
//	if err != nil {
//	    // *DecodeError marks the installation degraded;
//	    // *RouteNotFoundError is transient and retried next pass.
//	}
package configuration

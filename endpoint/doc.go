// Package endpoint declares HTTP endpoints once and invokes them many times.
//
// A Client holds client-wide defaults (ClientConfig) and a Transport. Each
// verb method binds a URL template, a method and an optional EndpointConfig
// into an Endpoint. The endpoint configuration is merged over the client
// configuration when the endpoint is declared; the shared configuration is
// never mutated afterwards, so endpoints are safe for concurrent use.
//
// An Endpoint is invoked either as a function:
//
//	getUser := client.Get("/users/{id}", nil).Func()
//	user, err := getUser(ctx, map[string]any{"expand": "teams"}, &endpoint.RequestData{
//	    PathVariables: map[string]any{"id": 42},
//	})
//
// or through a fluent builder, one per logical request:
//
//	user, err := client.Get("/users/{id}", nil).New().
//	    PathVariables(map[string]any{"id": 42}).
//	    Params(map[string]any{"expand": []string{"teams", "roles"}}).
//	    Fetch(ctx)
//
// Every invocation runs the same lifecycle: the PreRequest hook may veto the
// call (Fetch then fails with a CANCELED error), the body is serialized, the
// path is rendered, the query is built, the transport is called and OnThen or
// OnCatch observe the outcome. ExtractData and ExtractCatchData decide whether
// callers receive payloads or full envelopes.
package endpoint

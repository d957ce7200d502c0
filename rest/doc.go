// Package rest adds typed decoding on top of endpoint invocations.
//
// Endpoints return payloads as any: decoded JSON (maps, slices, numbers),
// a string, or the raw *httpclient.Response. The helpers here convert that
// result into a caller-chosen type:
//
//	type User struct {
//		ID   int    `json:"id"`
//		Name string `json:"name"`
//	}
//
//	getUser := client.Get("/users/{id}", nil)
//	user, err := rest.Fetch[User](ctx, getUser.New().PathVariables(map[string]any{"id": 7}))
//
// Error payloads surfaced with ExtractCatchData decode the same way:
//
//	if apiErr, ok := rest.PayloadAs[APIError](err); ok { ... }
package rest

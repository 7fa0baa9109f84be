// Package route provides the route descriptor and the route table the
// dispatcher consults for every request.
//
// A Route binds an HTTP method and a path pattern to an ordered sequence of
// interceptors and one terminal handler. Patterns support static segments,
// ":name" and "{name}" parameters, "{name:regexp}" constrained parameters and
// a trailing "*" catch-all:
//
//	routes := route.NewRegistry()
//	routes.Get("/users/:id", getUser, authCheck)
//	routes.Get("/files/{name:[a-z]+\\.txt}", getFile)
//	routes.Handle("/static/*", serveStatic)
//
// Lookup returns at most one match. Registry resolves ties by registration
// order: the first matching route wins.
package route

// Package web adapts net/http to the request and response contracts in
// core/handler.
//
// NewRequest binds an *http.Request to the route that matched it and assigns
// it a UUID. Init parses the body and reports a malformed request before any
// application code runs. NewResponse buffers the status until the first
// write, so the dispatcher can inspect and change it after a route ran;
// Finish commits whatever status is left once the dispatch is over.
package web

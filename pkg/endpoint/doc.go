// Package endpoint enumerates the GitHub REST API. Every (method, path
// template) pair is a Route, and every route has a constructor taking its
// path parameters in template order:
//
//	e := endpoint.GetReposownerrepo("octocat", "Hello-World")
//	e.Method() // GET
//	e.Path()   // /repos/octocat/Hello-World
package endpoint

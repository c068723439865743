// Package gitlab provides types, interfaces, and helpers for working with
// the GitLab v4 REST API.
//
// # Overview
//
// The gitlab package defines the domain types (e.g., User, Project, Issue,
// MergeRequest, Branch) and the interfaces for resource-oriented clients
// (e.g., UsersClient, ProjectsClient). A concrete implementation of these
// clients is provided by the glclient package, which wires configuration,
// transport, and authentication. Most consumers should import glclient to
// construct a client and then interact with the resource client interfaces
// exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/labforge-io/gitlab-client/pkg/gitlab"
//	  "github.com/labforge-io/gitlab-client/pkg/glclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := glclient.New(ctx, &gitlab.Config{
//	    BaseURL: "https://gitlab.example.com",
//	    Token:   "glpat-...",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // List the first page of projects
//	  projects, err := cli.Projects().List(ctx, nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = projects
//	}
//
// # Queries and pagination
//
// Use Query to build request parameters. Parameters render in insertion
// order and may repeat; optional values are added with the AddOptional
// variants, which skip nil pointers entirely. PageOptions describes a page
// position; the package also provides helpers for iterating or collecting
// paginated results:
//
//	it := gitlab.NewPageIterator[gitlab.Project](ctx, fetcher, "/projects", nil, nil)
//	for it.HasNext() {
//	  project, err := it.Next()
//	  if err != nil { break }
//	  _ = project
//	}
//
// or fetch all results at once:
//
//	all, err := gitlab.FetchAllPages(ctx, fetcher, "/projects", nil, nil)
//	if err != nil { /* handle error */ }
//	_ = all
//
// Collections are walked sequentially: the end of a collection is detected
// by an empty or short page, so a full page always costs one more request.
//
// # Errors
//
// Non-2xx responses are represented by HTTPError, which preserves the raw
// response body. Helpers such as IsNotFound, IsUnauthorized, and IsForbidden
// make it easy to branch on common cases. A 2xx response whose body cannot
// be decoded yields a DecodeError.
//
// # Interceptors and caching
//
// The package includes generic building blocks such as request/response
// interceptors (for logging, custom headers, Prometheus metrics, rate
// limiting, sudo impersonation) and a pluggable Cache abstraction with
// memory and NATS KV backends. Caching is off by default; the glclient
// package composes these pieces when configured.
package gitlab

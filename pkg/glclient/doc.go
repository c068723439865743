// Package glclient provides the primary entry point for constructing a
// GitLab V4 API client that implements the gitlab.Client interface.
//
// It layers configuration, HTTP transport, and authentication on top of the
// resource interfaces and types defined in the gitlab package. Most
// applications should import glclient to build a client, then use the
// returned gitlab.Client to access resource-specific clients, for example
// Projects(), Issues(), MergeRequests(), etc.
//
// Quick start
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
//
//	  // With a private or personal access token:
//	  cli, err := glclient.NewWithToken(ctx, "https://gitlab.example.com", "glpat-...")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with username/password. The client obtains an OAuth2 token through
//	  // the resource owner password credentials flow and refreshes it as
//	  // needed.
//	  cli, err = glclient.New(ctx, &gitlab.Config{
//	    BaseURL:  "https://gitlab.example.com",
//	    Username: "user",
//	    Password: "pass",
//	  })
//
//	  me, err := cli.Users().Current(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = me
//	}
package glclient

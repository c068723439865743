package gitlab

import (
	"context"
	"net/url"
	"time"
)

// TokenType identifies the kind of API token the client carries.
type TokenType string

const (
	// PrivateToken is a personal/private access token.
	PrivateToken TokenType = "private"

	// OAuthToken is an OAuth2 access token.
	OAuthToken TokenType = "oauth"
)

// HeaderName returns the HTTP header the token travels in when the auth
// method is AuthHeader.
func (t TokenType) HeaderName() string {
	if t == OAuthToken {
		return "Authorization"
	}

	return "PRIVATE-TOKEN"
}

// ParamName returns the query parameter the token travels in when the auth
// method is AuthURLParameter.
func (t TokenType) ParamName() string {
	if t == OAuthToken {
		return "access_token"
	}

	return "private_token"
}

// AuthMethod selects how the token is delivered.
type AuthMethod string

const (
	// AuthHeader delivers the token in an HTTP header.
	AuthHeader AuthMethod = "header"

	// AuthURLParameter delivers the token as a query parameter.
	AuthURLParameter AuthMethod = "param"
)

// EncodeID percent-encodes a namespaced path identifier ("group/project")
// for use as a single path segment. Plain numeric IDs pass through
// unchanged.
func EncodeID(id string) string {
	return url.PathEscape(id)
}

// RepositoryClients provides access to repository-scoped resource clients.
type RepositoryClients interface {
	Branches() BranchesClient
	Repositories() RepositoriesClient
}

// ProjectScopedClients provides access to clients for resources that live
// under a project.
type ProjectScopedClients interface {
	Issues() IssuesClient
	MergeRequests() MergeRequestsClient
	Labels() LabelsClient
	Milestones() MilestonesClient
	ProjectHooks() ProjectHooksClient
	DeployKeys() DeployKeysClient
}

// CoreClients provides access to the top-level resource clients.
type CoreClients interface {
	Users() UsersClient
	Groups() GroupsClient
	Projects() ProjectsClient
}

// Client is the typed GitLab API client.
type Client interface {
	CoreClients
	RepositoryClients
	ProjectScopedClients

	// Version fetches the server version from /version.
	Version(ctx context.Context) (*Version, error)
}

// UsersClient accesses the users endpoints.
type UsersClient interface {
	Current(ctx context.Context) (*User, error)
	CurrentViaSudo(ctx context.Context, username string) (*User, error)
	Get(ctx context.Context, userID int) (*User, error)
	List(ctx context.Context, opts *PageOptions) ([]User, error)
	Search(ctx context.Context, emailOrUsername string) ([]User, error)
	Create(ctx context.Context, opts *CreateUserOptions) (*User, error)
	Update(ctx context.Context, userID int, opts *UpdateUserOptions) (*User, error)
	Delete(ctx context.Context, userID int) error
	Block(ctx context.Context, userID int) error
	Unblock(ctx context.Context, userID int) error
	ListSSHKeys(ctx context.Context, userID int) ([]SSHKey, error)
	GetSSHKey(ctx context.Context, keyID int) (*SSHKey, error)
	AddSSHKey(ctx context.Context, userID int, title, key string) (*SSHKey, error)
	DeleteSSHKey(ctx context.Context, userID, keyID int) error
}

// GroupsClient accesses the groups endpoints.
type GroupsClient interface {
	Get(ctx context.Context, groupID string) (*Group, error)
	List(ctx context.Context, opts *ListGroupsOptions) ([]Group, error)
	Projects(ctx context.Context, groupID int) ([]Project, error)
	Members(ctx context.Context, groupID int) ([]Member, error)
	Create(ctx context.Context, opts *CreateGroupOptions) (*Group, error)
	AddMember(ctx context.Context, groupID, userID int, accessLevel AccessLevel) (*Member, error)
	RemoveMember(ctx context.Context, groupID, userID int) error
	Delete(ctx context.Context, groupID int) error
}

// ProjectsClient accesses the projects endpoints. Identifiers may be a
// numeric ID or a "namespace/name" path already percent-encoded by the
// caller (see EncodeID).
type ProjectsClient interface {
	List(ctx context.Context, opts *ListProjectsOptions) ([]Project, error)
	ListOwned(ctx context.Context) ([]Project, error)
	Get(ctx context.Context, projectID string) (*Project, error)
	Create(ctx context.Context, opts *CreateProjectOptions) (*Project, error)
	Update(ctx context.Context, projectID string, opts *UpdateProjectOptions) (*Project, error)
	Delete(ctx context.Context, projectID string) error
	Members(ctx context.Context, projectID string) ([]Member, error)
	Upload(ctx context.Context, projectID string, filename string, content []byte) (*Upload, error)
}

// IssuesClient accesses the project issues endpoints.
type IssuesClient interface {
	List(ctx context.Context, projectID string, opts *ListIssuesOptions) ([]Issue, error)
	ListAll(ctx context.Context, opts *ListIssuesOptions) ([]Issue, error)
	Get(ctx context.Context, projectID string, issueIID int) (*Issue, error)
	Create(ctx context.Context, projectID string, opts *CreateIssueOptions) (*Issue, error)
	Update(ctx context.Context, projectID string, issueIID int, opts *UpdateIssueOptions) (*Issue, error)
	Close(ctx context.Context, projectID string, issueIID int) (*Issue, error)
	Reopen(ctx context.Context, projectID string, issueIID int) (*Issue, error)
}

// MergeRequestsClient accesses the merge request endpoints.
type MergeRequestsClient interface {
	List(ctx context.Context, projectID string, opts *ListMergeRequestsOptions) ([]MergeRequest, error)
	Get(ctx context.Context, projectID string, mergeRequestIID int) (*MergeRequest, error)
	Create(ctx context.Context, projectID string, opts *CreateMergeRequestOptions) (*MergeRequest, error)
	Update(ctx context.Context, projectID string, mergeRequestIID int, opts *UpdateMergeRequestOptions) (*MergeRequest, error)
	Accept(ctx context.Context, projectID string, mergeRequestIID int, opts *AcceptMergeRequestOptions) (*MergeRequest, error)
	Close(ctx context.Context, projectID string, mergeRequestIID int) (*MergeRequest, error)
	Commits(ctx context.Context, projectID string, mergeRequestIID int) ([]Commit, error)
}

// LabelsClient accesses the project labels endpoints.
type LabelsClient interface {
	List(ctx context.Context, projectID string) ([]Label, error)
	Create(ctx context.Context, projectID string, opts *CreateLabelOptions) (*Label, error)
	Update(ctx context.Context, projectID string, opts *UpdateLabelOptions) (*Label, error)
	Delete(ctx context.Context, projectID string, name string) error
}

// MilestonesClient accesses the project milestones endpoints.
type MilestonesClient interface {
	List(ctx context.Context, projectID string) ([]Milestone, error)
	Get(ctx context.Context, projectID string, milestoneID int) (*Milestone, error)
	Create(ctx context.Context, projectID string, opts *CreateMilestoneOptions) (*Milestone, error)
	Update(ctx context.Context, projectID string, milestoneID int, opts *UpdateMilestoneOptions) (*Milestone, error)
}

// BranchesClient accesses the repository branches endpoints.
type BranchesClient interface {
	List(ctx context.Context, projectID string, opts *PageOptions) ([]Branch, error)
	Get(ctx context.Context, projectID, branchName string) (*Branch, error)
	Create(ctx context.Context, projectID, branchName, ref string) (*Branch, error)
	Delete(ctx context.Context, projectID, branchName string) error
	Protect(ctx context.Context, projectID, branchName string) error
	Unprotect(ctx context.Context, projectID, branchName string) error
}

// RepositoriesClient accesses the raw repository endpoints. The Raw* and
// Archive methods return the body bytes unparsed.
type RepositoriesClient interface {
	Tags(ctx context.Context, projectID string) ([]Tag, error)
	CreateTag(ctx context.Context, projectID string, opts *CreateTagOptions) (*Tag, error)
	Commits(ctx context.Context, projectID string, opts *ListCommitsOptions) ([]Commit, error)
	GetCommit(ctx context.Context, projectID, sha string) (*Commit, error)
	CompareCommits(ctx context.Context, projectID, from, to string) (*Compare, error)
	GetFile(ctx context.Context, projectID, filePath, ref string) (*RepositoryFile, error)
	RawFileContent(ctx context.Context, projectID, ref, filePath string) ([]byte, error)
	RawBlobContent(ctx context.Context, projectID, sha string) ([]byte, error)
	Archive(ctx context.Context, projectID, sha string) ([]byte, error)
}

// ProjectHooksClient accesses the project webhooks endpoints.
type ProjectHooksClient interface {
	List(ctx context.Context, projectID string) ([]ProjectHook, error)
	Get(ctx context.Context, projectID string, hookID int) (*ProjectHook, error)
	Add(ctx context.Context, projectID string, opts *AddProjectHookOptions) (*ProjectHook, error)
	Edit(ctx context.Context, projectID string, hookID int, opts *AddProjectHookOptions) (*ProjectHook, error)
	Delete(ctx context.Context, projectID string, hookID int) error
}

// DeployKeysClient accesses the project deploy key endpoints.
type DeployKeysClient interface {
	List(ctx context.Context, projectID string) ([]DeployKey, error)
	Get(ctx context.Context, projectID string, keyID int) (*DeployKey, error)
	Add(ctx context.Context, projectID string, opts *AddDeployKeyOptions) (*DeployKey, error)
	Delete(ctx context.Context, projectID string, keyID int) error
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a gitlab.Client.
//
// # Authentication precedence
//
//  1. Token: used directly, delivered per TokenType/AuthMethod.
//  2. Username/Password: an OAuth2 access token is obtained via the
//     resource-owner password grant against <BaseURL>/oauth/token (or
//     TokenURL when set) and delivered as a Bearer token.
//  3. No credentials: requests are sent without authentication.
//
// Connection-level settings (timeout, TLS verification, proxy) are passed
// through to the transport unchanged.
type Config struct {
	// BaseURL is the server URL (e.g. "https://gitlab.example.com").
	// glclient.New normalizes it by trimming a trailing slash and adding
	// "https://" when no scheme is present. The "/api/v4" namespace is
	// appended per request, never stored here.
	BaseURL string

	// Token is a static API token. TokenType defaults to PrivateToken and
	// AuthMethod to AuthHeader when left empty.
	Token      string
	TokenType  TokenType
	AuthMethod AuthMethod

	// Username and Password select the OAuth2 password grant when Token is
	// empty.
	Username string
	Password string
	// TokenURL overrides the token endpoint derived from BaseURL.
	TokenURL string

	// HTTPTimeout applies uniformly to every request. Zero means the
	// transport default.
	HTTPTimeout time.Duration

	// RetryMax is the maximum number of transport-level retries. The
	// default of 0 performs no retries; whether to retry is a caller
	// decision, not a pipeline one.
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// SkipTLSVerify disables certificate validation on the transport.
	SkipTLSVerify bool
	// ProxyURL routes requests through the given proxy.
	ProxyURL string

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Debug enables verbose request/response logging when a Logger is set.
	// Token values are never logged.
	Debug  bool
	Logger Logger

	// Cache optionally enables a read-through cache for GET responses.
	// Nil (the default) keeps the pipeline cacheless.
	Cache *CacheConfig
}

// Version represents the /version response.
type Version struct {
	Version  string `json:"version"  yaml:"version"`
	Revision string `json:"revision" yaml:"revision"`
}

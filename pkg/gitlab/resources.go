package gitlab

import (
	"time"
)

// AccessLevel represents a member permission level.
type AccessLevel int

// Member access levels.
const (
	GuestLevel      AccessLevel = 10
	ReporterLevel   AccessLevel = 20
	DeveloperLevel  AccessLevel = 30
	MaintainerLevel AccessLevel = 40
	OwnerLevel      AccessLevel = 50
)

// User represents a GitLab user account.
type User struct {
	ID               int        `json:"id"                          yaml:"id"`
	Username         string     `json:"username"                    yaml:"username"`
	Email            string     `json:"email,omitempty"             yaml:"email,omitempty"`
	Name             string     `json:"name"                        yaml:"name"`
	State            string     `json:"state"                       yaml:"state"`
	AvatarURL        string     `json:"avatar_url,omitempty"        yaml:"avatar_url,omitempty"`
	WebURL           string     `json:"web_url,omitempty"           yaml:"web_url,omitempty"`
	CreatedAt        *time.Time `json:"created_at,omitempty"        yaml:"created_at,omitempty"`
	Bio              string     `json:"bio,omitempty"               yaml:"bio,omitempty"`
	Skype            string     `json:"skype,omitempty"             yaml:"skype,omitempty"`
	LinkedIn         string     `json:"linkedin,omitempty"          yaml:"linkedin,omitempty"`
	Twitter          string     `json:"twitter,omitempty"           yaml:"twitter,omitempty"`
	WebsiteURL       string     `json:"website_url,omitempty"       yaml:"website_url,omitempty"`
	Organization     string     `json:"organization,omitempty"      yaml:"organization,omitempty"`
	ProjectsLimit    int        `json:"projects_limit,omitempty"    yaml:"projects_limit,omitempty"`
	ExternUID        string     `json:"extern_uid,omitempty"        yaml:"extern_uid,omitempty"`
	Provider         string     `json:"provider,omitempty"          yaml:"provider,omitempty"`
	IsAdmin          bool       `json:"is_admin,omitempty"          yaml:"is_admin,omitempty"`
	CanCreateGroup   bool       `json:"can_create_group,omitempty"  yaml:"can_create_group,omitempty"`
	CanCreateProject bool       `json:"can_create_project,omitempty" yaml:"can_create_project,omitempty"`
	Identities       []Identity `json:"identities,omitempty"        yaml:"identities,omitempty"`
}

// Identity represents an external identity attached to a user.
type Identity struct {
	Provider  string `json:"provider"   yaml:"provider"`
	ExternUID string `json:"extern_uid" yaml:"extern_uid"`
}

// SSHKey represents a user's SSH public key.
type SSHKey struct {
	ID        int        `json:"id"                   yaml:"id"`
	Title     string     `json:"title"                yaml:"title"`
	Key       string     `json:"key"                  yaml:"key"`
	CreatedAt *time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// Group represents a GitLab group.
type Group struct {
	ID          int    `json:"id"                    yaml:"id"`
	Name        string `json:"name"                  yaml:"name"`
	Path        string `json:"path"                  yaml:"path"`
	FullPath    string `json:"full_path,omitempty"   yaml:"full_path,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Visibility  string `json:"visibility,omitempty"  yaml:"visibility,omitempty"`
	WebURL      string `json:"web_url,omitempty"     yaml:"web_url,omitempty"`
	LdapCn      string `json:"ldap_cn,omitempty"     yaml:"ldap_cn,omitempty"`
	LdapAccess  int    `json:"ldap_access,omitempty" yaml:"ldap_access,omitempty"`
}

// Member represents a group or project member.
type Member struct {
	ID          int         `json:"id"           yaml:"id"`
	Username    string      `json:"username"     yaml:"username"`
	Name        string      `json:"name"         yaml:"name"`
	State       string      `json:"state"        yaml:"state"`
	AccessLevel AccessLevel `json:"access_level" yaml:"access_level"`
}

// Namespace represents the namespace a project lives in.
type Namespace struct {
	ID       int    `json:"id"                  yaml:"id"`
	Name     string `json:"name"                yaml:"name"`
	Path     string `json:"path"                yaml:"path"`
	Kind     string `json:"kind,omitempty"      yaml:"kind,omitempty"`
	FullPath string `json:"full_path,omitempty" yaml:"full_path,omitempty"`
}

// Project represents a GitLab project.
type Project struct {
	ID                int        `json:"id"                             yaml:"id"`
	Name              string     `json:"name"                           yaml:"name"`
	Path              string     `json:"path"                           yaml:"path"`
	PathWithNamespace string     `json:"path_with_namespace,omitempty"  yaml:"path_with_namespace,omitempty"`
	Description       string     `json:"description,omitempty"          yaml:"description,omitempty"`
	DefaultBranch     string     `json:"default_branch,omitempty"       yaml:"default_branch,omitempty"`
	Visibility        string     `json:"visibility,omitempty"           yaml:"visibility,omitempty"`
	WebURL            string     `json:"web_url,omitempty"              yaml:"web_url,omitempty"`
	SSHURLToRepo      string     `json:"ssh_url_to_repo,omitempty"      yaml:"ssh_url_to_repo,omitempty"`
	HTTPURLToRepo     string     `json:"http_url_to_repo,omitempty"     yaml:"http_url_to_repo,omitempty"`
	Namespace         *Namespace `json:"namespace,omitempty"            yaml:"namespace,omitempty"`
	Owner             *User      `json:"owner,omitempty"                yaml:"owner,omitempty"`
	Archived          bool       `json:"archived,omitempty"             yaml:"archived,omitempty"`
	IssuesEnabled     bool       `json:"issues_enabled,omitempty"       yaml:"issues_enabled,omitempty"`
	MergeRequestsEnabled bool    `json:"merge_requests_enabled,omitempty" yaml:"merge_requests_enabled,omitempty"`
	WikiEnabled       bool       `json:"wiki_enabled,omitempty"         yaml:"wiki_enabled,omitempty"`
	SnippetsEnabled   bool       `json:"snippets_enabled,omitempty"     yaml:"snippets_enabled,omitempty"`
	JobsEnabled       bool       `json:"jobs_enabled,omitempty"         yaml:"jobs_enabled,omitempty"`
	SharedRunnersEnabled bool    `json:"shared_runners_enabled,omitempty" yaml:"shared_runners_enabled,omitempty"`
	StarCount         int        `json:"star_count,omitempty"           yaml:"star_count,omitempty"`
	ForksCount        int        `json:"forks_count,omitempty"          yaml:"forks_count,omitempty"`
	CreatedAt         *time.Time `json:"created_at,omitempty"           yaml:"created_at,omitempty"`
	LastActivityAt    *time.Time `json:"last_activity_at,omitempty"     yaml:"last_activity_at,omitempty"`
}

// Upload represents a file uploaded to a project.
type Upload struct {
	Alt      string `json:"alt,omitempty" yaml:"alt,omitempty"`
	URL      string `json:"url"           yaml:"url"`
	Markdown string `json:"markdown"      yaml:"markdown"`
}

// Milestone represents a project milestone.
type Milestone struct {
	ID          int        `json:"id"                    yaml:"id"`
	IID         int        `json:"iid"                   yaml:"iid"`
	ProjectID   int        `json:"project_id"            yaml:"project_id"`
	Title       string     `json:"title"                 yaml:"title"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	State       string     `json:"state,omitempty"       yaml:"state,omitempty"`
	DueDate     string     `json:"due_date,omitempty"    yaml:"due_date,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"  yaml:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"  yaml:"updated_at,omitempty"`
}

// Label represents a project label.
type Label struct {
	Name              string `json:"name"                          yaml:"name"`
	Color             string `json:"color"                         yaml:"color"`
	Description       string `json:"description,omitempty"         yaml:"description,omitempty"`
	OpenIssuesCount   int    `json:"open_issues_count,omitempty"   yaml:"open_issues_count,omitempty"`
	ClosedIssuesCount int    `json:"closed_issues_count,omitempty" yaml:"closed_issues_count,omitempty"`
}

// Issue represents a project issue.
type Issue struct {
	ID          int        `json:"id"                    yaml:"id"`
	IID         int        `json:"iid"                   yaml:"iid"`
	ProjectID   int        `json:"project_id"            yaml:"project_id"`
	Title       string     `json:"title"                 yaml:"title"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	State       string     `json:"state"                 yaml:"state"`
	Labels      []string   `json:"labels,omitempty"      yaml:"labels,omitempty"`
	Milestone   *Milestone `json:"milestone,omitempty"   yaml:"milestone,omitempty"`
	Assignee    *User      `json:"assignee,omitempty"    yaml:"assignee,omitempty"`
	Author      *User      `json:"author,omitempty"      yaml:"author,omitempty"`
	WebURL      string     `json:"web_url,omitempty"     yaml:"web_url,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"  yaml:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"  yaml:"updated_at,omitempty"`
}

// MergeRequest represents a merge request.
type MergeRequest struct {
	ID              int        `json:"id"                          yaml:"id"`
	IID             int        `json:"iid"                         yaml:"iid"`
	ProjectID       int        `json:"project_id"                  yaml:"project_id"`
	TargetProjectID int        `json:"target_project_id,omitempty" yaml:"target_project_id,omitempty"`
	Title           string     `json:"title"                       yaml:"title"`
	Description     string     `json:"description,omitempty"       yaml:"description,omitempty"`
	State           string     `json:"state"                       yaml:"state"`
	MergeStatus     string     `json:"merge_status,omitempty"      yaml:"merge_status,omitempty"`
	SourceBranch    string     `json:"source_branch"               yaml:"source_branch"`
	TargetBranch    string     `json:"target_branch"               yaml:"target_branch"`
	SHA             string     `json:"sha,omitempty"               yaml:"sha,omitempty"`
	Labels          []string   `json:"labels,omitempty"            yaml:"labels,omitempty"`
	Milestone       *Milestone `json:"milestone,omitempty"         yaml:"milestone,omitempty"`
	Assignee        *User      `json:"assignee,omitempty"          yaml:"assignee,omitempty"`
	Author          *User      `json:"author,omitempty"            yaml:"author,omitempty"`
	WebURL          string     `json:"web_url,omitempty"           yaml:"web_url,omitempty"`
	CreatedAt       *time.Time `json:"created_at,omitempty"        yaml:"created_at,omitempty"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"        yaml:"updated_at,omitempty"`
}

// Commit represents a repository commit.
type Commit struct {
	ID             string     `json:"id"                        yaml:"id"`
	ShortID        string     `json:"short_id,omitempty"        yaml:"short_id,omitempty"`
	Title          string     `json:"title"                     yaml:"title"`
	Message        string     `json:"message,omitempty"         yaml:"message,omitempty"`
	AuthorName     string     `json:"author_name,omitempty"     yaml:"author_name,omitempty"`
	AuthorEmail    string     `json:"author_email,omitempty"    yaml:"author_email,omitempty"`
	CreatedAt      *time.Time `json:"created_at,omitempty"      yaml:"created_at,omitempty"`
	CommittedDate  *time.Time `json:"committed_date,omitempty"  yaml:"committed_date,omitempty"`
	AuthoredDate   *time.Time `json:"authored_date,omitempty"   yaml:"authored_date,omitempty"`
	ParentIDs      []string   `json:"parent_ids,omitempty"      yaml:"parent_ids,omitempty"`
}

// CommitDiff represents one changed file of a commit or comparison.
type CommitDiff struct {
	OldPath     string `json:"old_path"               yaml:"old_path"`
	NewPath     string `json:"new_path"               yaml:"new_path"`
	AMode       string `json:"a_mode,omitempty"       yaml:"a_mode,omitempty"`
	BMode       string `json:"b_mode,omitempty"       yaml:"b_mode,omitempty"`
	Diff        string `json:"diff,omitempty"         yaml:"diff,omitempty"`
	NewFile     bool   `json:"new_file,omitempty"     yaml:"new_file,omitempty"`
	RenamedFile bool   `json:"renamed_file,omitempty" yaml:"renamed_file,omitempty"`
	DeletedFile bool   `json:"deleted_file,omitempty" yaml:"deleted_file,omitempty"`
}

// Compare represents the result of comparing two refs.
type Compare struct {
	Commit         *Commit      `json:"commit,omitempty"          yaml:"commit,omitempty"`
	Commits        []Commit     `json:"commits,omitempty"         yaml:"commits,omitempty"`
	Diffs          []CommitDiff `json:"diffs,omitempty"           yaml:"diffs,omitempty"`
	CompareTimeout bool         `json:"compare_timeout,omitempty" yaml:"compare_timeout,omitempty"`
	CompareSameRef bool         `json:"compare_same_ref,omitempty" yaml:"compare_same_ref,omitempty"`
}

// Branch represents a repository branch.
type Branch struct {
	Name               string  `json:"name"                           yaml:"name"`
	Merged             bool    `json:"merged,omitempty"               yaml:"merged,omitempty"`
	Protected          bool    `json:"protected,omitempty"            yaml:"protected,omitempty"`
	DevelopersCanPush  bool    `json:"developers_can_push,omitempty"  yaml:"developers_can_push,omitempty"`
	DevelopersCanMerge bool    `json:"developers_can_merge,omitempty" yaml:"developers_can_merge,omitempty"`
	Commit             *Commit `json:"commit,omitempty"               yaml:"commit,omitempty"`
}

// Tag represents a repository tag.
type Tag struct {
	Name    string  `json:"name"              yaml:"name"`
	Message string  `json:"message,omitempty" yaml:"message,omitempty"`
	Commit  *Commit `json:"commit,omitempty"  yaml:"commit,omitempty"`
}

// RepositoryFile represents a file fetched through the files endpoint. The
// content is base64-encoded on the wire.
type RepositoryFile struct {
	FileName     string `json:"file_name"     yaml:"file_name"`
	FilePath     string `json:"file_path"     yaml:"file_path"`
	Size         int    `json:"size"          yaml:"size"`
	Encoding     string `json:"encoding"      yaml:"encoding"`
	Content      string `json:"content"       yaml:"content"`
	Ref          string `json:"ref"           yaml:"ref"`
	BlobID       string `json:"blob_id"       yaml:"blob_id"`
	CommitID     string `json:"commit_id"     yaml:"commit_id"`
	LastCommitID string `json:"last_commit_id" yaml:"last_commit_id"`
}

// ProjectHook represents a project webhook.
type ProjectHook struct {
	ID                    int        `json:"id"                                yaml:"id"`
	URL                   string     `json:"url"                               yaml:"url"`
	ProjectID             int        `json:"project_id"                        yaml:"project_id"`
	PushEvents            bool       `json:"push_events,omitempty"             yaml:"push_events,omitempty"`
	IssuesEvents          bool       `json:"issues_events,omitempty"           yaml:"issues_events,omitempty"`
	MergeRequestsEvents   bool       `json:"merge_requests_events,omitempty"   yaml:"merge_requests_events,omitempty"`
	TagPushEvents         bool       `json:"tag_push_events,omitempty"         yaml:"tag_push_events,omitempty"`
	NoteEvents            bool       `json:"note_events,omitempty"             yaml:"note_events,omitempty"`
	JobEvents             bool       `json:"job_events,omitempty"              yaml:"job_events,omitempty"`
	PipelineEvents        bool       `json:"pipeline_events,omitempty"         yaml:"pipeline_events,omitempty"`
	EnableSSLVerification bool       `json:"enable_ssl_verification,omitempty" yaml:"enable_ssl_verification,omitempty"`
	CreatedAt             *time.Time `json:"created_at,omitempty"              yaml:"created_at,omitempty"`
}

// DeployKey represents a project deploy key.
type DeployKey struct {
	ID        int        `json:"id"                   yaml:"id"`
	Title     string     `json:"title"                yaml:"title"`
	Key       string     `json:"key"                  yaml:"key"`
	CanPush   bool       `json:"can_push,omitempty"   yaml:"can_push,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// Option structs below render themselves as Query fragments. Nil pointer
// fields are omitted entirely; false booleans still render as "false".

// CreateUserOptions holds the parameters for creating a user.
type CreateUserOptions struct {
	Email            string
	Password         *string
	Username         *string
	Name             *string
	Skype            *string
	LinkedIn         *string
	Twitter          *string
	WebsiteURL       *string
	ProjectsLimit    *int
	ExternUID        *string
	Provider         *string
	Bio              *string
	Admin            *bool
	CanCreateGroup   *bool
	SkipConfirmation *bool
}

// ToQuery renders the options in wire parameter order.
func (o *CreateUserOptions) ToQuery() *Query {
	query := NewQuery().Add("email", o.Email)

	if o.SkipConfirmation != nil {
		confirm := !*o.SkipConfirmation
		query.AddBool("confirm", confirm)
	}

	return query.
		AddOptional("password", o.Password).
		AddOptional("username", o.Username).
		AddOptional("name", o.Name).
		AddOptional("skype", o.Skype).
		AddOptional("linkedin", o.LinkedIn).
		AddOptional("twitter", o.Twitter).
		AddOptional("website_url", o.WebsiteURL).
		AddOptionalInt("projects_limit", o.ProjectsLimit).
		AddOptional("extern_uid", o.ExternUID).
		AddOptional("provider", o.Provider).
		AddOptional("bio", o.Bio).
		AddOptionalBool("admin", o.Admin).
		AddOptionalBool("can_create_group", o.CanCreateGroup)
}

// UpdateUserOptions holds the parameters for updating a user.
type UpdateUserOptions struct {
	Email          *string
	Password       *string
	Username       *string
	Name           *string
	Skype          *string
	LinkedIn       *string
	Twitter        *string
	WebsiteURL     *string
	ProjectsLimit  *int
	ExternUID      *string
	Provider       *string
	Bio            *string
	Admin          *bool
	CanCreateGroup *bool
}

// ToQuery renders the options in wire parameter order.
func (o *UpdateUserOptions) ToQuery() *Query {
	return NewQuery().
		AddOptional("email", o.Email).
		AddOptional("password", o.Password).
		AddOptional("username", o.Username).
		AddOptional("name", o.Name).
		AddOptional("skype", o.Skype).
		AddOptional("linkedin", o.LinkedIn).
		AddOptional("twitter", o.Twitter).
		AddOptional("website_url", o.WebsiteURL).
		AddOptionalInt("projects_limit", o.ProjectsLimit).
		AddOptional("extern_uid", o.ExternUID).
		AddOptional("provider", o.Provider).
		AddOptional("bio", o.Bio).
		AddOptionalBool("admin", o.Admin).
		AddOptionalBool("can_create_group", o.CanCreateGroup)
}

// ListGroupsOptions holds the parameters for listing groups.
type ListGroupsOptions struct {
	// Sudo lists groups visible to another user (administrators only).
	Sudo *string
	Page *PageOptions
}

// CreateGroupOptions holds the parameters for creating a group.
type CreateGroupOptions struct {
	Name       string
	Path       string
	LdapCn     *string
	LdapAccess *AccessLevel
	// SudoUserID creates the group on behalf of another user
	// (administrators only).
	SudoUserID *int
}

// ToQuery renders the options in wire parameter order.
func (o *CreateGroupOptions) ToQuery() *Query {
	query := NewQuery().
		Add("name", o.Name).
		Add("path", o.Path).
		AddOptional("ldap_cn", o.LdapCn)

	if o.LdapAccess != nil {
		query.AddInt("ldap_access", int(*o.LdapAccess))
	}

	return query.AddOptionalInt("sudo", o.SudoUserID)
}

// ListProjectsOptions holds the parameters for listing projects.
type ListProjectsOptions struct {
	Search     *string
	Archived   *bool
	Visibility *string
	OrderBy    *string
	Sort       *string
	Page       *PageOptions
}

// ToQuery renders the options in wire parameter order.
func (o *ListProjectsOptions) ToQuery() *Query {
	return NewQuery().
		AddOptional("search", o.Search).
		AddOptionalBool("archived", o.Archived).
		AddOptional("visibility", o.Visibility).
		AddOptional("order_by", o.OrderBy).
		AddOptional("sort", o.Sort)
}

// CreateProjectOptions holds the parameters for creating a project.
type CreateProjectOptions struct {
	Name                 string
	Path                 *string
	NamespaceID          *int
	Description          *string
	Visibility           *string
	DefaultBranch        *string
	IssuesEnabled        *bool
	MergeRequestsEnabled *bool
	WikiEnabled          *bool
	SnippetsEnabled      *bool
	JobsEnabled          *bool
	ImportURL            *string
}

// ToQuery renders the options in wire parameter order.
func (o *CreateProjectOptions) ToQuery() *Query {
	return NewQuery().
		Add("name", o.Name).
		AddOptional("path", o.Path).
		AddOptionalInt("namespace_id", o.NamespaceID).
		AddOptional("description", o.Description).
		AddOptional("visibility", o.Visibility).
		AddOptional("default_branch", o.DefaultBranch).
		AddOptionalBool("issues_enabled", o.IssuesEnabled).
		AddOptionalBool("merge_requests_enabled", o.MergeRequestsEnabled).
		AddOptionalBool("wiki_enabled", o.WikiEnabled).
		AddOptionalBool("snippets_enabled", o.SnippetsEnabled).
		AddOptionalBool("jobs_enabled", o.JobsEnabled).
		AddOptional("import_url", o.ImportURL)
}

// UpdateProjectOptions holds the parameters for updating a project.
type UpdateProjectOptions struct {
	Name                 *string
	Description          *string
	DefaultBranch        *string
	Visibility           *string
	IssuesEnabled        *bool
	MergeRequestsEnabled *bool
	WikiEnabled          *bool
	SnippetsEnabled      *bool
}

// ToQuery renders the options in wire parameter order.
func (o *UpdateProjectOptions) ToQuery() *Query {
	return NewQuery().
		AddOptional("name", o.Name).
		AddOptional("description", o.Description).
		AddOptional("default_branch", o.DefaultBranch).
		AddOptional("visibility", o.Visibility).
		AddOptionalBool("issues_enabled", o.IssuesEnabled).
		AddOptionalBool("merge_requests_enabled", o.MergeRequestsEnabled).
		AddOptionalBool("wiki_enabled", o.WikiEnabled).
		AddOptionalBool("snippets_enabled", o.SnippetsEnabled)
}

// ListIssuesOptions holds the parameters for listing issues.
type ListIssuesOptions struct {
	State     *string
	Labels    *string
	Milestone *string
	OrderBy   *string
	Sort      *string
	Page      *PageOptions
}

// ToQuery renders the options in wire parameter order.
func (o *ListIssuesOptions) ToQuery() *Query {
	return NewQuery().
		AddOptional("state", o.State).
		AddOptional("labels", o.Labels).
		AddOptional("milestone", o.Milestone).
		AddOptional("order_by", o.OrderBy).
		AddOptional("sort", o.Sort)
}

// CreateIssueOptions holds the parameters for creating an issue.
type CreateIssueOptions struct {
	Title       string
	Description *string
	AssigneeID  *int
	MilestoneID *int
	// Labels is a comma-separated list of label names.
	Labels *string
}

// ToQuery renders the options in wire parameter order.
func (o *CreateIssueOptions) ToQuery() *Query {
	return NewQuery().
		Add("title", o.Title).
		AddOptional("description", o.Description).
		AddOptionalInt("assignee_id", o.AssigneeID).
		AddOptionalInt("milestone_id", o.MilestoneID).
		AddOptional("labels", o.Labels)
}

// UpdateIssueOptions holds the parameters for updating an issue.
type UpdateIssueOptions struct {
	Title       *string
	Description *string
	AssigneeID  *int
	MilestoneID *int
	Labels      *string
	// StateEvent transitions the issue: "close" or "reopen".
	StateEvent *string
}

// ToQuery renders the options in wire parameter order.
func (o *UpdateIssueOptions) ToQuery() *Query {
	return NewQuery().
		AddOptional("title", o.Title).
		AddOptional("description", o.Description).
		AddOptionalInt("assignee_id", o.AssigneeID).
		AddOptionalInt("milestone_id", o.MilestoneID).
		AddOptional("labels", o.Labels).
		AddOptional("state_event", o.StateEvent)
}

// ListMergeRequestsOptions holds the parameters for listing merge requests.
type ListMergeRequestsOptions struct {
	// State filters by "opened", "closed", "merged" or "all".
	State   *string
	OrderBy *string
	Sort    *string
	Page    *PageOptions
}

// ToQuery renders the options in wire parameter order.
func (o *ListMergeRequestsOptions) ToQuery() *Query {
	return NewQuery().
		AddOptional("state", o.State).
		AddOptional("order_by", o.OrderBy).
		AddOptional("sort", o.Sort)
}

// CreateMergeRequestOptions holds the parameters for creating a merge
// request.
type CreateMergeRequestOptions struct {
	SourceBranch    string
	TargetBranch    string
	Title           string
	Description     *string
	AssigneeID      *int
	TargetProjectID *int
	Labels          *string
}

// ToQuery renders the options in wire parameter order.
func (o *CreateMergeRequestOptions) ToQuery() *Query {
	return NewQuery().
		Add("source_branch", o.SourceBranch).
		Add("target_branch", o.TargetBranch).
		Add("title", o.Title).
		AddOptional("description", o.Description).
		AddOptionalInt("assignee_id", o.AssigneeID).
		AddOptionalInt("target_project_id", o.TargetProjectID).
		AddOptional("labels", o.Labels)
}

// UpdateMergeRequestOptions holds the parameters for updating a merge
// request.
type UpdateMergeRequestOptions struct {
	TargetBranch *string
	Title        *string
	Description  *string
	AssigneeID   *int
	Labels       *string
	// StateEvent transitions the merge request: "close" or "reopen".
	StateEvent *string
}

// ToQuery renders the options in wire parameter order.
func (o *UpdateMergeRequestOptions) ToQuery() *Query {
	return NewQuery().
		AddOptional("target_branch", o.TargetBranch).
		AddOptional("title", o.Title).
		AddOptional("description", o.Description).
		AddOptionalInt("assignee_id", o.AssigneeID).
		AddOptional("labels", o.Labels).
		AddOptional("state_event", o.StateEvent)
}

// AcceptMergeRequestOptions holds the parameters for accepting a merge
// request.
type AcceptMergeRequestOptions struct {
	MergeCommitMessage        *string
	ShouldRemoveSourceBranch  *bool
	MergeWhenPipelineSucceeds *bool
}

// ToQuery renders the options in wire parameter order.
func (o *AcceptMergeRequestOptions) ToQuery() *Query {
	return NewQuery().
		AddOptional("merge_commit_message", o.MergeCommitMessage).
		AddOptionalBool("should_remove_source_branch", o.ShouldRemoveSourceBranch).
		AddOptionalBool("merge_when_pipeline_succeeds", o.MergeWhenPipelineSucceeds)
}

// CreateLabelOptions holds the parameters for creating a label.
type CreateLabelOptions struct {
	Name        string
	Color       string
	Description *string
}

// ToQuery renders the options in wire parameter order.
func (o *CreateLabelOptions) ToQuery() *Query {
	return NewQuery().
		Add("name", o.Name).
		Add("color", o.Color).
		AddOptional("description", o.Description)
}

// UpdateLabelOptions holds the parameters for updating a label.
type UpdateLabelOptions struct {
	Name        string
	NewName     *string
	Color       *string
	Description *string
}

// ToQuery renders the options in wire parameter order.
func (o *UpdateLabelOptions) ToQuery() *Query {
	return NewQuery().
		Add("name", o.Name).
		AddOptional("new_name", o.NewName).
		AddOptional("color", o.Color).
		AddOptional("description", o.Description)
}

// CreateMilestoneOptions holds the parameters for creating a milestone.
type CreateMilestoneOptions struct {
	Title       string
	Description *string
	DueDate     *string
}

// ToQuery renders the options in wire parameter order.
func (o *CreateMilestoneOptions) ToQuery() *Query {
	return NewQuery().
		Add("title", o.Title).
		AddOptional("description", o.Description).
		AddOptional("due_date", o.DueDate)
}

// UpdateMilestoneOptions holds the parameters for updating a milestone.
type UpdateMilestoneOptions struct {
	Title       *string
	Description *string
	DueDate     *string
	// StateEvent transitions the milestone: "activate" or "close".
	StateEvent *string
}

// ToQuery renders the options in wire parameter order.
func (o *UpdateMilestoneOptions) ToQuery() *Query {
	return NewQuery().
		AddOptional("title", o.Title).
		AddOptional("description", o.Description).
		AddOptional("due_date", o.DueDate).
		AddOptional("state_event", o.StateEvent)
}

// ListCommitsOptions holds the parameters for listing commits.
type ListCommitsOptions struct {
	// RefName is the branch or tag to list commits of.
	RefName *string
	// Path restricts commits to those touching a file path.
	Path *string
	Page *PageOptions
}

// ToQuery renders the options in wire parameter order.
func (o *ListCommitsOptions) ToQuery() *Query {
	return NewQuery().
		AddOptional("ref_name", o.RefName).
		AddOptional("path", o.Path)
}

// CreateTagOptions holds the parameters for creating a tag.
type CreateTagOptions struct {
	TagName string
	Ref     string
	Message *string
}

// ToQuery renders the options in wire parameter order.
func (o *CreateTagOptions) ToQuery() *Query {
	return NewQuery().
		Add("tag_name", o.TagName).
		Add("ref", o.Ref).
		AddOptional("message", o.Message)
}

// AddProjectHookOptions holds the parameters for adding or editing a
// project webhook.
type AddProjectHookOptions struct {
	URL                   string
	PushEvents            *bool
	IssuesEvents          *bool
	MergeRequestsEvents   *bool
	TagPushEvents         *bool
	NoteEvents            *bool
	JobEvents             *bool
	PipelineEvents        *bool
	EnableSSLVerification *bool
	Token                 *string
}

// ToQuery renders the options in wire parameter order.
func (o *AddProjectHookOptions) ToQuery() *Query {
	return NewQuery().
		Add("url", o.URL).
		AddOptionalBool("push_events", o.PushEvents).
		AddOptionalBool("issues_events", o.IssuesEvents).
		AddOptionalBool("merge_requests_events", o.MergeRequestsEvents).
		AddOptionalBool("tag_push_events", o.TagPushEvents).
		AddOptionalBool("note_events", o.NoteEvents).
		AddOptionalBool("job_events", o.JobEvents).
		AddOptionalBool("pipeline_events", o.PipelineEvents).
		AddOptionalBool("enable_ssl_verification", o.EnableSSLVerification).
		AddOptional("token", o.Token)
}

// AddDeployKeyOptions holds the parameters for adding a deploy key.
type AddDeployKeyOptions struct {
	Title   string
	Key     string
	CanPush *bool
}

// ToQuery renders the options in wire parameter order.
func (o *AddDeployKeyOptions) ToQuery() *Query {
	return NewQuery().
		Add("title", o.Title).
		Add("key", o.Key).
		AddOptionalBool("can_push", o.CanPush)
}

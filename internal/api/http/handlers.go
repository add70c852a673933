package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/mkaczmarek/githubfacade/internal/app"
)

// Default org/repo pair served by the github-data endpoint when the caller
// passes no query params.
const (
	defaultOrgValue  = "microsoft"
	defaultRepoValue = "vscode"
)

// Service provides github data for all handlers.
//go:generate mockgen -destination mock/service.go -package mock github.com/mkaczmarek/githubfacade/internal/api/http Service
type Service interface {
	Organization(ctx context.Context, org string) (app.Organization, error)
	Repository(ctx context.Context, owner string, name string) (app.Repository, error)
	User(ctx context.Context, username string) (app.User, error)
	UserRepositories(ctx context.Context, username string) ([]app.Repository, error)
	RepositoryCommits(ctx context.Context, owner string, name string) ([]app.Commit, error)
	RepositoryPullRequests(ctx context.Context, owner string, name string) ([]app.PullRequest, error)
	RepositoryIssues(ctx context.Context, owner string, name string) ([]app.Issue, error)
}

type organizationPayload struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PublicRepos int    `json:"public_repos"`
	HTMLURL     string `json:"html_url"`
}

func newOrganizationPayload(o app.Organization) organizationPayload {
	return organizationPayload{
		Login:       o.Login,
		Name:        o.Name,
		Description: o.Description,
		PublicRepos: o.PublicRepos,
		HTMLURL:     o.HTMLURL,
	}
}

type repositoryPayload struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Stars       int    `json:"stargazers_count"`
	Forks       int    `json:"forks_count"`
	HTMLURL     string `json:"html_url"`
	Private     bool   `json:"private"`
	Fork        bool   `json:"fork"`
	UpdatedAt   string `json:"updated_at"`
}

func newRepositoryPayload(r app.Repository) repositoryPayload {
	return repositoryPayload{
		ID:          r.ID,
		Name:        r.Name,
		FullName:    r.FullName,
		Description: r.Description,
		Language:    r.Language,
		Stars:       r.Stars,
		Forks:       r.Forks,
		HTMLURL:     r.HTMLURL,
		Private:     r.Private,
		Fork:        r.Fork,
		UpdatedAt:   r.UpdatedAt,
	}
}

func newRepositoriesPayload(rs []app.Repository) []repositoryPayload {
	payload := make([]repositoryPayload, 0, len(rs))
	for _, r := range rs {
		payload = append(payload, newRepositoryPayload(r))
	}

	return payload
}

type userPayload struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	AvatarURL   string `json:"avatar_url"`
	Bio         string `json:"bio"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
}

func newUserPayload(u app.User) userPayload {
	return userPayload{
		Login:       u.Login,
		Name:        u.Name,
		AvatarURL:   u.AvatarURL,
		Bio:         u.Bio,
		PublicRepos: u.PublicRepos,
		Followers:   u.Followers,
		Following:   u.Following,
	}
}

type commitPayload struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Author  string `json:"author"`
	Date    string `json:"date"`
	URL     string `json:"url"`
}

func newCommitsPayload(cs []app.Commit) []commitPayload {
	payload := make([]commitPayload, 0, len(cs))
	for _, c := range cs {
		payload = append(payload, commitPayload{
			ID:      c.SHA,
			Message: c.Message,
			Author:  c.Author,
			Date:    c.Date,
			URL:     c.HTMLURL,
		})
	}

	return payload
}

type pullRequestPayload struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Status    string `json:"status"`
	URL       string `json:"url"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func newPullRequestsPayload(prs []app.PullRequest) []pullRequestPayload {
	payload := make([]pullRequestPayload, 0, len(prs))
	for _, pr := range prs {
		payload = append(payload, pullRequestPayload{
			ID:        strconv.Itoa(pr.Number),
			Title:     pr.Title,
			Author:    pr.Author,
			Status:    pr.State,
			URL:       pr.HTMLURL,
			CreatedAt: pr.CreatedAt,
			UpdatedAt: pr.UpdatedAt,
		})
	}

	return payload
}

type issuePayload struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Status    string `json:"status"`
	Priority  string `json:"priority"`
	URL       string `json:"url"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func newIssuesPayload(is []app.Issue) []issuePayload {
	payload := make([]issuePayload, 0, len(is))
	for _, i := range is {
		payload = append(payload, issuePayload{
			ID:        strconv.Itoa(i.Number),
			Title:     i.Title,
			Author:    i.Author,
			Status:    i.State,
			Priority:  i.Priority,
			URL:       i.HTMLURL,
			CreatedAt: i.CreatedAt,
			UpdatedAt: i.UpdatedAt,
		})
	}

	return payload
}

type statusPayload struct {
	Status string `json:"status"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// NewHealthHandler creates handlerfunc returning static status response.
// Never calls github.
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, statusPayload{Status: "ok"})
	}
}

// NewOrganizationHandler creates handlerfunc returning organization data.
func NewOrganizationHandler(
	getOrg func(*http.Request) string,
	service Service,
	l logrus.FieldLogger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, err := service.Organization(r.Context(), getOrg(r))
		if err != nil {
			writeError(w, err, l)
			return
		}

		writeJSON(w, http.StatusOK, newOrganizationPayload(o))
	}
}

// NewRepositoryHandler creates handlerfunc returning single repository data.
func NewRepositoryHandler(
	getParams func(*http.Request) (string, string),
	service Service,
	l logrus.FieldLogger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, name := getParams(r)

		repo, err := service.Repository(r.Context(), owner, name)
		if err != nil {
			writeError(w, err, l)
			return
		}

		writeJSON(w, http.StatusOK, newRepositoryPayload(repo))
	}
}

// NewUserHandler creates handlerfunc returning user profile data.
func NewUserHandler(
	getUsername func(*http.Request) string,
	service Service,
	l logrus.FieldLogger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := service.User(r.Context(), getUsername(r))
		if err != nil {
			writeError(w, err, l)
			return
		}

		writeJSON(w, http.StatusOK, newUserPayload(u))
	}
}

// NewUserRepositoriesHandler creates handlerfunc returning user's repositories.
func NewUserRepositoriesHandler(
	getUsername func(*http.Request) string,
	service Service,
	l logrus.FieldLogger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rs, err := service.UserRepositories(r.Context(), getUsername(r))
		if err != nil {
			writeError(w, err, l)
			return
		}

		writeJSON(w, http.StatusOK, newRepositoriesPayload(rs))
	}
}

// NewCommitsHandler creates handlerfunc returning repository commits.
func NewCommitsHandler(
	getParams func(*http.Request) (string, string),
	service Service,
	l logrus.FieldLogger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, name := getParams(r)

		cs, err := service.RepositoryCommits(r.Context(), owner, name)
		if err != nil {
			writeError(w, err, l)
			return
		}

		writeJSON(w, http.StatusOK, newCommitsPayload(cs))
	}
}

// NewPullRequestsHandler creates handlerfunc returning repository pull requests.
func NewPullRequestsHandler(
	getParams func(*http.Request) (string, string),
	service Service,
	l logrus.FieldLogger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, name := getParams(r)

		prs, err := service.RepositoryPullRequests(r.Context(), owner, name)
		if err != nil {
			writeError(w, err, l)
			return
		}

		writeJSON(w, http.StatusOK, newPullRequestsPayload(prs))
	}
}

// NewIssuesHandler creates handlerfunc returning repository issues.
func NewIssuesHandler(
	getParams func(*http.Request) (string, string),
	service Service,
	l logrus.FieldLogger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, name := getParams(r)

		is, err := service.RepositoryIssues(r.Context(), owner, name)
		if err != nil {
			writeError(w, err, l)
			return
		}

		writeJSON(w, http.StatusOK, newIssuesPayload(is))
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = jsoniter.ConfigFastest.NewEncoder(w).Encode(payload)
}

// writeError maps app errors to http statuses:
// invalid request -> 400, connectivity/parse -> 502,
// upstream error -> upstream's own status code, anything else -> 500.
func writeError(w http.ResponseWriter, err error, l logrus.FieldLogger) {
	var ue app.UpstreamError

	switch {
	case app.IsInvalidRequestError(err):
		writeJSON(w, http.StatusBadRequest, errorPayload{Message: err.Error()})
	case errors.As(err, &ue):
		writeJSON(w, ue.StatusCode, errorPayload{Message: ue.Message})
	case app.IsConnectivityError(err), app.IsParseError(err):
		l.Errorf("github request failed: %v", err)
		writeJSON(w, http.StatusBadGateway, errorPayload{Message: "github is unreachable"})
	default:
		l.Errorf("handler failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorPayload{Message: "internal server error"})
	}
}

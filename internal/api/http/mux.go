package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// NewMux creates router for app's http server.
func NewMux(service Service, timeout time.Duration, l logrus.FieldLogger) *http.ServeMux {
	timeoutMiddleware := NewTimeoutMiddleware(timeout)

	repositoryHandler := NewRepositoryHandler(githubDataParams, service, l)
	organizationHandler := NewOrganizationHandler(
		func(r *http.Request) string {
			return r.URL.Query().Get("org")
		},
		service,
		l,
	)
	userHandler := NewUserHandler(
		func(r *http.Request) string {
			return r.URL.Query().Get("username")
		},
		service,
		l,
	)

	userPath := "/api/github/user/"
	userRouter := newUserRouter(userPath, service, l)

	m := http.NewServeMux()
	m.HandleFunc("/api/health", NewHealthHandler())
	m.HandleFunc("/api/github-data", timeoutMiddleware(repositoryHandler))
	m.HandleFunc("/api/github/org", timeoutMiddleware(organizationHandler))
	m.HandleFunc("/api/github/user", timeoutMiddleware(userHandler))
	m.HandleFunc(userPath, timeoutMiddleware(userRouter))

	return m
}

// githubDataParams resolves org/repo query params of the github-data endpoint,
// falling back to the documented defaults.
func githubDataParams(r *http.Request) (string, string) {
	org := r.URL.Query().Get("org")
	if org == "" {
		org = defaultOrgValue
	}
	repo := r.URL.Query().Get("repo")
	if repo == "" {
		repo = defaultRepoValue
	}

	return org, repo
}

// newUserRouter dispatches the path-parameterized user routes:
//
//	{username}/repositories
//	{username}/repository/{repo_name}
//	{username}/repository/{repo_name}/commits
//	{username}/repository/{repo_name}/pulls
//	{username}/repository/{repo_name}/issues
func newUserRouter(prefix string, service Service, l logrus.FieldLogger) http.HandlerFunc {
	username := func(r *http.Request) string {
		return userPathParts(r, prefix)[0]
	}
	repositoryParams := func(r *http.Request) (string, string) {
		parts := userPathParts(r, prefix)
		return parts[0], parts[2]
	}

	repositoriesHandler := NewUserRepositoriesHandler(username, service, l)
	repositoryHandler := NewRepositoryHandler(repositoryParams, service, l)
	commitsHandler := NewCommitsHandler(repositoryParams, service, l)
	pullsHandler := NewPullRequestsHandler(repositoryParams, service, l)
	issuesHandler := NewIssuesHandler(repositoryParams, service, l)

	return func(w http.ResponseWriter, r *http.Request) {
		parts := userPathParts(r, prefix)

		switch {
		case len(parts) == 2 && parts[1] == "repositories":
			repositoriesHandler(w, r)
		case len(parts) == 3 && parts[1] == "repository":
			repositoryHandler(w, r)
		case len(parts) == 4 && parts[1] == "repository":
			switch parts[3] {
			case "commits":
				commitsHandler(w, r)
			case "pulls":
				pullsHandler(w, r)
			case "issues":
				issuesHandler(w, r)
			default:
				http.NotFound(w, r)
			}
		default:
			http.NotFound(w, r)
		}
	}
}

func userPathParts(r *http.Request, prefix string) []string {
	trimmed := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, prefix), "/")
	return strings.Split(trimmed, "/")
}

package github

import (
	"encoding/json"
	"strings"

	"github.com/mkaczmarek/githubfacade/internal/app"
)

// Response types below are the only place where github's field names are read.
// Renames in the upstream api surface here and nowhere else.

type responseUser struct {
	Login string `json:"login"`
}

type organizationResponse struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PublicRepos int    `json:"public_repos"`
	HTMLURL     string `json:"html_url"`
}

func (r organizationResponse) ToOrganization() app.Organization {
	return app.Organization{
		Login:       r.Login,
		Name:        r.Name,
		Description: r.Description,
		PublicRepos: r.PublicRepos,
		HTMLURL:     r.HTMLURL,
	}
}

type repositoryResponse struct {
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

func (r repositoryResponse) ToRepository() app.Repository {
	return app.Repository{
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

type repositoriesResponse []repositoryResponse

func (rs repositoriesResponse) ToRepositories() []app.Repository {
	result := make([]app.Repository, 0, len(rs))
	for _, r := range rs {
		result = append(result, r.ToRepository())
	}

	return result
}

type userResponse struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	AvatarURL   string `json:"avatar_url"`
	Bio         string `json:"bio"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
}

func (r userResponse) ToUser() app.User {
	return app.User{
		Login:       r.Login,
		Name:        r.Name,
		AvatarURL:   r.AvatarURL,
		Bio:         r.Bio,
		PublicRepos: r.PublicRepos,
		Followers:   r.Followers,
		Following:   r.Following,
	}
}

type commitsResponse []struct {
	SHA    string `json:"sha"`
	Commit struct {
		Message string `json:"message"`
		Author  struct {
			Name string `json:"name"`
			Date string `json:"date"`
		} `json:"author"`
	} `json:"commit"`
	HTMLURL string `json:"html_url"`
}

func (cs commitsResponse) ToCommits() []app.Commit {
	result := make([]app.Commit, 0, len(cs))
	for _, c := range cs {
		sha := c.SHA
		if len(sha) > 7 {
			sha = sha[:7]
		}
		result = append(result, app.Commit{
			SHA:     sha,
			Message: c.Commit.Message,
			Author:  c.Commit.Author.Name,
			Date:    c.Commit.Author.Date,
			HTMLURL: c.HTMLURL,
		})
	}

	return result
}

type pullRequestsResponse []struct {
	Number    int          `json:"number"`
	Title     string       `json:"title"`
	User      responseUser `json:"user"`
	State     string       `json:"state"`
	HTMLURL   string       `json:"html_url"`
	CreatedAt string       `json:"created_at"`
	UpdatedAt string       `json:"updated_at"`
}

func (prs pullRequestsResponse) ToPullRequests() []app.PullRequest {
	result := make([]app.PullRequest, 0, len(prs))
	for _, pr := range prs {
		result = append(result, app.PullRequest{
			Number:    pr.Number,
			Title:     pr.Title,
			Author:    pr.User.Login,
			State:     pr.State,
			HTMLURL:   pr.HTMLURL,
			CreatedAt: pr.CreatedAt,
			UpdatedAt: pr.UpdatedAt,
		})
	}

	return result
}

type issuesResponse []struct {
	Number int          `json:"number"`
	Title  string       `json:"title"`
	User   responseUser `json:"user"`
	State  string       `json:"state"`
	Labels []struct {
		Name string `json:"name"`
	} `json:"labels"`
	// Present only for entries that are really pull requests.
	PullRequest json.RawMessage `json:"pull_request"`
	HTMLURL     string          `json:"html_url"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

func (is issuesResponse) ToIssues() []app.Issue {
	result := make([]app.Issue, 0, len(is))
	for _, i := range is {
		if len(i.PullRequest) > 0 {
			continue
		}

		priority := "medium"
		for _, l := range i.Labels {
			name := strings.ToLower(l.Name)
			if strings.Contains(name, "high") {
				priority = "high"
				break
			}
			if strings.Contains(name, "low") {
				priority = "low"
			}
		}

		result = append(result, app.Issue{
			Number:    i.Number,
			Title:     i.Title,
			Author:    i.User.Login,
			State:     i.State,
			Priority:  priority,
			HTMLURL:   i.HTMLURL,
			CreatedAt: i.CreatedAt,
			UpdatedAt: i.UpdatedAt,
		})
	}

	return result
}

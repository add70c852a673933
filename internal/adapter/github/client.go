package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"

	"github.com/mkaczmarek/githubfacade/internal/app"
)

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client returns data from the github rest api.
// This struct is an adapter for app.GithubClient.
//go:generate mockgen -destination ../../app/mock/githubcli.go -package mock github.com/mkaczmarek/githubfacade/internal/app GithubClient
type Client struct {
	doer      HTTPDoer
	address   string
	authToken string

	listPerPage     int
	responseMaxSize int
}

var _ app.GithubClient = &Client{}

// NewClient creates new github client.
// authToken is optional; when empty, requests are unauthenticated.
func NewClient(doer HTTPDoer, address string, authToken string) *Client {
	c := Client{
		doer:      doer,
		address:   address,
		authToken: authToken,

		listPerPage:     10,
		responseMaxSize: 1024 * 1024 * 10,
	}

	return &c
}

// Organization returns organization data by its login name.
func (c *Client) Organization(ctx context.Context, org string) (app.Organization, error) {
	body, err := c.get(ctx, fmt.Sprintf("/orgs/%s", org), nil)
	if err != nil {
		return app.Organization{}, err
	}

	var resp organizationResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return app.Organization{}, app.ParseError(fmt.Sprintf("unmarshalling response: %v", err))
	}

	return resp.ToOrganization(), nil
}

// Repository returns single repository data by owner login and repository name.
func (c *Client) Repository(ctx context.Context, owner string, name string) (app.Repository, error) {
	body, err := c.get(ctx, fmt.Sprintf("/repos/%s/%s", owner, name), nil)
	if err != nil {
		return app.Repository{}, err
	}

	var resp repositoryResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return app.Repository{}, app.ParseError(fmt.Sprintf("unmarshalling response: %v", err))
	}

	return resp.ToRepository(), nil
}

// User returns user profile data by login name.
func (c *Client) User(ctx context.Context, login string) (app.User, error) {
	body, err := c.get(ctx, fmt.Sprintf("/users/%s", login), nil)
	if err != nil {
		return app.User{}, err
	}

	var resp userResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return app.User{}, app.ParseError(fmt.Sprintf("unmarshalling response: %v", err))
	}

	return resp.ToUser(), nil
}

// UserRepositories returns public repositories of given user.
func (c *Client) UserRepositories(ctx context.Context, login string) ([]app.Repository, error) {
	body, err := c.get(ctx, fmt.Sprintf("/users/%s/repos", login), nil)
	if err != nil {
		return nil, err
	}

	var resp repositoriesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, app.ParseError(fmt.Sprintf("unmarshalling response: %v", err))
	}

	return resp.ToRepositories(), nil
}

// Commits returns most recent commits of given repository.
func (c *Client) Commits(ctx context.Context, owner string, name string) ([]app.Commit, error) {
	body, err := c.get(ctx, fmt.Sprintf("/repos/%s/%s/commits", owner, name), c.listParams(nil))
	if err != nil {
		return nil, err
	}

	var resp commitsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, app.ParseError(fmt.Sprintf("unmarshalling response: %v", err))
	}

	return resp.ToCommits(), nil
}

// PullRequests returns most recent pull requests of given repository, in any state.
func (c *Client) PullRequests(ctx context.Context, owner string, name string) ([]app.PullRequest, error) {
	v := make(url.Values)
	v.Set("state", "all")

	body, err := c.get(ctx, fmt.Sprintf("/repos/%s/%s/pulls", owner, name), c.listParams(v))
	if err != nil {
		return nil, err
	}

	var resp pullRequestsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, app.ParseError(fmt.Sprintf("unmarshalling response: %v", err))
	}

	return resp.ToPullRequests(), nil
}

// Issues returns most recent issues of given repository, in any state.
// Github's issues resource also lists pull requests; those entries are dropped.
func (c *Client) Issues(ctx context.Context, owner string, name string) ([]app.Issue, error) {
	v := make(url.Values)
	v.Set("state", "all")

	body, err := c.get(ctx, fmt.Sprintf("/repos/%s/%s/issues", owner, name), c.listParams(v))
	if err != nil {
		return nil, err
	}

	var resp issuesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, app.ParseError(fmt.Sprintf("unmarshalling response: %v", err))
	}

	return resp.ToIssues(), nil
}

func (c *Client) listParams(v url.Values) url.Values {
	if v == nil {
		v = make(url.Values)
	}
	v.Set("per_page", fmt.Sprintf("%d", c.listPerPage))
	return v
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u, err := url.Parse(c.address + path)
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}
	if params != nil {
		u.RawQuery = params.Encode()
	}

	httpReq, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating http request: %w", err)
	}

	return c.makeRequest(ctx, httpReq)
}

func (c *Client) makeRequest(ctx context.Context, req *http.Request) ([]byte, error) {
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.doer.Do(req.WithContext(ctx))
	if err != nil {
		return nil, app.ConnectivityError(fmt.Sprintf("doing http request: %v", err))
	}
	// Always drain body before close to allow connection reuse.
	// See: http://tleyden.github.io/blog/2016/11/21/tuning-the-go-http-client-library-for-load-testing/
	defer func() {
		_, _ = io.CopyN(ioutil.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	body, err := ioutil.ReadAll(io.LimitReader(resp.Body, int64(c.responseMaxSize)))
	if err != nil {
		return nil, app.ConnectivityError(fmt.Sprintf("reading http response body: %v", err))
	}

	if resp.StatusCode/100 != 2 {
		return nil, app.UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    upstreamMessage(body),
		}
	}

	return body, nil
}

// upstreamMessage extracts github's error message from an error response body.
func upstreamMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}

	return "github request failed"
}

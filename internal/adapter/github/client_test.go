package github

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/mkaczmarek/githubfacade/internal/app"
	"github.com/mkaczmarek/githubfacade/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Repository(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		doer      *mock.HTTPDoer
		owner     string
		repo      string
		want      app.Repository
		wantErr   func(error) bool
		wantErrAs string
	}{
		{
			name: "status ok, body ok",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusOK},
				Bodies: [][]byte{
					[]byte(`{
						"id": 41881900,
						"name": "vscode",
						"full_name": "microsoft/vscode",
						"description": "Visual Studio Code",
						"language": "TypeScript",
						"stargazers_count": 150000,
						"forks_count": 26000,
						"html_url": "https://github.com/microsoft/vscode",
						"private": false,
						"fork": false,
						"updated_at": "2020-05-01T10:00:00Z"
					}`),
				},
			},
			owner: "microsoft",
			repo:  "vscode",
			want: app.Repository{
				ID:          41881900,
				Name:        "vscode",
				FullName:    "microsoft/vscode",
				Description: "Visual Studio Code",
				Language:    "TypeScript",
				Stars:       150000,
				Forks:       26000,
				HTMLURL:     "https://github.com/microsoft/vscode",
				UpdatedAt:   "2020-05-01T10:00:00Z",
			},
		},
		{
			name: "status not found",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusNotFound},
				Bodies: [][]byte{
					[]byte(`{"message": "Not Found"}`),
				},
			},
			owner:   "microsoft",
			repo:    "nosuchrepo",
			wantErr: app.IsUpstreamError,
		},
		{
			name: "status server error",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusInternalServerError},
			},
			owner:   "microsoft",
			repo:    "vscode",
			wantErr: app.IsUpstreamError,
		},
		{
			name: "status ok, body malformed",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusOK},
				Bodies: [][]byte{
					[]byte(`{"id": `),
				},
			},
			owner:   "microsoft",
			repo:    "vscode",
			wantErr: app.IsParseError,
		},
		{
			name: "transport failure",
			doer: &mock.HTTPDoer{
				DoFunc: func(*http.Request) (*http.Response, error) {
					return nil, errors.New("connection reset by peer")
				},
			},
			owner:   "microsoft",
			repo:    "vscode",
			wantErr: app.IsConnectivityError,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(tt.doer, "https://fake", "token")
			got, err := c.Repository(context.Background(), tt.owner, tt.repo)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_RepositoryUpstreamStatusPreserved(t *testing.T) {
	t.Parallel()

	for _, status := range []int{
		http.StatusNotFound,
		http.StatusForbidden,
		http.StatusTooManyRequests,
	} {
		doer := &mock.HTTPDoer{
			Statuses: []int{status},
			Bodies:   [][]byte{[]byte(`{"message": "nope"}`)},
		}
		c := NewClient(doer, "https://fake", "")

		_, err := c.Repository(context.Background(), "octocat", "Hello-World")
		require.Error(t, err)

		var ue app.UpstreamError
		require.True(t, errors.As(err, &ue))
		assert.Equal(t, status, ue.StatusCode)
		assert.Equal(t, "nope", ue.Message)
	}
}

func TestClient_User(t *testing.T) {
	t.Parallel()

	doer := &mock.HTTPDoer{
		Statuses: []int{http.StatusOK},
		Bodies: [][]byte{
			[]byte(`{
				"login": "octocat",
				"name": "The Octocat",
				"avatar_url": "https://avatars.githubusercontent.com/u/583231",
				"bio": null,
				"public_repos": 8,
				"followers": 3938,
				"following": 9
			}`),
		},
	}
	c := NewClient(doer, "https://fake", "")

	got, err := c.User(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Equal(t, app.User{
		Login:       "octocat",
		Name:        "The Octocat",
		AvatarURL:   "https://avatars.githubusercontent.com/u/583231",
		PublicRepos: 8,
		Followers:   3938,
		Following:   9,
	}, got)

	require.Len(t, doer.Responses, 1)
	assert.Equal(t, "/users/octocat", doer.Responses[0].Request.URL.Path)
}

func TestClient_UserRepositories(t *testing.T) {
	t.Parallel()

	doer := &mock.HTTPDoer{
		Statuses: []int{http.StatusOK},
		Bodies: [][]byte{
			[]byte(`[
				{
					"id": 1296269,
					"name": "Hello-World",
					"full_name": "octocat/Hello-World",
					"stargazers_count": 80,
					"forks_count": 9,
					"fork": false
				}
			]`),
		},
	}
	c := NewClient(doer, "https://fake", "")

	got, err := c.UserRepositories(context.Background(), "octocat")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Hello-World", got[0].Name)
	assert.Equal(t, 80, got[0].Stars)

	require.Len(t, doer.Responses, 1)
	assert.Equal(t, "/users/octocat/repos", doer.Responses[0].Request.URL.Path)
}

func TestClient_ListQueryParams(t *testing.T) {
	t.Parallel()

	doer := &mock.HTTPDoer{
		Statuses: []int{http.StatusOK},
		Bodies:   [][]byte{[]byte(`[]`)},
	}
	c := NewClient(doer, "https://fake", "")

	_, err := c.PullRequests(context.Background(), "octocat", "Hello-World")
	require.NoError(t, err)

	require.Len(t, doer.Responses, 1)
	q := doer.Responses[0].Request.URL.Query()
	assert.Equal(t, "all", q.Get("state"))
	assert.Equal(t, "10", q.Get("per_page"))
}

func TestClient_AuthHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		token      string
		wantHeader string
	}{
		{
			name:       "token configured",
			token:      "secrettoken",
			wantHeader: "Bearer secrettoken",
		},
		{
			name:       "no token",
			token:      "",
			wantHeader: "",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			doer := &mock.HTTPDoer{
				Statuses: []int{http.StatusOK},
				Bodies:   [][]byte{[]byte(`{}`)},
			}
			c := NewClient(doer, "https://fake", tt.token)

			_, err := c.User(context.Background(), "octocat")
			require.NoError(t, err)

			require.Len(t, doer.Responses, 1)
			header := doer.Responses[0].Request.Header
			assert.Equal(t, tt.wantHeader, header.Get("Authorization"))
			assert.Equal(t, "application/vnd.github.v3+json", header.Get("Accept"))
		})
	}
}

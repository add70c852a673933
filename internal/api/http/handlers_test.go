package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/mkaczmarek/githubfacade/internal/api/http/mock"
	"github.com/mkaczmarek/githubfacade/internal/app"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewHealthHandler(t *testing.T) {
	t.Parallel()

	handler := NewHealthHandler()

	req, _ := http.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()

	handler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-type"))
	assert.Equal(t, `{"status":"ok"}`, strings.Trim(w.Body.String(), "\n"))
}

func TestNewRepositoryHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setupMock  func(*mock.MockService)
		url        string
		wantStatus int
		wantBody   string
	}{
		{
			name: "default params values",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					Repository(gomock.Any(), defaultOrgValue, defaultRepoValue).
					Return(
						app.Repository{
							ID:        41881900,
							Name:      "vscode",
							FullName:  "microsoft/vscode",
							Language:  "TypeScript",
							Stars:     150000,
							Forks:     26000,
							HTMLURL:   "https://github.com/microsoft/vscode",
							UpdatedAt: "2020-05-01T10:00:00Z",
						},
						nil,
					)
			},
			url:        "/api/github-data",
			wantStatus: http.StatusOK,
			wantBody:   `{"id":41881900,"name":"vscode","full_name":"microsoft/vscode","description":"","language":"TypeScript","stargazers_count":150000,"forks_count":26000,"html_url":"https://github.com/microsoft/vscode","private":false,"fork":false,"updated_at":"2020-05-01T10:00:00Z"}`,
		},
		{
			name: "params values from url query",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					Repository(gomock.Any(), "golang", "go").
					Return(app.Repository{ID: 23096959, Name: "go"}, nil)
			},
			url:        "/api/github-data?org=golang&repo=go",
			wantStatus: http.StatusOK,
			wantBody:   `{"id":23096959,"name":"go","full_name":"","description":"","language":"","stargazers_count":0,"forks_count":0,"html_url":"","private":false,"fork":false,"updated_at":""}`,
		},
		{
			name: "upstream not found is propagated",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					Repository(gomock.Any(), defaultOrgValue, defaultRepoValue).
					Return(app.Repository{}, app.UpstreamError{StatusCode: http.StatusNotFound, Message: "Not Found"})
			},
			url:        "/api/github-data",
			wantStatus: http.StatusNotFound,
			wantBody:   `{"message":"Not Found"}`,
		},
		{
			name: "connectivity error",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					Repository(gomock.Any(), defaultOrgValue, defaultRepoValue).
					Return(app.Repository{}, app.ConnectivityError("dial tcp: timeout"))
			},
			url:        "/api/github-data",
			wantStatus: http.StatusBadGateway,
			wantBody:   `{"message":"github is unreachable"}`,
		},
		{
			name: "service error",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					Repository(gomock.Any(), defaultOrgValue, defaultRepoValue).
					Return(app.Repository{}, errors.New("error"))
			},
			url:        "/api/github-data",
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"message":"internal server error"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := mock.NewMockService(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(s)
			}

			l := logrus.New()
			handler := NewRepositoryHandler(githubDataParams, s, l)

			req, _ := http.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()

			handler(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-type"))
			assert.Equal(t, tt.wantBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestNewUserHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setupMock  func(*mock.MockService)
		url        string
		wantStatus int
		wantBody   string
	}{
		{
			name: "missing username",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					User(gomock.Any(), "").
					Return(app.User{}, app.InvalidRequestError("username cannot be empty"))
			},
			url:        "/api/github/user",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"username cannot be empty"}`,
		},
		{
			name: "user not found",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					User(gomock.Any(), "nosuchuser").
					Return(app.User{}, app.UpstreamError{StatusCode: http.StatusNotFound, Message: "Not Found"})
			},
			url:        "/api/github/user?username=nosuchuser",
			wantStatus: http.StatusNotFound,
			wantBody:   `{"message":"Not Found"}`,
		},
		{
			name: "valid response",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					User(gomock.Any(), "octocat").
					Return(
						app.User{
							Login:       "octocat",
							Name:        "The Octocat",
							PublicRepos: 8,
							Followers:   3938,
							Following:   9,
						},
						nil,
					)
			},
			url:        "/api/github/user?username=octocat",
			wantStatus: http.StatusOK,
			wantBody:   `{"login":"octocat","name":"The Octocat","avatar_url":"","bio":"","public_repos":8,"followers":3938,"following":9}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := mock.NewMockService(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(s)
			}

			l := logrus.New()
			handler := NewUserHandler(
				func(r *http.Request) string {
					return r.URL.Query().Get("username")
				},
				s,
				l,
			)

			req, _ := http.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()

			handler(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestNewIssuesHandler(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockService(ctrl)
	s.EXPECT().
		RepositoryIssues(gomock.Any(), "octocat", "Hello-World").
		Return(
			[]app.Issue{
				{
					Number:    1,
					Title:     "Found a bug",
					Author:    "octocat",
					State:     "open",
					Priority:  "high",
					HTMLURL:   "https://github.com/octocat/Hello-World/issues/1",
					CreatedAt: "2011-04-22T13:33:48Z",
					UpdatedAt: "2011-04-22T13:33:48Z",
				},
			},
			nil,
		)

	handler := NewIssuesHandler(
		func(*http.Request) (string, string) {
			return "octocat", "Hello-World"
		},
		s,
		logrus.New(),
	)

	req, _ := http.NewRequest(http.MethodGet, "testurl", nil)
	w := httptest.NewRecorder()

	handler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(
		t,
		`[{"id":"1","title":"Found a bug","author":"octocat","status":"open","priority":"high","url":"https://github.com/octocat/Hello-World/issues/1","createdAt":"2011-04-22T13:33:48Z","updatedAt":"2011-04-22T13:33:48Z"}]`,
		strings.Trim(w.Body.String(), "\n"),
	)
}

package app

// Organization entity
type Organization struct {
	Login       string
	Name        string
	Description string
	PublicRepos int
	HTMLURL     string
}

// Repository entity
type Repository struct {
	ID          int
	Name        string
	FullName    string
	Description string
	Language    string
	Stars       int
	Forks       int
	HTMLURL     string
	Private     bool
	Fork        bool
	UpdatedAt   string
}

// User entity
type User struct {
	Login       string
	Name        string
	AvatarURL   string
	Bio         string
	PublicRepos int
	Followers   int
	Following   int
}

// Commit entity. SHA is abbreviated to 7 characters.
type Commit struct {
	SHA     string
	Message string
	Author  string
	Date    string
	HTMLURL string
}

// PullRequest entity
type PullRequest struct {
	Number    int
	Title     string
	Author    string
	State     string
	HTMLURL   string
	CreatedAt string
	UpdatedAt string
}

// Issue entity. Priority is derived from issue labels.
type Issue struct {
	Number    int
	Title     string
	Author    string
	State     string
	Priority  string
	HTMLURL   string
	CreatedAt string
	UpdatedAt string
}

package main

import (
	netHttp "net/http"

	"github.com/kelseyhightower/envconfig"
	"github.com/mkaczmarek/githubfacade/internal/adapter/github"
	"github.com/mkaczmarek/githubfacade/internal/api/http"
	"github.com/mkaczmarek/githubfacade/internal/app"
	"github.com/sirupsen/logrus"
)

func main() {
	l := logrus.New()
	l.Level = logrus.InfoLevel

	var conf Config
	if err := envconfig.Process("", &conf); err != nil {
		l.Fatalf("couldn't parse config: %v", err)
	}

	httpClient := &netHttp.Client{
		Timeout: conf.GithubTimeout,
	}

	githubClient := github.NewClient(
		httpClient,
		conf.GithubAPIAddress,
		conf.GithubAPIToken,
	)

	service := app.NewService(githubClient)

	mux := http.NewMux(service, conf.ServiceResponseTimeout, l.WithField("component", "mux"))
	server := http.NewServer(
		conf.HTTPServerAddress,
		conf.HTTPProfileServerAddress,
		mux,
		l.WithField("component", "httpServer"),
	)

	server.Run()
}

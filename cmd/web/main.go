package main

import (
	_ "embed"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tomz197/hk97/internal/config"
	"github.com/tomz197/hk97/internal/highscore"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
)

//go:embed index.html
var htmlPage string

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "hk97-web",
	})

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	sshHost := config.GetEnv("SSH_DISPLAY_HOST", "your-server.com")
	highScorePath := config.GetEnv("HK97_HIGHSCORE_FILE", "")

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, renderPage(sshHost, bestScore(highScorePath, logger)))
	})

	addr := fmt.Sprintf("%s:%s", host, port)
	logger.Info("starting web server", "url", "http://"+addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		logger.Fatal("server error", "err", err)
	}
}

// bestScore reads the high score the SSH server writes. The file is
// reopened on each request because another process owns it.
func bestScore(path string, logger *log.Logger) int {
	if path == "" {
		return 0
	}
	store, err := highscore.Open(path)
	if err != nil {
		logger.Warn("could not read high score", "err", err)
		return 0
	}
	return store.Best()
}

func renderPage(sshHost string, best int) string {
	return strings.NewReplacer(
		"{{.SSHHost}}", sshHost,
		"{{.HighScore}}", fmt.Sprint(best),
	).Replace(htmlPage)
}

package main

import (
	_ "embed"
	"html/template"
	"net"
	"net/http"
	"os"

	"github.com/charmbracelet/log"

	"github.com/tomz197/warpfield/internal/config"
	"github.com/tomz197/warpfield/internal/logging"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
)

//go:embed index.html
var htmlPage string

var page = template.Must(template.New("index").Parse(htmlPage))

type control struct {
	Key    string
	Action string
}

var controls = []control{
	{"W S / Up Down", "Thrust"},
	{"A D / Left Right", "Rotate"},
	{"Space", "Shoot"},
	{"1 / R", "Rockets"},
	{"2 / M", "Mines"},
	{"E (hold)", "Warp"},
	{"P / Esc", "Pause"},
	{"Q", "Quit"},
}

type landing struct {
	Host     string
	Port     string
	Controls []control
}

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatal("failed to load settings", "err", err)
	}
	logger, closer, err := logging.New(settings, os.Stderr)
	if err != nil {
		log.Fatal("failed to set up logging", "err", err)
	}
	defer closer.Close()

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	info := landing{
		Host:     config.GetEnv("SSH_DISPLAY_HOST", "your-server.com"),
		Port:     config.GetEnv("SSH_DISPLAY_PORT", settings.SSHPort),
		Controls: controls,
	}

	addr := net.JoinHostPort(host, port)
	logger.Info("starting web server", "addr", "http://"+addr)
	if err := http.ListenAndServe(addr, handler(info, logger)); err != nil {
		logger.Fatal("server error", "err", err)
	}
}

func handler(info landing, logger *log.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := page.Execute(w, info); err != nil {
			logger.Error("render landing page", "err", err)
		}
	})
	return mux
}

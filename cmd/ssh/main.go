package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/google/uuid"

	"github.com/tomz197/warpfield/internal/config"
	wlog "github.com/tomz197/warpfield/internal/logging"
	"github.com/tomz197/warpfield/internal/loop"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatal("failed to load settings", "err", err)
	}
	logger, closer, err := wlog.New(settings, os.Stderr)
	if err != nil {
		log.Fatal("failed to set up logging", "err", err)
	}
	defer closer.Close()

	workingDir, workErr := os.Getwd()
	if workErr != nil {
		logger.Warn("failed to get working directory", "err", workErr)
	}
	logger.Info("ssh config",
		"host", settings.SSHHost, "port", settings.SSHPort,
		"hostKey", settings.SSHHostKey, "workingDir", workingDir)

	sessions := newRegistry()
	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(settings.SSHHost, settings.SSHPort)),
		wish.WithMiddleware(
			gameMiddleware(settings, logger, sessions),
			activeterm.Middleware(),
			logging.StructuredMiddlewareWithLogger(logger, log.InfoLevel),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if settings.SSHHostKey != "" {
		opts = append(opts, wish.WithHostKeyPath(settings.SSHHostKey))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting ssh server", "addr", s.Addr)
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("shutting down server", "sessions", sessions.Len())

	// Every loop shows the shutdown banner for a moment and then returns.
	sessions.CancelAll()
	if !sessions.Wait(config.ShutdownNoticeTime + time.Second) {
		logger.Warn("sessions still running after shutdown notice", "sessions", sessions.Len())
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownGrace)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}

// gameMiddleware runs an independent game for every PTY session.
func gameMiddleware(settings config.Settings, logger *log.Logger, sessions *registry) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			pty, winCh, ok := sess.Pty()
			if !ok {
				fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
				return
			}

			id := uuid.New()
			sessLog := logger.With("session", id.String(), "user", sess.User())
			sessLog.Info("new game session",
				"terminal", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height,
				"remote", sess.RemoteAddr().String())

			ctx, cancel := context.WithCancel(sess.Context())
			sessions.Add(id, cancel)
			defer sessions.Remove(id)
			defer cancel()

			// Create a terminal size tracker that updates on window changes
			size := newSizeTracker(pty.Window.Width, pty.Window.Height)
			go func() {
				for win := range winCh {
					size.update(win.Width, win.Height)
				}
			}()

			err := loop.Run(ctx, bufio.NewReader(sess), sess, loop.Options{
				TermSizeFunc:         size.getSize,
				FPS:                  settings.TargetFPS,
				Seed:                 settings.Seed,
				Logger:               sessLog,
				InactivityWarn:       config.InactivityWarn,
				InactivityDisconnect: config.InactivityDisconnect,
			})
			if err != nil {
				sessLog.Error("game error", "err", err)
			}

			sessLog.Info("session ended")
			next(sess)
		}
	}
}

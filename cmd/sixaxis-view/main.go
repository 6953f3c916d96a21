// Command sixaxis-view serves a live web view of an attached
// DUALSHOCK3/SIXAXIS controller.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/thejpster/sixaxis"
	"github.com/thejpster/sixaxis/device"
	"github.com/thejpster/sixaxis/internal/hub"
	"github.com/thejpster/sixaxis/internal/server"
	"github.com/thejpster/sixaxis/internal/tray"
)

var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

func main() {
	pflag.String("device", "", "joystick device path (empty: first attached SIXAXIS)")
	pflag.String("addr", ":8080", "HTTP listen address")
	pflag.Int("poll-hz", 60, "state poll rate")
	pflag.Bool("tray", false, "show a system tray icon")
	pflag.Parse()

	viper.SetEnvPrefix("sixaxis")
	viper.AutomaticEnv()
	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		log.Fatalf("Binding flags: %v", err)
	}
	viper.SetConfigName("sixaxis-view")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatalf("Reading config: %v", err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, shutdownSignals...)

	pad := sixaxis.New(device.Locator(viper.GetString("device")))
	if err := pad.Open(); err != nil {
		log.Fatalf("Opening controller: %v", err)
	}

	h := hub.NewHub()
	go h.Run()

	hz := viper.GetInt("poll-hz")
	if hz <= 0 {
		hz = 60
	}
	broadcaster := hub.NewBroadcaster(h, pad, time.Second/time.Duration(hz))
	go broadcaster.Run(ctx)

	addr := viper.GetString("addr")
	srv := server.New(h, broadcaster, addr)
	serverErrCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrCh <- err
		}
	}()

	log.Printf("sixaxis-view started: http://localhost%s", addr)

	shutdownRequested := make(chan struct{})
	if viper.GetBool("tray") {
		go func() {
			t := tray.New("http://localhost"+addr, func() {
				close(shutdownRequested)
			})
			t.Run(tray.GetIcon())
		}()
	} else {
		log.Println("Press Ctrl+C to exit")
	}

	select {
	case <-sigCh:
		log.Println("Shutting down...")
		cancel()
	case <-shutdownRequested:
		log.Println("Shutdown requested from tray")
		cancel()
	case err := <-serverErrCh:
		log.Printf("HTTP server error: %v", err)
		cancel()
	}

	if err := pad.Close(); err != nil && !errors.Is(err, sixaxis.ErrNotOpen) {
		log.Printf("Closing controller: %v", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	log.Println("sixaxis-view stopped")
}

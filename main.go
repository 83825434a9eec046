package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/paypal-gateway.api.ch.gov.uk/config"
	"github.com/companieshouse/paypal-gateway.api.ch.gov.uk/handlers"
	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"
)

func main() {
	log.Namespace = "paypal-gateway.api.ch.gov.uk"

	cfg, err := config.Get()
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	router := mux.NewRouter()
	if err := handlers.Register(router, *cfg); err != nil {
		log.Error(err)
		os.Exit(1)
	}

	server := &http.Server{
		Addr:    cfg.BindAddr,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info("Starting paypal-gateway.api.ch.gov.uk service", log.Data{"bind_addr": cfg.BindAddr})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		log.Info("Shutting down paypal-gateway.api.ch.gov.uk service")
		return server.Shutdown(context.Background())
	})

	if err := group.Wait(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
	log.Trace("Exiting paypal-gateway.api.ch.gov.uk service")
}

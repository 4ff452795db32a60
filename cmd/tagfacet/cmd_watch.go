package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"tagfacet/internal/ui"
	"tagfacet/internal/watch"
	"time"
)

type WatchCmd struct {
	FilterFlags `embed:""`

	MetricsAddr string        `name:"metrics-addr" placeholder:"HOST:PORT" help:"Serve /metrics, /photos and /health on this address"`
	Debounce    time.Duration `default:"100ms" help:"Wait this long after the last change before reloading"`
}

func (cmd *WatchCmd) Run(g *Globals) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return cmd.run(ctx, g)
}

func (cmd *WatchCmd) run(ctx context.Context, g *Globals) error {
	s := g.NewSession()
	if err := cmd.apply(s); err != nil {
		return err
	}

	var mu sync.Mutex
	show := func() {
		mu.Lock()
		defer mu.Unlock()
		cat := s.Catalog()
		fmt.Fprint(g.Out, ui.RenderFacetPanel("Photos", s.CriteriaForDisplay()))
		fmt.Fprint(g.Out, g.Render.RenderResultList(resultView(cat, s.Photos(), s.Total())))
	}
	show()

	w, err := watch.NewCatalogWatcher(g.Store.Path(), func() error {
		cat, err := g.Store.Load()
		if g.Metrics != nil {
			g.Metrics.ObserveReload(err)
		}
		if err != nil {
			return err
		}
		s.ReplaceCatalog(cat)
		show()
		return nil
	}, watch.WithLogger(g.Log), watch.WithDebounce(cmd.Debounce))
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Close()

	if err := w.Start(); err != nil {
		return err
	}

	if cmd.MetricsAddr != "" {
		srv := &http.Server{
			Addr:              cmd.MetricsAddr,
			Handler:           newRouter(s, g.Registry),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				g.Log.Error("metrics server failed", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
		g.Log.Info("serving metrics", "addr", cmd.MetricsAddr)
	}

	<-ctx.Done()
	return nil
}

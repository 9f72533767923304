package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
	"github.com/ytbascii/ytbascii/icon"
	"github.com/ytbascii/ytbascii/key"
	"github.com/ytbascii/ytbascii/mirror"
	"github.com/ytbascii/ytbascii/util"
	"github.com/ytbascii/ytbascii/where"
)

func poolPath() string {
	return where.Mirrors()
}

// openManager loads the mirror pool configured for this invocation.
func openManager() *mirror.Manager {
	manager, err := mirror.Open(&mirror.Options{
		Path:            poolPath(),
		ProbeTimeout:    viper.GetDuration(key.MirrorsProbeTimeout),
		Staleness:       viper.GetDuration(key.MirrorsStaleness),
		Workers:         viper.GetInt(key.MirrorsWorkers),
		ReseedOnCorrupt: viper.GetBool(key.MirrorsReseedOnCorrupt),
	})
	handleErr(err)
	return manager
}

// refresh probes the pool when it is stale, or unconditionally when force is set.
// It reports whether any probe ran.
func refresh(ctx context.Context, manager *mirror.Manager, force bool) (bool, error) {
	now := time.Now()
	if !force && !manager.NeedsRefresh(now) {
		return false, nil
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking %s...", icon.Get(icon.Progress),
		util.Quantify(len(manager.Servers()), "mirror", "mirrors")))
	defer erase()

	if force {
		return true, manager.ForceRefresh(ctx, now)
	}
	return manager.Refresh(ctx, now)
}

// pickMirror runs the startup sequence: refresh if stale, then pick.
// When nothing is online according to data that was not just probed, it forces one refresh and retries.
func pickMirror(ctx context.Context, manager *mirror.Manager) (mirror.Server, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	probed, err := refresh(ctx, manager, false)
	if err != nil {
		return mirror.Server{}, err
	}

	server, err := manager.Pick()
	if errors.Is(err, mirror.ErrNoHealthyServer) && !probed {
		if _, err := refresh(ctx, manager, true); err != nil {
			return mirror.Server{}, err
		}
		server, err = manager.Pick()
	}

	if errors.Is(err, mirror.ErrNoHealthyServer) {
		return mirror.Server{}, fmt.Errorf("%w: all %s in %s are offline, add one with `ytbascii mirrors add <url>`",
			err, util.Quantify(len(manager.Servers()), "mirror", "mirrors"), manager.Path())
	}
	return server, err
}

// baseURLFunc adapts pickMirror to the invidious.BaseURLSource contract.
type baseURLFunc func() (string, error)

func (f baseURLFunc) BaseURL() (string, error) {
	return f()
}

func mirrorSource(ctx context.Context, manager *mirror.Manager) baseURLFunc {
	return func() (string, error) {
		server, err := pickMirror(ctx, manager)
		if err != nil {
			return "", err
		}
		return server.URL, nil
	}
}

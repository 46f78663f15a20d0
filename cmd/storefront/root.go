package main

import (
	"context"
	"errors"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/tair/storefront/internal/config"
	"github.com/tair/storefront/internal/storefront"
	"github.com/tair/storefront/internal/storefront/api"
	"github.com/tair/storefront/internal/storefront/storage"
	"github.com/tair/storefront/pkg/logger"
)

const serviceName = "storefront-cli"

// errNotified marks failures the App already reported to the user
var errNotified = errors.New("reported")

func notified(err error) error {
	if err != nil {
		return errNotified
	}
	return nil
}

// cli carries the App shared by all commands of one invocation
type cli struct {
	cfg     *config.ClientConfig
	verbose bool
	app     *storefront.App
	view    *storefront.TextView
	closers []func()
}

func newRootCmd() (*cobra.Command, *cli) {
	c := &cli{}

	root := &cobra.Command{
		Use:           "storefront",
		Short:         "Browse the catalog, manage your cart and place orders",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
	}
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "print navigation and session details")

	root.AddCommand(
		c.productsCmd(),
		c.productCmd(),
		c.cartCmd(),
		c.checkoutCmd(),
		c.ordersCmd(),
		c.wishlistCmd(),
		c.registerCmd(),
		c.loginCmd(),
		c.logoutCmd(),
		c.reviewCmd(),
	)
	return root, c
}

func (c *cli) setup(cmd *cobra.Command) error {
	ctx := cmd.Context()
	config.LoadDotEnv()
	c.cfg = config.LoadClientConfig()

	logger.InitWithWriter(os.Stderr, serviceName, true)
	logger.SetLevel(c.cfg.LogLevel)

	c.view = storefront.NewTextView(cmd.OutOrStdout(), c.cfg.APIURL)
	c.view.Verbose = c.verbose

	client := api.NewHTTPClient(c.cfg.APIURL, c.cfg.Timeout)
	c.app = storefront.New(client, c.openStore(ctx), c.view, storefront.Options{
		FallbackFeaturedIDs: c.cfg.FallbackIDs,
		SearchDebounce:      c.cfg.SearchDebounce,
	})
	c.closers = append(c.closers, c.app.Close)

	if err := c.app.Start(ctx); err != nil {
		logger.Warn(ctx).Err(err).Str("api_url", c.cfg.APIURL).Msg("Catalog unavailable")
	}
	return nil
}

// openStore prefers Redis when configured and reachable, otherwise the state file
func (c *cli) openStore(ctx context.Context) storage.Store {
	if c.cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: c.cfg.RedisAddr})
		err := client.Ping(ctx).Err()
		if err == nil {
			c.closers = append(c.closers, func() { client.Close() })
			return storage.NewRedisStore(client, c.cfg.RedisPrefix)
		}
		logger.Warn(ctx).Err(err).Str("addr", c.cfg.RedisAddr).Msg("Redis unavailable, using state file")
		client.Close()
	}
	return storage.NewFileStore(c.cfg.StateFile)
}

// close releases what setup opened; it is safe to call when setup never ran
func (c *cli) close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

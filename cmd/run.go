package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	jRPC "github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/0xPolygon/lockbridge"
	"github.com/0xPolygon/lockbridge/authz"
	"github.com/0xPolygon/lockbridge/bridge"
	"github.com/0xPolygon/lockbridge/bridge/migrations"
	lockbridgecommon "github.com/0xPolygon/lockbridge/common"
	"github.com/0xPolygon/lockbridge/config"
	"github.com/0xPolygon/lockbridge/db"
	"github.com/0xPolygon/lockbridge/ledger"
	ledgerMigrations "github.com/0xPolygon/lockbridge/ledger/migrations"
	"github.com/0xPolygon/lockbridge/log"
	"github.com/0xPolygon/lockbridge/relayer"
	"github.com/0xPolygon/lockbridge/rpc"
	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

func start(cliCtx *cli.Context) error {
	c, err := config.Load(cliCtx)
	if err != nil {
		return err
	}

	log.Init(c.Log)

	if c.Log.Environment == log.EnvironmentDevelopment {
		lockbridge.PrintVersion(os.Stdout)
		log.Info("Starting application")
	} else if c.Log.Environment == log.EnvironmentProduction {
		logVersion()
	}

	components := cliCtx.StringSlice(config.FlagComponents)
	ctx, cancel := context.WithCancel(cliCtx.Context)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	home, err := runBridgeIfNeeded(ctx, components, c.HomeBridge, lockbridgecommon.HOME_BRIDGE,
		homeNeededBy(c))
	if err != nil {
		return err
	}
	if home != nil {
		defer closeBridge(home, lockbridgecommon.HOME_BRIDGE)
	}
	foreign, err := runBridgeIfNeeded(ctx, components, c.ForeignBridge, lockbridgecommon.FOREIGN_BRIDGE,
		foreignNeededBy(c))
	if err != nil {
		return err
	}
	if foreign != nil {
		defer closeBridge(foreign, lockbridgecommon.FOREIGN_BRIDGE)
	}

	for _, component := range components {
		switch component {
		case lockbridgecommon.RPC:
			server := createRPC(c.RPC, c.Common.DeploymentID, home, foreign)
			go func() {
				if err := server.Start(); err != nil {
					log.Fatal(err)
				}
			}()
		case lockbridgecommon.RELAYER_H2F:
			r, err := createRelayer(component, c.HomeToForeignRelayer, c.Common.DeploymentID, home, foreign,
				bridge.HomeName, bridge.ForeignName)
			if err != nil {
				return err
			}
			defer r.Close()
			g.Go(func() error {
				r.Start(ctx)
				return nil
			})
		case lockbridgecommon.RELAYER_F2H:
			r, err := createRelayer(component, c.ForeignToHomeRelayer, c.Common.DeploymentID, foreign, home,
				bridge.ForeignName, bridge.HomeName)
			if err != nil {
				return err
			}
			defer r.Close()
			g.Go(func() error {
				r.Start(ctx)
				return nil
			})
		}
	}

	waitSignal(ctx, []context.CancelFunc{cancel})

	return g.Wait()
}

// homeNeededBy returns the components that can't run without the home bridge
func homeNeededBy(c *config.Config) []string {
	cases := []string{lockbridgecommon.HOME_BRIDGE, lockbridgecommon.RPC}
	if c.HomeToForeignRelayer.SourceURL == "" {
		cases = append(cases, lockbridgecommon.RELAYER_H2F)
	}
	if c.ForeignToHomeRelayer.DestinationURL == "" {
		cases = append(cases, lockbridgecommon.RELAYER_F2H)
	}
	return cases
}

// foreignNeededBy returns the components that can't run without the foreign bridge
func foreignNeededBy(c *config.Config) []string {
	cases := []string{lockbridgecommon.FOREIGN_BRIDGE, lockbridgecommon.RPC}
	if c.ForeignToHomeRelayer.SourceURL == "" {
		cases = append(cases, lockbridgecommon.RELAYER_F2H)
	}
	if c.HomeToForeignRelayer.DestinationURL == "" {
		cases = append(cases, lockbridgecommon.RELAYER_H2F)
	}
	return cases
}

func runBridgeIfNeeded(
	ctx context.Context,
	components []string,
	cfg bridge.Config,
	component string,
	casesWhereNeeded []string,
) (*bridge.Bridge, error) {
	if !isNeeded(casesWhereNeeded, components) {
		return nil, nil
	}
	b, err := createBridge(ctx, cfg, component)
	if err != nil {
		return nil, fmt.Errorf("error creating %s: %w", component, err)
	}
	return b, nil
}

// createBridge opens the bridge database, shared with its ledger, and
// initializes the bridge when an owner is configured
func createBridge(ctx context.Context, cfg bridge.Config, component string) (*bridge.Bridge, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log.Infof("running migrations for %s", component)
	if err := migrations.RunMigrations(cfg.DBPath, ledgerMigrations.Migrations...); err != nil {
		return nil, err
	}
	sqlDB, err := db.NewSQLiteDB(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	b, err := newBridge(ctx, cfg, component, sqlDB)
	if err != nil {
		if errC := sqlDB.Close(); errC != nil {
			log.Warnf("error closing %s database: %v", component, errC)
		}
		return nil, err
	}
	return b, nil
}

// newBridge builds the bridge on the open sqlDB, applying the genesis and the
// configured owner
func newBridge(ctx context.Context, cfg bridge.Config, component string, sqlDB *sql.DB) (*bridge.Bridge, error) {
	l, err := ledger.New(log.WithFields("module", "ledger-"+cfg.Name), cfg.CustodyAccount)
	if err != nil {
		return nil, err
	}
	if err := l.ApplyGenesis(ctx, sqlDB, cfg.Genesis); err != nil {
		return nil, err
	}
	oracle, err := authz.New(cfg.Relayers)
	if err != nil {
		return nil, err
	}
	b, err := bridge.New(log.WithFields("module", component), cfg, sqlDB, l, oracle)
	if err != nil {
		return nil, err
	}
	if cfg.Owner == (common.Address{}) {
		return b, nil
	}
	_, err = b.Initialize(ctx, cfg.Owner)
	if errors.Is(err, bridge.ErrAlreadyInitialized) {
		rec, err := b.Record(ctx)
		if err != nil {
			return nil, err
		}
		if rec.Owner != cfg.Owner {
			log.Warnf("%s is owned by %s, configured owner %s is ignored", component, rec.Owner.Hex(), cfg.Owner.Hex())
		}
		return b, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// createRelayer follows the log of the in-process source, or of the bridge
// srcName served at cfg.SourceURL when set. The redemptions go to the
// in-process dest, or through the JSON-RPC of cfg.DestinationURL when set.
func createRelayer(
	component string,
	cfg relayer.Config,
	deploymentID string,
	source, dest *bridge.Bridge,
	srcName, destName string,
) (*relayer.Relayer, error) {
	var events relayer.EventSource
	if cfg.SourceURL != "" {
		log.Infof("%s follows %s at %s", component, srcName, cfg.SourceURL)
		events = rpc.NewEventSource(rpc.NewClient(cfg.SourceURL), srcName)
	} else {
		if source == nil {
			return nil, fmt.Errorf("%s needs the %s bridge or a SourceURL", component, srcName)
		}
		events = source
	}
	var redeemer relayer.Redeemer
	if cfg.DestinationURL != "" {
		key, err := cfg.PrivateKey.PrivateKey()
		if err != nil {
			return nil, fmt.Errorf("error loading the %s key: %w", component, err)
		}
		signer := rpc.NewSigner(rpc.NewClient(cfg.DestinationURL), key, deploymentID, destName)
		log.Infof("%s redeems on %s as %s", component, cfg.DestinationURL, signer.Address().Hex())
		redeemer = signer
	} else {
		if dest == nil {
			return nil, fmt.Errorf("%s needs the %s bridge or a DestinationURL", component, destName)
		}
		redeemer = relayer.NewBridgeRedeemer(dest, cfg.Identity)
	}
	return relayer.New(component, cfg, events, redeemer)
}

func createRPC(cfg jRPC.Config, deploymentID string, bridges ...*bridge.Bridge) *jRPC.Server {
	logger := log.WithFields("module", lockbridgecommon.RPC)
	served := make([]rpc.Bridger, 0, len(bridges))
	for _, b := range bridges {
		if b != nil {
			served = append(served, b)
		}
	}
	services := []jRPC.Service{
		{
			Name: rpc.BRIDGE,
			Service: rpc.NewBridgeEndpoints(
				logger,
				cfg.WriteTimeout.Duration,
				cfg.ReadTimeout.Duration,
				deploymentID,
				served...,
			),
		},
	}

	return jRPC.NewServer(cfg, services, jRPC.WithLogger(logger.GetSugaredLogger()))
}

func closeBridge(b *bridge.Bridge, component string) {
	if err := b.Close(); err != nil {
		log.Errorf("error closing %s: %v", component, err)
	}
}

func logVersion() {
	log.Infow("Starting application", lockbridge.GetVersion().LogFields()...)
}

// waitSignal blocks until the process is interrupted or ctx is done, then
// cancels the components
func waitSignal(ctx context.Context, cancelFuncs []context.CancelFunc) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)

	select {
	case <-signals:
		log.Info("terminating application gracefully...")
	case <-ctx.Done():
	}
	for _, cancel := range cancelFuncs {
		cancel()
	}
}

func isNeeded(casesWhereNeeded, actualCases []string) bool {
	for _, actualCase := range actualCases {
		for _, caseWhereNeeded := range casesWhereNeeded {
			if actualCase == caseWhereNeeded {
				return true
			}
		}
	}

	return false
}

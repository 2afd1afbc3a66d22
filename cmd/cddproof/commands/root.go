package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"cddproof/internal/app"
	"cddproof/internal/domain"
	"cddproof/internal/store"
)

var (
	home       string
	passphrase string
	workers    int
	verbose    bool
	appCtx     *app.App
)

// Execute runs the CLI against os.Args. An interrupt cancels running
// batch work.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "cddproof",
		Short:        "Confidential identity commitments and proofs",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			dir, err := app.ResolveHome(home)
			if err != nil {
				return err
			}
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			appCtx, err = app.New(app.Config{Home: dir, Workers: workers, Logger: logger})
			return err
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "data dir (default $"+app.HomeEnv+" or ~/.cddproof)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting stored claims")
	root.PersistentFlags().IntVar(&workers, "workers", 0, "batch concurrency (default GOMAXPROCS)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")

	root.AddCommand(claimCmd(), cddIDCmd(), scopeIDCmd(), proveCmd(), verifyCmd(), verifyAllCmd())
	return root
}

func requirePassphrase() error {
	if passphrase == "" {
		return fmt.Errorf("passphrase required (-p)")
	}
	return nil
}

// resolveScope takes the label from --scope or, failing that, --scope-file.
func resolveScope(label, file string) (domain.ScopeContext, error) {
	switch {
	case label != "" && file != "":
		return "", fmt.Errorf("use either --scope or --scope-file")
	case file != "":
		return store.ReadScopeFile(file)
	case label != "":
		return domain.NewScopeContext(label)
	default:
		return "", fmt.Errorf("scope required (--scope or --scope-file)")
	}
}

// resolveClaim loads a claim from a plaintext file or, failing that, from
// the encrypted store.
func resolveClaim(name, file string) (domain.ClaimData, error) {
	switch {
	case name != "" && file != "":
		return domain.ClaimData{}, fmt.Errorf("use either --claim or --claim-file")
	case file != "":
		return store.ReadClaimFile(file)
	case name != "":
		if err := requirePassphrase(); err != nil {
			return domain.ClaimData{}, err
		}
		return appCtx.Claims.LoadClaim(passphrase, domain.ClaimName(name))
	default:
		return domain.ClaimData{}, fmt.Errorf("claim required (--claim or --claim-file)")
	}
}

func failures(n int, what string) error {
	if n == 0 {
		return nil
	}
	return fmt.Errorf("%d %s failed", n, what)
}

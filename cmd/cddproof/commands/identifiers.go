package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"cddproof/internal/protocol/commit"
)

func cddIDCmd() *cobra.Command {
	var name, file string
	cmd := &cobra.Command{
		Use:   "cdd-id",
		Short: "Print the CDD identifier a claim commits to",
		RunE: func(cmd *cobra.Command, args []string) error {
			claim, err := resolveClaim(name, file)
			if err != nil {
				return err
			}
			id, err := commit.DeriveCddIdentifier(claim)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "claim", "", "stored claim name")
	cmd.Flags().StringVar(&file, "claim-file", "", "plaintext claim JSON file")
	return cmd
}

func scopeIDCmd() *cobra.Command {
	var name, file, scope, scopeFile string
	cmd := &cobra.Command{
		Use:   "scope-id",
		Short: "Print the scope identifier of a claim for a scope",
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := resolveScope(scope, scopeFile)
			if err != nil {
				return err
			}
			claim, err := resolveClaim(name, file)
			if err != nil {
				return err
			}
			id, err := commit.DeriveScopeIdentifier(claim.Identity, sc)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "claim", "", "stored claim name")
	cmd.Flags().StringVar(&file, "claim-file", "", "plaintext claim JSON file")
	cmd.Flags().StringVar(&scope, "scope", "", "scope label, e.g. an asset ticker")
	cmd.Flags().StringVar(&scopeFile, "scope-file", "", "file holding the scope label")
	return cmd
}

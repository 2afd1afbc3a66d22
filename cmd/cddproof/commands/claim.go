package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"cddproof/internal/domain"
	"cddproof/internal/store"
	"cddproof/internal/util/hexcodec"
)

func claimCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim",
		Short: "Issue, import and list CDD claims",
	}
	cmd.AddCommand(claimNewCmd(), claimImportCmd(), claimListCmd())
	return cmd
}

// claim new --name <n> --subject <hex> [--payload <hex>]
func claimNewCmd() *cobra.Command {
	var name, subject, payload string
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Issue a claim with a fresh investor unique ID and store it encrypted",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassphrase(); err != nil {
				return err
			}
			did, err := domain.ParseInvestorDID(subject)
			if err != nil {
				return fmt.Errorf("--subject: %w", err)
			}
			raw, err := hexcodec.BytesFromHex(payload)
			if err != nil {
				return fmt.Errorf("--payload: %w", err)
			}
			_, cddID, err := appCtx.Claims.IssueClaim(passphrase, domain.ClaimName(name), did, raw)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Claim %q created.\nCDD identifier: %s\n", name, cddID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "name to store the claim under")
	cmd.Flags().StringVar(&subject, "subject", "", "investor DID (64 hex chars)")
	cmd.Flags().StringVar(&payload, "payload", "", "auxiliary claim payload (hex)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}

// claim import --name <n> --file <claim.json>
func claimImportCmd() *cobra.Command {
	var name, file string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a plaintext claim file into the encrypted store",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassphrase(); err != nil {
				return err
			}
			claim, err := store.ReadClaimFile(file)
			if err != nil {
				return err
			}
			cddID, err := appCtx.Claims.ImportClaim(passphrase, domain.ClaimName(name), claim)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Claim %q imported.\nCDD identifier: %s\n", name, cddID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "name to store the claim under")
	cmd.Flags().StringVar(&file, "file", "", "claim JSON file")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func claimListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored claim names",
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := appCtx.Claims.ListClaims()
			if err != nil {
				return err
			}
			for _, n := range names {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}
}

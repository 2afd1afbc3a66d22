package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"cddproof/internal/domain"
	"cddproof/internal/protocol/zkp"
	"cddproof/internal/store"
)

// prove (--claim <n> | --claim-file <f> | --all) (--scope <s> | --scope-file <f>) [--out <f>]
func proveCmd() *cobra.Command {
	var (
		name, file, scope, scopeFile, out string
		all                               bool
	)
	cmd := &cobra.Command{
		Use:   "prove",
		Short: "Prove a claim's CDD and scope identifiers hide the same identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := resolveScope(scope, scopeFile)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			switch {
			case all:
				if name != "" || file != "" || out != "" {
					return fmt.Errorf("--all cannot be combined with --claim, --claim-file or --out")
				}
				if err := requirePassphrase(); err != nil {
					return err
				}
				outcomes, err := appCtx.Proofs.ProveAll(cmd.Context(), passphrase, sc)
				if err != nil {
					return err
				}
				failed := 0
				for _, o := range outcomes {
					if o.Err != nil {
						failed++
						fmt.Fprintf(w, "FAIL %s: %v\n", o.Claim, o.Err)
						continue
					}
					fmt.Fprintf(w, "OK   %s %s\n", o.Claim, o.Path)
				}
				return failures(failed, "proofs")

			case file != "":
				if name != "" {
					return fmt.Errorf("use either --claim or --claim-file")
				}
				if out == "" {
					return fmt.Errorf("--out required with --claim-file")
				}
				claim, err := store.ReadClaimFile(file)
				if err != nil {
					return err
				}
				cddID, scopeID, proof, err := zkp.CreateProof(claim, sc)
				if err != nil {
					return err
				}
				rec := domain.ProofRecord{CddID: cddID, ScopeID: scopeID, Proof: proof, Scope: sc}
				if err := store.WriteProofRecord(out, rec); err != nil {
					return err
				}
				printRecord(w, rec, out)
				return nil

			case name != "":
				if err := requirePassphrase(); err != nil {
					return err
				}
				o, err := appCtx.Proofs.Prove(cmd.Context(), passphrase, domain.ClaimName(name), sc)
				if err != nil {
					return err
				}
				path := o.Path
				if out != "" {
					if err := store.WriteProofRecord(out, o.Record); err != nil {
						return err
					}
					path = out
				}
				printRecord(w, o.Record, path)
				return nil

			default:
				return fmt.Errorf("claim required (--claim, --claim-file or --all)")
			}
		},
	}
	cmd.Flags().StringVar(&name, "claim", "", "stored claim name")
	cmd.Flags().StringVar(&file, "claim-file", "", "plaintext claim JSON file")
	cmd.Flags().BoolVar(&all, "all", false, "prove every stored claim")
	cmd.Flags().StringVar(&scope, "scope", "", "scope label, e.g. an asset ticker")
	cmd.Flags().StringVar(&scopeFile, "scope-file", "", "file holding the scope label")
	cmd.Flags().StringVar(&out, "out", "", "also write the proof record to this file")
	return cmd
}

func printRecord(w io.Writer, rec domain.ProofRecord, path string) {
	fmt.Fprintf(w, "CDD identifier:   %s\n", rec.CddID)
	fmt.Fprintf(w, "Scope identifier: %s\n", rec.ScopeID)
	fmt.Fprintf(w, "Proof:            %s\n", rec.Proof)
	fmt.Fprintf(w, "Written to:       %s\n", path)
}

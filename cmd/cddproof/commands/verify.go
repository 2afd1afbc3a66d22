package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"cddproof/internal/domain"
	"cddproof/internal/protocol/zkp"
	"cddproof/internal/store"
	"cddproof/internal/util/hexcodec"
)

// verify (--file <record.json> | --claim <n> | --cdd <hex> --scope-id <hex> --proof <hex>) [--scope <s>]
func verifyCmd() *cobra.Command {
	var file, name, cdd, scopeID, proof, scope string
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify one proof record",
		Long:  "Verify one proof record against its scope label. Records carry it; --claim and the hex flags need --scope.",
		RunE: func(cmd *cobra.Command, args []string) error {
			hexGiven := cdd != "" || scopeID != "" || proof != ""
			if countSet(file != "", name != "", hexGiven) != 1 {
				return fmt.Errorf("use exactly one of --file, --claim or --cdd/--scope-id/--proof")
			}

			var err error
			switch {
			case file != "":
				var rec domain.ProofRecord
				if rec, err = store.ReadProofRecord(file); err != nil {
					return err
				}
				if scope != "" {
					rec.Scope = domain.ScopeContext(scope)
				}
				err = appCtx.Proofs.Verify(rec)
			case name != "":
				if scope == "" {
					return fmt.Errorf("--scope required with --claim")
				}
				_, err = appCtx.Proofs.VerifyStored(domain.ClaimName(name), domain.ScopeContext(scope))
			default:
				if scope == "" {
					return fmt.Errorf("--scope required with --cdd/--scope-id/--proof")
				}
				err = verifyHex(cdd, scopeID, domain.ScopeContext(scope), proof)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "proof valid")
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "proof record JSON file")
	cmd.Flags().StringVar(&name, "claim", "", "verify the stored proof of this claim")
	cmd.Flags().StringVar(&cdd, "cdd", "", "CDD identifier (hex)")
	cmd.Flags().StringVar(&scopeID, "scope-id", "", "scope identifier (hex)")
	cmd.Flags().StringVar(&proof, "proof", "", "proof (hex)")
	cmd.Flags().StringVar(&scope, "scope", "", "scope label the proof must be made for")
	return cmd
}

// verifyHex leaves width checks to the verifier so a wrong-length value is
// an invalid proof rather than a decoding error.
func verifyHex(cdd, scopeID string, scope domain.ScopeContext, proof string) error {
	c, err := hexcodec.BytesFromHex(cdd)
	if err != nil {
		return fmt.Errorf("--cdd: %w", err)
	}
	s, err := hexcodec.BytesFromHex(scopeID)
	if err != nil {
		return fmt.Errorf("--scope-id: %w", err)
	}
	p, err := hexcodec.BytesFromHex(proof)
	if err != nil {
		return fmt.Errorf("--proof: %w", err)
	}
	return zkp.VerifyBytes(c, s, scope, p)
}

func countSet(flags ...bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}

// verify-all [dir]: verify every *.json record in dir, default the proof store.
func verifyAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify-all [dir]",
		Short: "Verify every proof record in a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := appCtx.ProofDir
			if len(args) == 1 {
				dir = args[0]
			}
			results, err := appCtx.Proofs.VerifyDir(cmd.Context(), dir)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			failed := 0
			for _, r := range results {
				if !r.OK() {
					failed++
					fmt.Fprintf(w, "FAIL %s: %v\n", r.Source, r.Err)
					continue
				}
				fmt.Fprintf(w, "OK   %s\n", r.Source)
			}
			fmt.Fprintf(w, "%d verified, %d rejected\n", len(results)-failed, failed)
			return failures(failed, "verifications")
		},
	}
}

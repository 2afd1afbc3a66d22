package zkp_test

import (
	"fmt"

	"cddproof/internal/domain"
	"cddproof/internal/protocol/zkp"
)

func ExampleCreateProof() {
	did := make([]byte, domain.InvestorDIDSize)
	did[0] = 0x01
	uid := []byte{
		0x98, 0x19, 0x1f, 0x46, 0xe5, 0x83, 0x02, 0x16,
		0x44, 0x54, 0x36, 0x97, 0x88, 0x03, 0x69, 0x7a,
	}
	claim, err := domain.NewClaimData(did, uid, nil)
	if err != nil {
		panic(err)
	}

	cddID, scopeID, proof, err := zkp.CreateProof(claim, "ACME")
	if err != nil {
		panic(err)
	}
	fmt.Println(zkp.Verify(cddID, scopeID, "ACME", proof) == nil)
	// Output: true
}

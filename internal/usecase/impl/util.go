package impl

import "strconv"

func chainDetails(chainID uint64) string {
	return "chain_id=" + strconv.FormatUint(chainID, 10)
}

func identityDetails(identityID string) string {
	return "identity_id=" + identityID
}

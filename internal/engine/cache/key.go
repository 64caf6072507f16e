package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// keyVersion changes whenever the cached payload layout changes, so stale
// entries written by older builds are never decoded.
const keyVersion = "v1"

// Key returns the deterministic cache key for a household's normalized
// monthly consumption (kWh) and bill.
func Key(consumptionKWh, bill float64) string {
	h := sha256.New()
	h.Write([]byte(keyVersion))
	h.Write([]byte{'|'})
	h.Write([]byte(strconv.FormatFloat(consumptionKWh, 'g', -1, 64)))
	h.Write([]byte{'|'})
	h.Write([]byte(strconv.FormatFloat(bill, 'g', -1, 64)))
	return hex.EncodeToString(h.Sum(nil))
}

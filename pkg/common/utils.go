package common

import (
	"math/rand"
	"strings"
	"time"
)

const trxAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateTrxNo returns a short human-readable transaction reference,
// e.g. "GX-7K2M9QD1". Uniqueness is best-effort; the database row id is the
// real identity.
func GenerateTrxNo() string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	var b strings.Builder
	b.WriteString("GX-")
	for i := 0; i < 8; i++ {
		b.WriteByte(trxAlphabet[r.Intn(len(trxAlphabet))])
	}
	return b.String()
}

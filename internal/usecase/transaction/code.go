package transaction

import (
	"time"

	"github.com/jaevor/go-nanoid"
)

const codePrefix = "RKB"

var codeSuffix = mustSuffixGenerator()

func mustSuffixGenerator() func() string {
	gen, err := nanoid.CustomASCII("0123456789ABCDEFGHJKMNPQRSTVWXYZ", 6)
	if err != nil {
		panic(err)
	}
	return gen
}

// GenerateCode builds the human-readable lifecycle code: a fixed prefix, the
// UTC timestamp to second precision, and a short random suffix so two
// submissions inside the same second never collide. tx_code also carries a
// unique index as a backstop.
func GenerateCode() string {
	return codePrefix + time.Now().UTC().Format("20060102150405") + codeSuffix()
}

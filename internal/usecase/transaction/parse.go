package transaction

import (
	"regexp"
	"strings"

	"github.com/rekberinx/rekber-bot/internal/domain"
)

// Submission is the parsed buyer form. Reference defaults to the "-"
// placeholder when the optional Referensi line is absent.
type Submission struct {
	SellerHandle    string
	BuyerHandle     string
	ItemDescription string
	Price           string
	Reference       string
}

var (
	reSeller    = regexp.MustCompile(`(?i)Username Seller\s*:\s*(@?\w+)`)
	reBuyer     = regexp.MustCompile(`(?i)Username Buyer\s*:\s*(@?\w+)`)
	reItem      = regexp.MustCompile(`(?i)Jenis Barang\s*:\s*(.+)`)
	rePrice     = regexp.MustCompile(`(?i)Harga\s*:\s*(.+)`)
	reReference = regexp.MustCompile(`(?i)Referensi\s*:\s*(.+)`)
)

// ParseSubmission extracts the required fields from the free-text form.
// Fields may appear in any order and match case-insensitively. Any missing
// required field rejects the whole submission; there is no field-level error
// reporting, the caller shows one combined message listing all five fields.
func ParseSubmission(text string) (*Submission, error) {
	seller := reSeller.FindStringSubmatch(text)
	buyer := reBuyer.FindStringSubmatch(text)
	item := reItem.FindStringSubmatch(text)
	price := rePrice.FindStringSubmatch(text)
	ref := reReference.FindStringSubmatch(text)

	if seller == nil || buyer == nil || item == nil || price == nil {
		return nil, domain.ErrMalformedSubmission
	}

	sub := &Submission{
		SellerHandle:    strings.TrimSpace(seller[1]),
		BuyerHandle:     strings.TrimSpace(buyer[1]),
		ItemDescription: strings.TrimSpace(item[1]),
		Price:           strings.TrimSpace(price[1]),
		Reference:       "-",
	}
	if ref != nil {
		sub.Reference = strings.TrimSpace(ref[1])
	}
	return sub, nil
}

package infra

// PIX copy-and-paste payload stub. No gateway is involved: the
// payload is a deterministic string built from the configured merchant key,
// so the PDV can show a QR the customer's bank app recognizes as data even
// though no charge is registered anywhere.

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	qrcode "github.com/skip2/go-qrcode"
)

// Pix builds payment payloads for pix sales.
type Pix struct {
	key      string
	merchant string
}

func NewPix(key, merchant string) *Pix {
	return &Pix{key: key, merchant: merchant}
}

// Payload returns the copy-and-paste reference for one sale. The shape
// follows the BR Code field layout loosely (key, merchant, amount, txid);
// it is a stub and is NOT a charge the bank will settle.
func (p *Pix) Payload(saleID uuid.UUID, amount decimal.Decimal) string {
	txid := strings.ReplaceAll(saleID.String(), "-", "")
	return fmt.Sprintf("00020126PIX|%s|%s|%s|%s6304", p.key, p.merchant, amount.StringFixed(2), txid)
}

// PixQRCode renders a payload as a 256x256 PNG.
func PixQRCode(payload string) ([]byte, error) {
	return qrcode.Encode(payload, qrcode.Medium, 256)
}

package receiptimage

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/sarrafhub/exchange_backend/internal/core/domain"
	"github.com/sarrafhub/exchange_backend/internal/utils/receipthash"
)

// WidthPx is the raster width of a 72mm thermal roll at 96dpi. Thermal
// printers are fixed-width and monochrome; emitting one flat bitmap instead
// of structured text sidesteps font and RTL-encoding mismatches across
// printer drivers.
const WidthPx = 272

const (
	marginPx     = 8
	lineHeightPx = 16
	// Tagline printed at the bottom of every market receipt.
	tagline = "شكراً لتعاملكم معنا"
)

// Line is a single laid-out row of the receipt.
type Line struct {
	Text      string
	Center    bool
	Separator bool // Rendered as a full-width dashed rule; Text is ignored
}

// Layout flattens a receipt record into the printable line sequence:
// header, transaction metadata, accounts, exchange details, footer.
// It is pure so tests can assert on the embedded text without decoding pixels.
func Layout(r domain.MarketReceipt) []Line {
	lines := []Line{
		{Text: "SARRAF EXCHANGE", Center: true},
		{Text: r.ReceiptNumber, Center: true},
		{Separator: true},
		{Text: fmt.Sprintf("Ref: %s", r.Reference)},
		{Text: fmt.Sprintf("Date: %s  %s", r.Date, r.Time)},
		{Text: fmt.Sprintf("Transaction: %d", r.TransactionID)},
		{Separator: true},
		{Text: fmt.Sprintf("Seller: %s", r.SellerAccount)},
		{Text: fmt.Sprintf("Buyer: %s", r.BuyerAccount)},
		{Text: fmt.Sprintf("Clearing: %s", r.SystemAccount)},
		{Separator: true},
		{Text: fmt.Sprintf("Sold: %s %s", r.Amount, r.FromCurrencyCode)},
		{Text: fmt.Sprintf("Purchase: %s %s", r.TotalCost, r.ToCurrencyCode)},
		{Text: fmt.Sprintf("Rate: %s", r.Rate)},
		{Text: fmt.Sprintf("Commission: %s %s", r.Commission, r.ToCurrencyCode)},
		{Separator: true},
		{Text: fmt.Sprintf("Verify: %s", receipthash.Truncate(r.VerificationHash))},
		{Text: tagline, Center: true},
	}
	return lines
}

// Render rasterizes the receipt into a PNG buffer ready to stream to a print
// dialog. Any failure is returned as an explicit error; a half-rendered
// bitmap is never acceptable for a financial document.
func Render(r domain.MarketReceipt) ([]byte, error) {
	lines := Layout(r)

	height := marginPx*2 + len(lines)*lineHeightPx
	img := image.NewRGBA(image.Rect(0, 0, WidthPx, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	// Face7x13 has no Arabic glyphs; unsupported runes fall back to the
	// face's replacement box, which thermal heads print legibly.
	face := basicfont.Face7x13
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: face,
	}

	y := marginPx + lineHeightPx - 4
	for _, line := range lines {
		if line.Separator {
			drawSeparator(img, y-4)
			y += lineHeightPx
			continue
		}
		x := fixed.I(marginPx)
		if line.Center {
			width := drawer.MeasureString(line.Text)
			x = (fixed.I(WidthPx) - width) / 2
			if x < fixed.I(marginPx) {
				x = fixed.I(marginPx)
			}
		}
		drawer.Dot = fixed.Point26_6{X: x, Y: fixed.I(y)}
		drawer.DrawString(line.Text)
		y += lineHeightPx
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode receipt image: %w", err)
	}
	return buf.Bytes(), nil
}

func drawSeparator(img *image.RGBA, y int) {
	for x := marginPx; x < WidthPx-marginPx; x++ {
		if (x/4)%2 == 0 {
			img.Set(x, y, color.Black)
		}
	}
}

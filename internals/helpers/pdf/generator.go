package pdf

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"earsip_backend/internals/configs"
)

// RenderFunc signature renderer HTML → PDF. Controller surat keluar memegang
// field bertipe ini supaya bisa disubstitusi saat test.
type RenderFunc func(ctx context.Context, htmlContent, kopSuratPath string) (string, error)

// GeneratePDFFromHTML merender isi surat (HTML) menjadi PDF A4 ber-margin
// 1 inch lewat headless Chrome, lalu menyimpannya di folder uploads dengan
// nama ber-timestamp. Mengembalikan path relatif untuk disimpan di database.
// Kop surat (jika ada) disisipkan sebagai <img> base64 di atas isi.
func GeneratePDFFromHTML(ctx context.Context, htmlContent, kopSuratPath string) (string, error) {
	uploadsDir := configs.UploadDir()
	if err := os.MkdirAll(uploadsDir, 0o755); err != nil {
		return "", err
	}

	finalHTML := htmlContent
	if kopSuratPath != "" {
		if raw, err := os.ReadFile(kopSuratPath); err == nil {
			kop := base64.StdEncoding.EncodeToString(raw)
			finalHTML = fmt.Sprintf(`<img src="data:image/jpeg;base64,%s" style="width: 100%%;" /> <hr/>`, kop) + htmlContent
		}
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:], chromedp.NoSandbox)...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var buf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, finalHTML).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4 dengan margin 1 inch, background ikut dicetak
			buf, _, err = page.PrintToPDF().
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(1).
				WithMarginBottom(1).
				WithMarginLeft(1).
				WithMarginRight(1).
				WithPrintBackground(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return "", fmt.Errorf("gagal render PDF: %w", err)
	}

	fileName := fmt.Sprintf("surat-keluar-%d.pdf", time.Now().UnixMilli())
	if err := os.WriteFile(filepath.Join(uploadsDir, fileName), buf, 0o644); err != nil {
		return "", err
	}
	return "/uploads/" + fileName, nil
}

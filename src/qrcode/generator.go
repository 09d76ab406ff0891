package qrcode

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/skip2/go-qrcode"
)

// GenerateQRCode renderiza la data como QR y la guarda como PNG en public/
func GenerateQRCode(data string, filename string) error {
	dir := filepath.Join("public", "qrcodes")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	filePath := filepath.Join(dir, fmt.Sprintf("%s.png", filename))
	return qrcode.WriteFile(data, qrcode.Medium, 300, filePath)
}

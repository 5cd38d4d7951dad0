// Package device declares the contracts for platform capabilities the
// data layer's callers provide. Implementations live with the
// presentation layer; nothing here touches hardware.
package device

import (
	"context"
	"errors"
)

// ErrScannerUnavailable is returned by Scan when the camera or decoder
// failed to initialize.
var ErrScannerUnavailable = errors.New("barcode scanner unavailable")

// BarcodeScanner decodes a product barcode from the device camera.
type BarcodeScanner interface {
	// Scan blocks until a code is decoded or ctx is done.
	Scan(ctx context.Context) (string, error)
}

// BiometricChecker reports whether a device biometric credential is
// available for unlocking the app.
type BiometricChecker interface {
	Available(ctx context.Context) (bool, error)
}

//go:build !tinygo && !cgo

package hal

import "errors"

func RunWindow(_ func(HAL)) (Status, error) {
	return 0, errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}

package comms

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"

	"github.com/alycolumbres/GDEV32-FinalProject/shared/scene"
)

// The scene crosses the wire once per worker, so cheap snappy is enough for it.
// Pixel bands cross it constantly, so they get zstd's better ratios instead.
var (
	pixelEncoder, _ = zstd.NewWriter(nil)
	pixelDecoder, _ = zstd.NewReader(nil)
)

// PackScene encodes a scene for shipping to a worker.
func PackScene(scn *scene.Scene) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(scn); err != nil {
		return nil, fmt.Errorf("encode scene: %w", err)
	}
	return snappy.Encode(nil, buf.Bytes()), nil
}

// UnpackScene decodes a scene packed by PackScene.
func UnpackScene(data []byte) (*scene.Scene, error) {
	raw, err := snappy.Decode(nil, data)
	if err != nil {
		return nil, fmt.Errorf("decompress scene: %w", err)
	}
	scn := new(scene.Scene)
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(scn); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return scn, nil
}

// PackPixels compresses a band of raw pixel bytes.
func PackPixels(pix []byte) []byte {
	return pixelEncoder.EncodeAll(pix, make([]byte, 0, len(pix)/2))
}

// UnpackPixels decompresses a band packed by PackPixels.
func UnpackPixels(data []byte) ([]byte, error) {
	pix, err := pixelDecoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("decompress pixels: %w", err)
	}
	// The decoder skips anything too short to hold a frame header, so a
	// non-empty payload yielding no pixels was mangled in flight.
	if len(pix) == 0 && len(data) > 0 {
		return nil, fmt.Errorf("no pixels in %d byte payload", len(data))
	}
	return pix, nil
}

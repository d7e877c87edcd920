// Command snapshot renders one frame of the sevenstone enclosure without a
// window and writes it to a PNG file.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"go.uber.org/zap"

	"sevenstone/app"
	"sevenstone/stonegl"
)

func main() {
	var cfgPath, out string
	var width, height int
	var theta, phi float64
	flag.StringVar(&cfgPath, "config", "", "Path to a YAML config file.")
	flag.StringVar(&out, "o", "snapshot.png", "Output PNG path.")
	flag.IntVar(&width, "width", 0, "Override render width (0 = config).")
	flag.IntVar(&height, "height", 0, "Override render height (0 = config).")
	flag.Float64Var(&theta, "theta", 0.6, "Camera azimuth in radians.")
	flag.Float64Var(&phi, "phi", 1.1, "Camera polar angle in radians.")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := app.LoadConfig(cfgPath)
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}
	if width > 0 {
		cfg.Width = width
	}
	if height > 0 {
		cfg.Height = height
	}

	a, err := app.New(cfg, logger)
	if err != nil {
		logger.Fatal("init scene", zap.Error(err))
	}

	cam := a.Camera()
	cam.Orbit(stonegl.Scalar(phi)-cam.Phi, stonegl.Scalar(theta)-cam.Theta)

	stride := cfg.Width * 2
	buf := make([]byte, stride*cfg.Height)
	target := &stonegl.RGB565Target{Buf: buf, Stride: stride, W: cfg.Width, H: cfg.Height}
	a.Renderer().Render(target, a.Scene(), cam)

	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			off := y*stride + x*2
			p := uint16(buf[off]) | uint16(buf[off+1])<<8
			r := uint8((uint32(p>>11&0x1F) * 255) / 31)
			g := uint8((uint32(p>>5&0x3F) * 255) / 63)
			b := uint8((uint32(p&0x1F) * 255) / 31)
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 0xFF})
		}
	}

	f, err := os.Create(out)
	if err != nil {
		logger.Fatal("create output", zap.Error(err))
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		logger.Fatal("encode png", zap.Error(err))
	}
	logger.Info("snapshot written",
		zap.String("path", out),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height))
}

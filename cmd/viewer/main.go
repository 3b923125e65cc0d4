package main

import (
	"context"
	"flag"
	"os"
	"time"

	"diorama-viewer/core"
	"diorama-viewer/internal/log"
	"diorama-viewer/renderer"
	"diorama-viewer/tracking"
	"diorama-viewer/tracking/detection"
	"diorama-viewer/viewer"
)

func main() {
	var (
		modelPath  = flag.String("model", "", "GLB/GLTF or OBJ model to display")
		source     = flag.String("source", "camera", "tracking source: camera, pointer, or none")
		device     = flag.Int("device", 0, "webcam device index")
		yunetPath  = flag.String("yunet", detection.DefaultConfig().ModelPath, "YuNet face detection ONNX model")
		interval   = flag.Duration("interval", 33*time.Millisecond, "tracking sample interval")
		width      = flag.Int("width", 1280, "window width")
		height     = flag.Int("height", 720, "window height")
		sensX      = flag.Float64("sens-x", 3.0, "horizontal tracking sensitivity")
		sensY      = flag.Float64("sens-y", 1.5, "vertical tracking sensitivity")
		rangeXY    = flag.Float64("range", 15, "eye travel range in world units")
		eyeDist    = flag.Float64("eye-distance", 15, "eye distance from the window plane")
		boxHeight  = flag.Float64("box-height", 10, "reference box height")
		boxDepth   = flag.Float64("box-depth", 10, "reference box depth")
		logLevel   = flag.String("log-level", "info", "log level: debug, info, warn, error")
	)
	flag.Parse()

	log.Init(*logLevel)

	opts := viewer.DefaultOptions()
	opts.Sensitivity.Horizontal = float32(*sensX)
	opts.Sensitivity.Vertical = float32(*sensY)
	opts.Parallax.RangeX = float32(*rangeXY)
	opts.Parallax.RangeY = float32(*rangeXY)
	opts.Parallax.EyeDistance = float32(*eyeDist)
	opts.BoxHeight = float32(*boxHeight)
	opts.BoxDepth = float32(*boxDepth)

	cfg := core.DefaultWindowConfig()
	cfg.Width = *width
	cfg.Height = *height

	window, err := core.NewWindow(cfg)
	if err != nil {
		log.Error("window creation failed", "err", err)
		os.Exit(1)
	}
	defer window.Destroy()

	engine, err := renderer.NewRenderEngine(window)
	if err != nil {
		log.Error("render engine creation failed", "err", err)
		os.Exit(1)
	}
	defer engine.Destroy()

	slot := &tracking.Slot{}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := startTracking(ctx, *source, *device, *yunetPath, slot, *interval); err != nil {
		log.Error("tracking setup failed", "source", *source, "err", err)
		os.Exit(1)
	}

	v, err := viewer.New(window, engine, slot, opts)
	if err != nil {
		log.Error("viewer setup failed", "err", err)
		os.Exit(1)
	}

	if *modelPath != "" {
		if err := v.LoadModel(*modelPath); err != nil {
			log.Error("model load failed", "path", *modelPath, "err", err)
			os.Exit(1)
		}
	} else {
		log.Info("no model given, showing empty room (use -model)")
	}

	if err := v.Run(); err != nil {
		log.Error("render loop failed", "err", err)
		os.Exit(1)
	}
	log.Info("exiting")
}

// startTracking builds the requested tracking source and launches its
// sampling goroutine. "none" leaves the slot empty so the view stays
// centered.
func startTracking(ctx context.Context, source string, device int, yunetPath string, slot *tracking.Slot, interval time.Duration) error {
	var src tracking.Source
	var err error

	switch source {
	case "camera":
		cfg := detection.DefaultConfig()
		cfg.ModelPath = yunetPath
		det, derr := detection.NewYuNet(cfg)
		if derr != nil {
			return derr
		}
		src, err = tracking.NewCameraSource(device, det)
	case "pointer":
		src, err = tracking.NewPointerSource()
	case "none":
		return nil
	default:
		log.Warn("unknown tracking source, falling back to pointer", "source", source)
		src, err = tracking.NewPointerSource()
	}
	if err != nil {
		return err
	}

	runner := tracking.NewRunner(src, slot, interval)
	go runner.Run(ctx)
	return nil
}

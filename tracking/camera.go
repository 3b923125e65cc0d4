package tracking

import (
	"fmt"

	"gocv.io/x/gocv"

	"diorama-viewer/tracking/detection"
)

// CameraSource captures webcam frames and maps the best detected face to a
// head offset. The detector-space center (0-1) is made center-relative and
// doubled, so a face at frame center yields 0 and a face at the edge ±1.
type CameraSource struct {
	capture  *gocv.VideoCapture
	detector detection.Detector
	frame    gocv.Mat
}

// NewCameraSource opens the given V4L device and wraps the detector.
func NewCameraSource(deviceID int, det detection.Detector) (*CameraSource, error) {
	capture, err := gocv.OpenVideoCapture(deviceID)
	if err != nil {
		return nil, fmt.Errorf("open camera %d: %w", deviceID, err)
	}
	return &CameraSource{
		capture:  capture,
		detector: det,
		frame:    gocv.NewMat(),
	}, nil
}

// Sample grabs a frame and returns the offset of the best face, or ok=false
// when the frame could not be read or no face was found. Camera images have
// Y growing downward and are mirrored relative to the user, so both axes
// are flipped to keep "lean right" and "lean up" positive.
func (c *CameraSource) Sample() (Offset, bool) {
	if !c.capture.Read(&c.frame) || c.frame.Empty() {
		return Offset{}, false
	}

	dets, err := c.detector.Detect(c.frame)
	if err != nil {
		return Offset{}, false
	}

	best := detection.SelectBest(dets)
	if best == nil {
		return Offset{}, false
	}

	cx, cy := best.Center()
	return Offset{
		X: (0.5 - cx) * 2,
		Y: (0.5 - cy) * 2,
	}, true
}

func (c *CameraSource) Close() error {
	c.frame.Close()
	if err := c.detector.Close(); err != nil {
		return err
	}
	return c.capture.Close()
}

// Package detection provides face detection for the tracking signal source.
package detection

import "gocv.io/x/gocv"

// Detection is one detected face, with position and size normalized to the
// frame (0-1, origin top-left).
type Detection struct {
	X, Y       float32 // top-left corner
	W, H       float32
	Confidence float32
}

// Center returns the center point of the bounding box.
func (d Detection) Center() (x, y float32) {
	return d.X + d.W/2, d.Y + d.H/2
}

// Area returns the normalized area of the bounding box.
func (d Detection) Area() float32 {
	return d.W * d.H
}

// Detector is the interface for face detection backends.
type Detector interface {
	// Detect finds faces in the frame.
	Detect(img gocv.Mat) ([]Detection, error)

	// Close releases resources.
	Close() error
}

// Config holds detector configuration.
type Config struct {
	ModelPath        string  // path to the YuNet ONNX model
	ConfidenceThresh float32 // minimum confidence
	InputWidth       int     // model input width
	InputHeight      int     // model input height
}

// DefaultConfig returns defaults for YuNet.
func DefaultConfig() Config {
	return Config{
		ModelPath:        "models/face_detection_yunet.onnx",
		ConfidenceThresh: 0.5,
		InputWidth:       320,
		InputHeight:      320,
	}
}

// SelectBest picks the face to track from multiple detections, scoring
// confidence at 70% and relative size at 30% so a confident nearby face
// wins over a marginal large one.
func SelectBest(dets []Detection) *Detection {
	if len(dets) == 0 {
		return nil
	}
	if len(dets) == 1 {
		return &dets[0]
	}

	maxArea := float32(0)
	for _, d := range dets {
		if d.Area() > maxArea {
			maxArea = d.Area()
		}
	}

	bestScore := float32(-1)
	var best *Detection
	for i := range dets {
		score := dets[i].Confidence * 0.7
		if maxArea > 0 {
			score += (dets[i].Area() / maxArea) * 0.3
		}
		if score > bestScore {
			bestScore = score
			best = &dets[i]
		}
	}
	return best
}

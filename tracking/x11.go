package tracking

import (
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// PointerSource reads the global X11 pointer position and maps it to a
// head offset, treating the cursor as a stand-in for the user's head.
// Useful on machines without a camera and for eyeballing the parallax
// behavior deterministically.
type PointerSource struct {
	conn   *xgb.Conn
	root   xproto.Window
	width  float32
	height float32
}

// NewPointerSource connects to the X server and queries the root window
// geometry once; screens are assumed not to change size mid-session.
func NewPointerSource() (*PointerSource, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("x11 connect: %w", err)
	}

	screen := xproto.Setup(conn).DefaultScreen(conn)
	return &PointerSource{
		conn:   conn,
		root:   screen.Root,
		width:  float32(screen.WidthInPixels),
		height: float32(screen.HeightInPixels),
	}, nil
}

// Sample maps the pointer position to a center-relative offset in [-1,1],
// +Y up (screen Y grows downward, so it is flipped).
func (p *PointerSource) Sample() (Offset, bool) {
	reply, err := xproto.QueryPointer(p.conn, p.root).Reply()
	if err != nil {
		return Offset{}, false
	}

	x := (float32(reply.RootX)/p.width - 0.5) * 2
	y := (0.5 - float32(reply.RootY)/p.height) * 2
	return Offset{X: x, Y: y}, true
}

func (p *PointerSource) Close() error {
	p.conn.Close()
	return nil
}

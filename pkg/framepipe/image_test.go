package framepipe

import (
	"image"
	"image/color"
	"testing"

	"github.com/user/framepipe/pkg/mocks"
)

func openImageSession(t *testing.T, format PixelFormat, proc *mocks.EncoderProcess) *Session {
	t.Helper()

	cfg := testConfig()
	cfg.Width = 2
	cfg.Height = 2
	cfg.PixelFormat = format

	sess, err := Open(cfg,
		WithRunner(&mocks.EncoderRunner{Process: proc}),
		WithInvocationBuilder(&mocks.InvocationBuilder{}),
		WithFileSystem(mocks.NewFileSystem()),
	)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return sess
}

func twoByTwo() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 0, color.RGBA{G: 255, A: 255})
	img.Set(0, 1, color.RGBA{B: 255, A: 255})
	img.Set(1, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	return img
}

func TestAddImageRGB24(t *testing.T) {
	proc := &mocks.EncoderProcess{}
	sess := openImageSession(t, RGB24, proc)
	defer sess.Close()

	if err := sess.AddImage(twoByTwo()); err != nil {
		t.Fatalf("AddImage failed: %v", err)
	}

	want := []byte{
		255, 0, 0, 0, 255, 0,
		0, 0, 255, 255, 255, 255,
	}
	if got := proc.Input.Bytes(); string(got) != string(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestAddImageRGBA(t *testing.T) {
	proc := &mocks.EncoderProcess{}
	sess := openImageSession(t, RGBA, proc)
	defer sess.Close()

	if err := sess.AddImage(twoByTwo()); err != nil {
		t.Fatalf("AddImage failed: %v", err)
	}
	if got := proc.Input.Len(); got != 16 {
		t.Errorf("expected 16 bytes, got %d", got)
	}
	// First pixel is opaque red.
	head := proc.Input.Bytes()[:4]
	if head[0] != 255 || head[1] != 0 || head[2] != 0 || head[3] != 255 {
		t.Errorf("unexpected first pixel %v", head)
	}
}

func TestAddImageBGRA(t *testing.T) {
	proc := &mocks.EncoderProcess{}
	sess := openImageSession(t, BGRA, proc)
	defer sess.Close()

	if err := sess.AddImage(twoByTwo()); err != nil {
		t.Fatalf("AddImage failed: %v", err)
	}
	// First pixel red in BGRA order.
	head := proc.Input.Bytes()[:4]
	if head[0] != 0 || head[1] != 0 || head[2] != 255 || head[3] != 255 {
		t.Errorf("unexpected first pixel %v", head)
	}
}

func TestAddImageGray8(t *testing.T) {
	proc := &mocks.EncoderProcess{}
	sess := openImageSession(t, Gray8, proc)
	defer sess.Close()

	if err := sess.AddImage(twoByTwo()); err != nil {
		t.Fatalf("AddImage failed: %v", err)
	}
	buf := proc.Input.Bytes()
	if len(buf) != 4 {
		t.Fatalf("expected 4 bytes, got %d", len(buf))
	}
	// White converts to full luma.
	if buf[3] != 255 {
		t.Errorf("expected white pixel to be 255, got %d", buf[3])
	}
}

func TestAddImageWrongDimensions(t *testing.T) {
	proc := &mocks.EncoderProcess{}
	sess := openImageSession(t, RGB24, proc)
	defer sess.Close()

	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	if err := sess.AddImage(img); err == nil {
		t.Error("expected error for mismatched image dimensions")
	}
	if sess.Frames() != 0 {
		t.Errorf("expected feed count 0, got %d", sess.Frames())
	}
}

func TestAddImagePlanarFormatRejected(t *testing.T) {
	proc := &mocks.EncoderProcess{}
	sess := openImageSession(t, YUV420P, proc)
	defer sess.Close()

	if err := sess.AddImage(twoByTwo()); err == nil {
		t.Error("expected planar session to reject image submission")
	}
}

func TestAddImageNonZeroOrigin(t *testing.T) {
	proc := &mocks.EncoderProcess{}
	sess := openImageSession(t, RGB24, proc)
	defer sess.Close()

	img := image.NewRGBA(image.Rect(10, 10, 12, 12))
	for y := 10; y < 12; y++ {
		for x := 10; x < 12; x++ {
			img.Set(x, y, color.RGBA{R: 1, G: 2, B: 3, A: 255})
		}
	}

	if err := sess.AddImage(img); err != nil {
		t.Fatalf("AddImage failed: %v", err)
	}
	buf := proc.Input.Bytes()
	if buf[0] != 1 || buf[1] != 2 || buf[2] != 3 {
		t.Errorf("unexpected first pixel %v", buf[:3])
	}
}

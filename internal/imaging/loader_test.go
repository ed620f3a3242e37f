package imaging

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// createTestImage creates a solid-color test image file and returns its path.
func createTestImage(t *testing.T, width, height int, c color.Color) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "test-image.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}

	return path
}

func TestLoad_PNG(t *testing.T) {
	path := createTestImage(t, 100, 80, color.RGBA{255, 0, 0, 255})

	img, format, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if format != "png" {
		t.Errorf("expected format png, got %q", format)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 100 || bounds.Dy() != 80 {
		t.Errorf("expected 100x80, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestLoad_JPEG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 60, 40))
	path := filepath.Join(t.TempDir(), "test.jpg")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	if err := jpeg.Encode(f, img, nil); err != nil {
		f.Close()
		t.Fatalf("failed to encode jpeg: %v", err)
	}
	f.Close()

	loaded, format, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("expected format jpeg, got %q", format)
	}
	if loaded.Bounds().Dx() != 60 {
		t.Errorf("expected width 60, got %d", loaded.Bounds().Dx())
	}
}

func TestLoad_NonExistentFile(t *testing.T) {
	_, _, err := Load("/nonexistent/image.png")
	if err == nil {
		t.Fatal("expected error for non-existent file")
	}
}

func TestLoad_NotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-an-image.png")
	if err := os.WriteFile(path, []byte("this is not image data"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	_, _, err := Load(path)
	if err == nil {
		t.Fatal("expected error for non-image file")
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 30, 20))
	data, err := EncodePNG(img)
	if err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}

	decoded, format, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if format != "png" {
		t.Errorf("expected format png, got %q", format)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("expected bounds %v, got %v", img.Bounds(), decoded.Bounds())
	}
}

func TestDecode_Garbage(t *testing.T) {
	if _, _, err := Decode([]byte{0x00, 0x01, 0x02}); err == nil {
		t.Fatal("expected error for garbage data")
	}
}

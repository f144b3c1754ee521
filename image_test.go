package mapboxgl

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wippyai/mapbox-gl/errors"
)

func TestMap_LoadImage(t *testing.T) {
	rt := newTestRuntime(t)
	m := newTestMap(t, rt)

	var (
		img   *Image
		calls int
	)
	err := m.LoadImage("https://example.com/marker.png", func(i *Image, err error) {
		calls++
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		img = i
	})
	if err != nil {
		t.Fatal(err)
	}
	if m.PendingImageLoads() != 1 {
		t.Fatalf("pending = %d before the load finished", m.PendingImageLoads())
	}

	rt.RunPending()

	if calls != 1 || img == nil {
		t.Fatalf("calls=%d img=%v", calls, img)
	}
	if img.Width() != 64 || img.Height() != 64 {
		t.Fatalf("image is %dx%d", img.Width(), img.Height())
	}
	if m.PendingImageLoads() != 0 {
		t.Fatal("one-shot callback still retained after it ran")
	}

	if err := m.AddImage("pin", img, &ImageOptions{SDF: new(bool)}); err != nil {
		t.Fatal(err)
	}
	if !m.HasImage("pin") {
		t.Fatal("image not registered")
	}
	if err := m.AddImage("pin", img, nil); !errors.IsKind(err, errors.KindInvalidInput) {
		t.Fatalf("duplicate image: got %v", err)
	}
	if err := m.UpdateImage("pin", img); err != nil {
		t.Fatal(err)
	}
	ids, err := m.ListImages()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"pin"}, ids); diff != "" {
		t.Fatalf("ListImages mismatch (-want +got):\n%s", diff)
	}
	if err := m.RemoveImage("pin"); err != nil {
		t.Fatal(err)
	}
	if err := m.RemoveImage("pin"); !errors.IsKind(err, errors.KindNotFound) {
		t.Fatalf("second RemoveImage: got %v", err)
	}
	if err := m.UpdateImage("pin", img); !errors.IsKind(err, errors.KindNotFound) {
		t.Fatalf("UpdateImage on missing image: got %v", err)
	}
}

func TestMap_LoadImageFailure(t *testing.T) {
	rt := newTestRuntime(t)
	m := newTestMap(t, rt)

	var got error
	calls := 0
	if err := m.LoadImage("https://example.com/404.png", func(i *Image, err error) {
		calls++
		if i != nil {
			t.Error("image returned with an error")
		}
		got = err
	}); err != nil {
		t.Fatal(err)
	}
	rt.RunPending()

	if calls != 1 {
		t.Fatalf("callback ran %d times", calls)
	}
	if !errors.IsKind(got, errors.KindLoadImage) {
		t.Fatalf("got %v, want load image error", got)
	}
	e := got.(*errors.Error)
	msg, ok := e.Value.(string)
	if !ok || msg == "" {
		t.Fatalf("failure value = %#v", e.Value)
	}
	if m.PendingImageLoads() != 0 {
		t.Fatal("failed callback still retained")
	}
}

func TestMap_LoadImageRejects(t *testing.T) {
	rt := newTestRuntime(t)
	m := newTestMap(t, rt)

	if err := m.LoadImage("x.png", nil); !errors.IsKind(err, errors.KindInvalidInput) {
		t.Fatalf("nil callback: got %v", err)
	}
	if err := m.AddImage("", &Image{v: rt.Null()}, nil); !errors.IsKind(err, errors.KindInvalidInput) {
		t.Fatalf("empty id: got %v", err)
	}
	if m.HasImage("") {
		t.Fatal("empty id reported present")
	}
}

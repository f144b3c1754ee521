package mapboxgl

import (
	"go.uber.org/zap"

	"github.com/wippyai/mapbox-gl/engine"
	"github.com/wippyai/mapbox-gl/errors"
)

// Image is a loaded image owned by the foreign runtime, ready for AddImage.
type Image struct {
	v engine.Value
}

// ImageFromValue wraps a foreign image-like value such as an ImageData or
// an {width, height, data} object.
func ImageFromValue(v engine.Value) *Image {
	return &Image{v: v}
}

func (img *Image) Value() engine.Value { return img.v }
func (img *Image) Width() int          { return int(img.v.Get("width").Float()) }
func (img *Image) Height() int         { return int(img.v.Get("height").Float()) }

// AddImage registers img under id for use by icon-image and pattern
// properties.
func (m *Map) AddImage(id string, img *Image, opts *ImageOptions) error {
	if img == nil {
		return errors.InvalidInput(errors.PhaseRuntime, "image is nil")
	}
	if id == "" {
		return errors.InvalidInput(errors.PhaseRuntime, "image id is empty")
	}
	if m.HasImage(id) {
		return errors.InvalidInput(errors.PhaseRuntime, "image "+id+" already exists")
	}
	if opts == nil {
		_, err := m.call("addImage", id, img.v)
		return err
	}
	o, err := engine.ToWire(m.rt, opts)
	if err != nil {
		return err
	}
	_, err = m.call("addImage", id, img.v, o)
	return err
}

// UpdateImage replaces the pixels of an existing image.
func (m *Map) UpdateImage(id string, img *Image) error {
	if img == nil {
		return errors.InvalidInput(errors.PhaseRuntime, "image is nil")
	}
	if err := m.requireImage(id); err != nil {
		return err
	}
	_, err := m.call("updateImage", id, img.v)
	return err
}

func (m *Map) HasImage(id string) bool {
	if id == "" {
		return false
	}
	return m.flag("hasImage", id)
}

func (m *Map) RemoveImage(id string) error {
	if err := m.requireImage(id); err != nil {
		return err
	}
	_, err := m.call("removeImage", id)
	return err
}

// ListImages returns the ids of every registered image.
func (m *Map) ListImages() ([]string, error) {
	v, err := m.call("listImages")
	if err != nil {
		return nil, err
	}
	var ids []string
	if err := engine.FromWire(v, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (m *Map) requireImage(id string) error {
	if m.closed.Load() {
		return errors.Closed("map")
	}
	if !m.HasImage(id) {
		return errors.NotFound(errors.PhaseRuntime, "image", id)
	}
	return nil
}

// LoadImage fetches url and calls done once with the image or a
// KindLoadImage error. The callback is retained until it runs; if the map is
// closed first it is released and done is never called.
func (m *Map) LoadImage(url string, done func(*Image, error)) error {
	if done == nil {
		return errors.InvalidInput(errors.PhaseLoad, "completion callback is nil")
	}
	if m.closed.Load() {
		return errors.Closed("map")
	}

	id := NewCallbackID()
	images := m.imageCbs
	fn := m.rt.FuncOf(func(_ engine.Value, args []engine.Value) any {
		if _, _, err := images.Remove(id); err != nil {
			Logger().Warn("image callback not released", zap.Stringer("id", id), zap.Error(err))
		}
		if len(args) > 0 && !engine.IsNullish(args[0]) {
			done(nil, errors.LoadImage(url, failureValue(args[0])))
			return nil
		}
		if len(args) < 2 || engine.IsNullish(args[1]) {
			done(nil, errors.LoadImage(url, "no image"))
			return nil
		}
		done(&Image{v: args[1]}, nil)
		return nil
	})

	if err := m.imageCbs.Add(id, fn); err != nil {
		fn.Release()
		return err
	}
	if _, err := m.inner.Call("loadImage", url, fn); err != nil {
		if _, _, rerr := m.imageCbs.Remove(id); rerr != nil {
			Logger().Warn("image callback not released", zap.Stringer("id", id), zap.Error(rerr))
		}
		return err
	}

	Logger().Debug("image load started", zap.String("url", url), zap.Stringer("callback", id))
	return nil
}

// PendingImageLoads returns the number of LoadImage callbacks still waiting.
func (m *Map) PendingImageLoads() int {
	return m.imageCbs.Len()
}

// failureValue extracts what a foreign load failure carries: the message of
// an Error object, or the value's text.
func failureValue(v engine.Value) any {
	if msg := v.Get("message"); msg.Type() == engine.TypeString {
		return msg.String()
	}
	return v.String()
}

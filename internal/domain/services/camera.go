package services

import "github.com/smile-plzz/chronicle-core/internal/domain/entities"

// Viewport is the rendering surface size in pixels.
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Pan is the offset, in pixels, that centers a followed character.
type Pan struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// CameraService computes the camera-follow transform: the pan offset
// that keeps a followed character centered in a zoomable viewport.
// Pure function of (resolved coordinate, viewport, zoom); recomputed
// by the caller whenever the followed character, cursor, or zoom
// changes.
type CameraService struct {
	positions *PositionService
	zoomMin   float64
	zoomMax   float64
}

// NewCameraService creates a new CameraService with the given zoom bounds.
func NewCameraService(positions *PositionService, zoomMin, zoomMax float64) *CameraService {
	return &CameraService{positions: positions, zoomMin: zoomMin, zoomMax: zoomMax}
}

// ClampZoom bounds a zoom factor to the configured range.
func (s *CameraService) ClampZoom(zoom float64) float64 {
	if zoom < s.zoomMin {
		return s.zoomMin
	}
	if zoom > s.zoomMax {
		return s.zoomMax
	}
	return zoom
}

// Offset computes the pan that centers the given coordinate:
// (planeCenter - coord) * (viewportDim / planeExtent) * zoom per axis.
// Pan itself is unconstrained.
func (s *CameraService) Offset(coord entities.Coordinate, viewport Viewport, zoom float64) Pan {
	zoom = s.ClampZoom(zoom)
	center := entities.PlaneExtent / 2
	return Pan{
		X: (center - coord.X) * (viewport.Width / entities.PlaneExtent) * zoom,
		Y: (center - coord.Y) * (viewport.Height / entities.PlaneExtent) * zoom,
	}
}

// OffsetFor resolves the followed character at the cursor and returns
// the centering pan. Nil when no character is followed (empty id) or
// the character's position cannot be resolved: camera-follow has no
// effect then.
func (s *CameraService) OffsetFor(characterID string, cursor int, mode Mode, viewport Viewport, zoom float64) *Pan {
	if characterID == "" {
		return nil
	}
	pos, ok := s.positions.Resolve(cursor, mode)[characterID]
	if !ok {
		return nil
	}
	pan := s.Offset(pos.Coord, viewport, zoom)
	return &pan
}

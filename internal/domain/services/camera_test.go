package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smile-plzz/chronicle-core/internal/domain/entities"
)

func newTestCamera() *CameraService {
	return NewCameraService(NewPositionService(journeyHistory()), 0.4, 15.0)
}

func TestCameraService_ClampZoom(t *testing.T) {
	svc := newTestCamera()

	assert.Equal(t, 0.4, svc.ClampZoom(0.1))
	assert.Equal(t, 0.4, svc.ClampZoom(0.4))
	assert.Equal(t, 1.0, svc.ClampZoom(1.0))
	assert.Equal(t, 15.0, svc.ClampZoom(15.0))
	assert.Equal(t, 15.0, svc.ClampZoom(99.0))
}

func TestCameraService_Offset(t *testing.T) {
	svc := newTestCamera()
	viewport := Viewport{Width: 1000, Height: 500}

	// Centering (30, 70) at zoom 2: (50-30)*(1000/100)*2 on x,
	// (50-70)*(500/100)*2 on y.
	pan := svc.Offset(entities.Coordinate{X: 30, Y: 70}, viewport, 2.0)
	assert.InDelta(t, 400.0, pan.X, 1e-9)
	assert.InDelta(t, -200.0, pan.Y, 1e-9)

	// The plane center needs no pan at any zoom.
	pan = svc.Offset(entities.Coordinate{X: 50, Y: 50}, viewport, 7.0)
	assert.Zero(t, pan.X)
	assert.Zero(t, pan.Y)
}

func TestCameraService_Offset_ClampsZoom(t *testing.T) {
	svc := newTestCamera()
	viewport := Viewport{Width: 1000, Height: 500}

	over := svc.Offset(entities.Coordinate{X: 0, Y: 0}, viewport, 99.0)
	atMax := svc.Offset(entities.Coordinate{X: 0, Y: 0}, viewport, 15.0)
	assert.Equal(t, atMax, over)
}

func TestCameraService_OffsetFor(t *testing.T) {
	svc := newTestCamera()
	viewport := Viewport{Width: 1000, Height: 500}

	// A sits at L2 (10, 0) at cursor 1.
	pan := svc.OffsetFor("A", 1, Canonical{}, viewport, 1.0)
	require.NotNil(t, pan)
	assert.InDelta(t, 400.0, pan.X, 1e-9)
	assert.InDelta(t, 250.0, pan.Y, 1e-9)
}

func TestCameraService_OffsetFor_NoFollow(t *testing.T) {
	svc := newTestCamera()
	viewport := Viewport{Width: 1000, Height: 500}

	assert.Nil(t, svc.OffsetFor("", 0, Canonical{}, viewport, 1.0))
	assert.Nil(t, svc.OffsetFor("GHOST", 0, Canonical{}, viewport, 1.0))
}

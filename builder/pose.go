package builder

import goxviz "github.com/reoring/goxviz"

const (
	poseTimestamp field = 1 << iota
	poseMapOrigin
	posePosition
	poseOrientation
)

// PoseBuilder accumulates one pose per stream. Timestamp is mandatory.
type PoseBuilder struct {
	BaseBuilder
	poses   map[string]goxviz.Pose
	set     field
	pending goxviz.Pose
}

var _ streamBuilder = (*PoseBuilder)(nil)

// NewPoseBuilder returns an empty builder reporting to v.
func NewPoseBuilder(v *goxviz.Validator, disabledStreams ...string) *PoseBuilder {
	return &PoseBuilder{
		BaseBuilder: newBaseBuilder(goxviz.CategoryPose, v, disabledStreams),
		poses:       map[string]goxviz.Pose{},
	}
}

// Stream commits any pending pose and switches to stream id.
func (b *PoseBuilder) Stream(id string) *PoseBuilder {
	b.stream(b, id)
	return b
}

// Timestamp sets the pose time in seconds.
func (b *PoseBuilder) Timestamp(t float64) *PoseBuilder {
	if b.err != nil || !b.setOnce(b.set, poseTimestamp, "timestamp") {
		return b
	}
	b.pending.Timestamp = t
	b.set |= poseTimestamp
	return b
}

// MapOrigin anchors the pose in geographic coordinates.
func (b *PoseBuilder) MapOrigin(longitude, latitude, altitude float64) *PoseBuilder {
	if b.err != nil || !b.setOnce(b.set, poseMapOrigin, "map_origin") {
		return b
	}
	b.pending.MapOrigin = &goxviz.MapOrigin{Longitude: longitude, Latitude: latitude, Altitude: altitude}
	b.set |= poseMapOrigin
	return b
}

// Position sets the pose position relative to the map origin.
func (b *PoseBuilder) Position(x, y, z float64) *PoseBuilder {
	if b.err != nil || !b.setOnce(b.set, posePosition, "position") {
		return b
	}
	b.pending.Position = goxviz.Point{x, y, z}
	b.set |= posePosition
	return b
}

// Orientation sets roll, pitch and yaw in radians.
func (b *PoseBuilder) Orientation(roll, pitch, yaw float64) *PoseBuilder {
	if b.err != nil || !b.setOnce(b.set, poseOrientation, "orientation") {
		return b
	}
	b.pending.Orientation = goxviz.Point{roll, pitch, yaw}
	b.set |= poseOrientation
	return b
}

// GetData commits any pending pose and returns poses by stream, or nil when
// nothing was produced.
func (b *PoseBuilder) GetData() (map[string]goxviz.Pose, error) {
	if b.err == nil && b.hasPending() {
		b.flush()
	}
	if b.err != nil {
		return nil, b.err
	}
	if len(b.poses) == 0 {
		return nil, nil
	}
	return b.poses, nil
}

// Reset drops all accumulated poses, the stream selection and any recorded error.
func (b *PoseBuilder) Reset() {
	b.poses = map[string]goxviz.Pose{}
	b.resetPending()
	b.resetBase()
}

func (b *PoseBuilder) hasPending() bool { return b.set != 0 }

func (b *PoseBuilder) flush() {
	ok, warned := b.validateScope("")
	if !ok {
		return
	}
	if b.set&poseTimestamp == 0 {
		b.fail(goxviz.CodeMissingTimestamp, map[string]string{"stream": b.streamID})
		return
	}
	if b.keep(warned) {
		// A later pose on the same stream replaces the earlier one.
		b.poses[b.streamID] = b.pending
	}
	b.resetPending()
}

func (b *PoseBuilder) resetPending() {
	b.set = 0
	b.pending = goxviz.Pose{}
}

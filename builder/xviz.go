package builder

import (
	goxviz "github.com/reoring/goxviz"
	"github.com/reoring/goxviz/config"
	"github.com/reoring/goxviz/log"
)

type options struct {
	primaryPose   string
	disabled      []string
	validator     *goxviz.Validator
	validatorOpts []goxviz.ValidatorOption
}

// Option configures a Builder.
type Option func(*options)

// WithPrimaryPoseStream overrides the pose stream every message must carry.
func WithPrimaryPoseStream(id string) Option {
	return func(o *options) {
		if id != "" {
			o.primaryPose = id
		}
	}
}

// WithDisabledStreams drops the given streams from the output.
func WithDisabledStreams(ids ...string) Option {
	return func(o *options) { o.disabled = append(o.disabled, ids...) }
}

// WithValidator shares an existing validator. Validator options passed to
// the same Builder are ignored.
func WithValidator(v *goxviz.Validator) Option {
	return func(o *options) { o.validator = v }
}

// WithLogger reports issues to l.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.validatorOpts = append(o.validatorOpts, goxviz.WithLogger(l)) }
}

// WithWarningPolicy sets what happens to records that produced a warning.
func WithWarningPolicy(p goxviz.WarningPolicy) Option {
	return func(o *options) { o.validatorOpts = append(o.validatorOpts, goxviz.WithWarningPolicy(p)) }
}

// WithStreamMetadata declares expected stream categories and primitive types.
func WithStreamMetadata(m map[string]goxviz.StreamMetadata) Option {
	return func(o *options) { o.validatorOpts = append(o.validatorOpts, goxviz.WithStreamMetadata(m)) }
}

// WithConfig applies a loaded configuration.
func WithConfig(cfg *config.Config) Option {
	return func(o *options) {
		if cfg == nil {
			return
		}
		WithPrimaryPoseStream(cfg.PrimaryPoseStream)(o)
		WithDisabledStreams(cfg.DisabledStreams...)(o)
		WithWarningPolicy(cfg.Policy())(o)
		WithStreamMetadata(cfg.StreamMetadata())(o)
	}
}

// Builder assembles one update document from its pose, variable and
// primitive builders. A Builder serves one message at a time; call Reset
// before building the next one.
type Builder struct {
	primaryPose string
	validator   *goxviz.Validator
	pose        *PoseBuilder
	variables   *VariableBuilder
	primitives  *PrimitiveBuilder
}

// New returns a Builder whose sub-builders share one validator.
func New(opts ...Option) *Builder {
	o := options{primaryPose: goxviz.PrimaryPoseStream}
	for _, opt := range opts {
		opt(&o)
	}
	v := o.validator
	if v == nil {
		v = goxviz.NewValidator(o.validatorOpts...)
	}
	return &Builder{
		primaryPose: o.primaryPose,
		validator:   v,
		pose:        NewPoseBuilder(v, o.disabled...),
		variables:   NewVariableBuilder(v, o.disabled...),
		primitives:  NewPrimitiveBuilder(v, o.disabled...),
	}
}

// Pose selects the pose builder on streamID. An empty id selects the
// primary pose stream.
func (b *Builder) Pose(streamID string) *PoseBuilder {
	if streamID == "" {
		streamID = b.primaryPose
	}
	return b.pose.Stream(streamID)
}

// Variable selects the variable builder on streamID.
func (b *Builder) Variable(streamID string) *VariableBuilder {
	return b.variables.Stream(streamID)
}

// Primitive selects the primitive builder on streamID.
func (b *Builder) Primitive(streamID string) *PrimitiveBuilder {
	return b.primitives.Stream(streamID)
}

// Validator returns the validator shared by the sub-builders.
func (b *Builder) Validator() *goxviz.Validator { return b.validator }

// PrimaryPoseStream returns the pose stream every message must carry.
func (b *Builder) PrimaryPoseStream() string { return b.primaryPose }

// GetMessage flushes every sub-builder and assembles the document. It fails
// when any sub-builder recorded a fatal issue or the primary pose stream is
// missing; the returned error then carries every recorded error as
// goxviz.Issues.
func (b *Builder) GetMessage() (*goxviz.Document, error) {
	poses, poseErr := b.pose.GetData()
	primary, ok := poses[b.primaryPose]
	if poseErr == nil && !ok && !b.validator.Issues().HasCode(goxviz.CodeMissingPose) {
		b.validator.Error(
			goxviz.Scope{Stream: b.primaryPose, Category: goxviz.CategoryPose},
			goxviz.CodeMissingPose,
			map[string]string{"stream": b.primaryPose},
		)
	}
	primitives, primErr := b.primitives.GetData()
	variables, varErr := b.variables.GetData()
	if poseErr != nil || !ok || primErr != nil || varErr != nil {
		return nil, b.validator.Err()
	}
	return &goxviz.Document{
		UpdateType: goxviz.UpdateTypeSnapshot,
		Updates: []goxviz.StreamSet{{
			Timestamp:  primary.Timestamp,
			Poses:      poses,
			Primitives: primitives,
			Variables:  variables,
		}},
	}, nil
}

// Encode assembles the document and hands it to enc.
func (b *Builder) Encode(enc goxviz.Encoder) ([]byte, error) {
	doc, err := b.GetMessage()
	if err != nil {
		return nil, err
	}
	return goxviz.Encode(doc, enc)
}

// Reset discards all accumulated data and the validator log so the Builder
// can assemble the next message.
func (b *Builder) Reset() {
	b.pose.Reset()
	b.variables.Reset()
	b.primitives.Reset()
	b.validator.Reset()
}

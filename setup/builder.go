package setup

import (
	"container/list"

	"github.com/hashicorp/go-multierror"
	"github.com/overlay-go/overlay"
	"github.com/overlay-go/overlay/internal"
)

// Builder orchestrates the assembly of a Container from features,
// literal props and options.  Initial props from successive sources
// merge with later sources winning; overlays are applied as ordered
// updates after creation so operation overrides compose.
type Builder struct {
	props    []overlay.Props
	overlays []overlay.Props
	options  []overlay.Option
	features []Feature
	tags     map[any]struct{}
}

func New(features ...Feature) *Builder {
	return new(Builder).Features(features...)
}

func (b *Builder) Features(features ...Feature) *Builder {
	b.features = append(b.features, features...)
	return b
}

func (b *Builder) Props(props ...overlay.Props) *Builder {
	b.props = append(b.props, props...)
	return b
}

// Overlays registers props applied as updates after the container is
// created, in registration order.
func (b *Builder) Overlays(props ...overlay.Props) *Builder {
	b.overlays = append(b.overlays, props...)
	return b
}

func (b *Builder) Options(options ...overlay.Option) *Builder {
	b.options = append(b.options, options...)
	return b
}

// Tag tracks feature installation so a feature applied through several
// paths only installs once.  It returns true on first sight of tag.
func (b *Builder) Tag(tag any) bool {
	if b.tags == nil {
		b.tags = map[any]struct{}{tag: {}}
		return true
	}
	if _, found := b.tags[tag]; !found {
		b.tags[tag] = struct{}{}
		return true
	}
	return false
}

// Build installs all features and creates the Container.
func (b *Builder) Build() (*overlay.Container, error) {
	if err := b.installGraph(b.features); err != nil {
		return nil, err
	}
	initial := overlay.Props{}
	for _, props := range b.props {
		for key, val := range props {
			initial[key] = val
		}
	}
	container, err := overlay.New(initial, b.options...)
	if err != nil {
		return nil, err
	}
	for _, props := range b.overlays {
		if uerr := container.Update(props); uerr != nil {
			err = multierror.Append(err, uerr)
		}
	}
	if err != nil {
		return nil, err
	}
	return container, nil
}

// installGraph traverses level-order so feature dependencies can be
// contributed in any order.
func (b *Builder) installGraph(features []Feature) (err error) {
	queue := list.New()
	for _, feature := range features {
		if !internal.IsNil(feature) {
			queue.PushBack(feature)
		}
	}
	for queue.Len() > 0 {
		front := queue.Front()
		queue.Remove(front)
		feature := front.Value.(Feature)
		if dependsOn, ok := feature.(interface {
			DependsOn() []Feature
		}); ok {
			for _, dep := range dependsOn.DependsOn() {
				if !internal.IsNil(dep) {
					queue.PushBack(dep)
				}
			}
		}
		if ie := feature.Install(b); ie != nil {
			err = multierror.Append(err, ie)
		}
	}
	return err
}

// Package inspector lists entities and extracts their component fields for
// display, driven by `inspect` struct tags.
package inspector

import (
	"sort"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/octosurvivors/components"
)

// Entry is one row of the entity list.
type Entry struct {
	Entity ecs.Entity
	Name   string
}

// Section groups the fields of one component.
type Section struct {
	Title  string
	Fields []Field
}

// Lister enumerates named entities in stable ID order.
type Lister struct {
	filter *ecs.Filter1[components.Name]
}

// NewLister creates a lister for the world.
func NewLister(w *ecs.World) *Lister {
	return &Lister{filter: ecs.NewFilter1[components.Name](w)}
}

// List returns every named entity, sorted by entity ID.
func (l *Lister) List() []Entry {
	var entries []Entry
	query := l.filter.Query()
	for query.Next() {
		name := query.Get()
		entries = append(entries, Entry{Entity: query.Entity(), Name: name.Value})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Entity.ID() < entries[j].Entity.ID()
	})
	return entries
}

// Describer collects the inspectable components of a single entity.
type Describer struct {
	world    *ecs.World
	sections []func(e ecs.Entity) (Section, bool)
}

// NewDescriber creates a describer covering every game component.
func NewDescriber(w *ecs.World) *Describer {
	d := &Describer{world: w}
	add := func(f func(e ecs.Entity) (Section, bool)) {
		d.sections = append(d.sections, f)
	}
	add(section[components.Transform](w, "Transform"))
	add(section[components.Camera](w, "Camera"))
	add(section[components.FlyCamera](w, "Fly Camera"))
	add(section[components.AtlasSprite](w, "Sprite"))
	add(section[components.AnimationTimer](w, "Animation"))
	add(section[components.Mesh](w, "Mesh"))
	add(section[components.Material](w, "Material"))
	add(section[components.PointLight](w, "Point Light"))
	add(section[components.Tower](w, "Tower"))
	add(section[components.Lifetime](w, "Lifetime"))
	add(section[components.Parent](w, "Parent"))
	add(section[components.Player](w, "Player"))
	add(tag[components.PlayerCamera](w, "Player Camera"))
	add(tag[components.FaceCamera](w, "Face Camera"))
	add(tag[components.Bullet](w, "Bullet"))
	return d
}

// Describe returns one section per component on e, in a fixed order.
// Returns nil if e is not alive.
func (d *Describer) Describe(e ecs.Entity) []Section {
	if !d.world.Alive(e) {
		return nil
	}
	var out []Section
	for _, f := range d.sections {
		if s, ok := f(e); ok {
			out = append(out, s)
		}
	}
	return out
}

func section[T any](w *ecs.World, title string) func(ecs.Entity) (Section, bool) {
	m := ecs.NewMap[T](w)
	return func(e ecs.Entity) (Section, bool) {
		if !m.Has(e) {
			return Section{}, false
		}
		return Section{Title: title, Fields: ExtractFields(m.Get(e))}, true
	}
}

// tag reports marker components with no fields.
func tag[T any](w *ecs.World, title string) func(ecs.Entity) (Section, bool) {
	m := ecs.NewMap[T](w)
	return func(e ecs.Entity) (Section, bool) {
		return Section{Title: title}, m.Has(e)
	}
}

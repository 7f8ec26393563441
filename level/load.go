package level

import (
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lafriks/go-tiled"

	"github.com/automoto/momentum/assets"
	"github.com/automoto/momentum/config"
	"github.com/automoto/momentum/shared/gamemath"
)

const (
	defaultTriggerHeight   = 2
	defaultDeathPlaneDepth = 1000
	defaultPadCooldown     = 1
	defaultPadRadius       = 3
)

var slopes = map[string]gamemath.SlopeAxis{
	"":         gamemath.SlopeNone,
	"up_east":  gamemath.SlopeUpEast,
	"up_west":  gamemath.SlopeUpWest,
	"up_north": gamemath.SlopeUpNorth,
	"up_south": gamemath.SlopeUpSouth,
}

// objectProps reads numeric properties of one object whatever their Tiled
// type, keeping the first value that does not parse.
type objectProps struct {
	o   *tiled.Object
	err error
}

func (r *objectProps) float(name string, def float64) float64 {
	values := r.o.Properties.Get(name)
	if len(values) == 0 {
		return def
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(values[0]), 64)
	if err != nil {
		if r.err == nil {
			r.err = fmt.Errorf("object %q (%d): property %s: %w", r.o.Name, r.o.ID, name, err)
		}
		return def
	}
	return v
}

// Open loads the arena at path, or the embedded sandbox when path is empty.
// A path without an extension names an embedded arena by its stem.
func Open(path string) (*Arena, error) {
	if path == "" {
		return Load(assets.FS(), assets.DefaultLevel)
	}
	if filepath.Ext(path) == "" {
		return Load(assets.FS(), assets.LevelPath(path))
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("open arena: %w", err)
	}
	return Load(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// Load parses the TMX file at tmxPath inside fsys.
func Load(fsys fs.FS, tmxPath string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	if levelMap.TileWidth <= 0 {
		return nil, fmt.Errorf("%s: tile width must be positive", tmxPath)
	}
	p := parser{ppm: float64(levelMap.TileWidth)}

	arena := &Arena{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Spawns: make(map[string]Spawn),
	}
	var teleporters, deathPlanes []*tiled.Object

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Platforms":
			for _, o := range og.Objects {
				box, err := p.platform(o)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", tmxPath, err)
				}
				arena.Platforms = append(arena.Platforms, box)
			}
		case "Spawn":
			for i, o := range og.Objects {
				props := objectProps{o: o}
				s := Spawn{
					Name:     o.Name,
					Position: p.point(o, props.float("height", 0)),
					Yaw:      props.float("yaw", 0),
				}
				if props.err != nil {
					return nil, fmt.Errorf("%s: %w", tmxPath, props.err)
				}
				arena.Spawns[s.Name] = s
				if i == 0 || s.Name == "player" {
					arena.Spawn = s
				}
			}
		case "Teleporters":
			teleporters = append(teleporters, og.Objects...)
		case "DeathPlanes":
			deathPlanes = append(deathPlanes, og.Objects...)
		case "ForcePads":
			for _, o := range og.Objects {
				pad, err := p.forcePad(o)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", tmxPath, err)
				}
				arena.ForcePads = append(arena.ForcePads, pad)
			}
		}
	}

	if len(arena.Spawns) == 0 {
		return nil, fmt.Errorf("%s: no objects in the Spawn group", tmxPath)
	}
	if arena.Teleporters, err = p.teleporters(teleporters); err != nil {
		return nil, fmt.Errorf("%s: %w", tmxPath, err)
	}
	for _, o := range deathPlanes {
		plane, err := p.deathPlane(o, arena)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", tmxPath, err)
		}
		arena.DeathPlanes = append(arena.DeathPlanes, plane)
	}
	return arena, nil
}

type parser struct {
	ppm float64
}

func (p parser) point(o *tiled.Object, height float64) mgl64.Vec3 {
	return mgl64.Vec3{(o.X + o.Width/2) / p.ppm, height, (o.Y + o.Height/2) / p.ppm}
}

// volume spans the object footprint from bottom to top.
func (p parser) volume(o *tiled.Object, bottom, top float64) Volume {
	return Volume{
		Min: mgl64.Vec3{o.X / p.ppm, bottom, o.Y / p.ppm},
		Max: mgl64.Vec3{(o.X + o.Width) / p.ppm, top, (o.Y + o.Height) / p.ppm},
	}
}

func (p parser) area(o *tiled.Object) error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("object %q (%d) needs a rectangle", o.Name, o.ID)
	}
	return nil
}

func (p parser) platform(o *tiled.Object) (gamemath.Box, error) {
	if err := p.area(o); err != nil {
		return gamemath.Box{}, err
	}
	props := objectProps{o: o}
	top := props.float("top", 0)
	bottom := props.float("bottom", top-1)
	if props.err != nil {
		return gamemath.Box{}, props.err
	}
	if bottom > top {
		return gamemath.Box{}, fmt.Errorf("platform %q: bottom %v above top %v", o.Name, bottom, top)
	}
	slope, ok := slopes[o.Properties.GetString("slope")]
	if !ok {
		return gamemath.Box{}, fmt.Errorf("platform %q: unknown slope %q", o.Name, o.Properties.GetString("slope"))
	}
	v := p.volume(o, bottom, top)
	return gamemath.Box{Min: v.Min, Max: v.Max, Slope: slope}, nil
}

func (p parser) teleporters(objects []*tiled.Object) ([]Teleporter, error) {
	index := make(map[string]int, len(objects))
	for i, o := range objects {
		if o.Name == "" {
			return nil, fmt.Errorf("teleporter %d has no name", o.ID)
		}
		if _, dup := index[o.Name]; dup {
			return nil, fmt.Errorf("duplicate teleporter %q", o.Name)
		}
		index[o.Name] = i
	}

	result := make([]Teleporter, 0, len(objects))
	for i, o := range objects {
		if err := p.area(o); err != nil {
			return nil, err
		}
		props := objectProps{o: o}
		bottom := props.float("height", 0)
		t := Teleporter{
			Name:             o.Name,
			Volume:           p.volume(o, bottom, bottom+props.float("volumeHeight", defaultTriggerHeight)),
			Yaw:              props.float("yaw", 0),
			Destination:      -1,
			DestinationOnly:  o.Properties.GetBool("destinationOnly"),
			OverrideRotation: o.Properties.GetBool("overrideRotation"),
		}
		if props.err != nil {
			return nil, props.err
		}
		if !t.DestinationOnly {
			name := o.Properties.GetString("destination")
			dest, ok := index[name]
			switch {
			case name == "":
				return nil, fmt.Errorf("teleporter %q has no destination", o.Name)
			case !ok:
				return nil, fmt.Errorf("teleporter %q: unknown destination %q", o.Name, name)
			case dest == i:
				return nil, fmt.Errorf("teleporter %q: destination needs to be another teleporter", o.Name)
			}
			t.Destination = dest
		}
		result = append(result, t)
	}
	return result, nil
}

func (p parser) deathPlane(o *tiled.Object, arena *Arena) (DeathPlane, error) {
	if err := p.area(o); err != nil {
		return DeathPlane{}, err
	}
	props := objectProps{o: o}
	top := props.float("top", 0)
	if props.err != nil {
		return DeathPlane{}, props.err
	}
	plane := DeathPlane{
		Name:    o.Name,
		Volume:  p.volume(o, top-defaultDeathPlaneDepth, top),
		Respawn: arena.Spawn,
	}
	if name := o.Properties.GetString("respawn"); name != "" {
		s, ok := arena.Spawns[name]
		if !ok {
			return DeathPlane{}, fmt.Errorf("death plane %q: unknown respawn %q", o.Name, name)
		}
		plane.Respawn = s
	}
	return plane, nil
}

func (p parser) forcePad(o *tiled.Object) (ForcePad, error) {
	if err := p.area(o); err != nil {
		return ForcePad{}, err
	}
	kind, err := config.ParseForceType(o.Properties.GetString("type"))
	if err != nil {
		return ForcePad{}, fmt.Errorf("force pad %q: %w", o.Name, err)
	}
	var flags config.ForceFlags
	if raw := o.Properties.GetString("flags"); raw != "" {
		if flags, err = config.ParseForceFlags(strings.Split(raw, ",")...); err != nil {
			return ForcePad{}, fmt.Errorf("force pad %q: %w", o.Name, err)
		}
	}
	props := objectProps{o: o}
	bottom := props.float("height", 0)
	pad := ForcePad{
		Name:   o.Name,
		Volume: p.volume(o, bottom, bottom+props.float("volumeHeight", defaultTriggerHeight)),
		Force: config.ForceSettings{
			Type:            kind,
			Force:           props.float("force", 0),
			Radius:          props.float("radius", defaultPadRadius),
			Flags:           flags,
			Curve:           gamemath.LinearCurve(1, 0),
			ExplosionOffset: mgl64.Vec3{0, props.float("offsetY", 0), 0},
			ShockwaveSpeed:  props.float("shockwaveSpeed", 0),
		},
		Cooldown: props.float("cooldown", defaultPadCooldown),
	}
	if props.err != nil {
		return ForcePad{}, props.err
	}
	if pad.Force.Type == config.ForceShockwave && pad.Force.ShockwaveSpeed <= 0 {
		return ForcePad{}, fmt.Errorf("force pad %q: shockwave needs a positive shockwaveSpeed", o.Name)
	}
	if pad.Force.Radius <= 0 {
		return ForcePad{}, fmt.Errorf("force pad %q: radius must be positive", o.Name)
	}
	return pad, nil
}

// Bounds returns the XZ extent of every platform and trigger.
func (a *Arena) Bounds() (minX, minZ, maxX, maxZ float64) {
	minX, minZ = math.Inf(1), math.Inf(1)
	maxX, maxZ = math.Inf(-1), math.Inf(-1)
	grow := func(lo, hi mgl64.Vec3) {
		minX, minZ = math.Min(minX, lo.X()), math.Min(minZ, lo.Z())
		maxX, maxZ = math.Max(maxX, hi.X()), math.Max(maxZ, hi.Z())
	}
	for _, b := range a.Platforms {
		grow(b.Min, b.Max)
	}
	for _, t := range a.Teleporters {
		grow(t.Volume.Min, t.Volume.Max)
	}
	for _, f := range a.ForcePads {
		grow(f.Volume.Min, f.Volume.Max)
	}
	for _, s := range a.Spawns {
		grow(s.Position, s.Position)
	}
	return minX, minZ, maxX, maxZ
}

package domain

// Point is a 2D coordinate in millimeters.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Wall is a straight segment between two points, millimeters.
type Wall struct {
	Start Point `json:"start"`
	End   Point `json:"end"`
}

type Door struct {
	Width float64 `json:"width"`
}

type Corridor struct {
	Width float64 `json:"width"`
}

// Room describes a single space in the design. Dimensional fields are
// optional: a check that needs a missing field is skipped, not failed.
// Lengths and heights are meters, areas are square meters.
type Room struct {
	Type       string   `json:"type"`
	Area       *float64 `json:"area,omitempty"`
	Length     *float64 `json:"length,omitempty"`
	Width      *float64 `json:"width,omitempty"`
	Height     *float64 `json:"height,omitempty"`
	WindowArea *float64 `json:"window_area,omitempty"`
}

// ResolvedArea returns the room area, preferring the explicit area field
// over length*width. The second return is false when neither is available.
func (r Room) ResolvedArea() (float64, bool) {
	if r.Area != nil {
		return *r.Area, true
	}
	if r.Length != nil && r.Width != nil {
		return *r.Length * *r.Width, true
	}
	return 0, false
}

type Dimensions struct {
	TotalArea *float64 `json:"total_area,omitempty"`
	Height    *float64 `json:"height,omitempty"`
}

type Structure struct {
	Type   string `json:"type"`
	Floors *int   `json:"floors,omitempty"`
}

// DesignPayload is the caller-supplied design under validation. It is built
// from a raw JSON object by DecodeDesign and is never mutated by the
// evaluators; the original map is retained for key-presence checks on fields
// the typed model does not cover (fire safety and accessibility artifacts).
type DesignPayload struct {
	Rooms      []Room      `json:"rooms,omitempty"`
	Walls      []Wall      `json:"walls,omitempty"`
	Doors      []Door      `json:"doors,omitempty"`
	Corridors  []Corridor  `json:"corridors,omitempty"`
	Dimensions *Dimensions `json:"dimensions,omitempty"`
	Structure  *Structure  `json:"structure,omitempty"`

	raw map[string]any
}

// Has reports whether the raw payload carried the given top-level key.
func (p *DesignPayload) Has(key string) bool {
	if p == nil || p.raw == nil {
		return false
	}
	_, ok := p.raw[key]
	return ok
}

// ToMap returns the raw payload object the design was decoded from,
// suitable for guard-rule evaluation.
func (p *DesignPayload) ToMap() map[string]any {
	if p == nil || p.raw == nil {
		return map[string]any{}
	}
	return p.raw
}

// DecodeDesign builds a DesignPayload from an arbitrary decoded JSON value.
// The decoder is tolerant: a missing or wrong-typed field is simply left
// unset, so downstream checks skip it instead of failing the whole payload.
// Shape-level complaints are the schema validator's job, not the decoder's.
func DecodeDesign(payload any) *DesignPayload {
	m, ok := payload.(map[string]any)
	if !ok {
		return &DesignPayload{}
	}

	p := &DesignPayload{raw: m}

	for _, v := range asSlice(m["rooms"]) {
		rm, ok := v.(map[string]any)
		if !ok {
			p.Rooms = append(p.Rooms, Room{})
			continue
		}
		room := Room{
			Area:       numField(rm, "area"),
			Length:     numField(rm, "length"),
			Width:      numField(rm, "width"),
			Height:     numField(rm, "height"),
			WindowArea: numField(rm, "window_area"),
		}
		room.Type, _ = rm["type"].(string)
		p.Rooms = append(p.Rooms, room)
	}

	for _, v := range asSlice(m["walls"]) {
		wm, _ := v.(map[string]any)
		wall := Wall{}
		if start, ok := decodePoint(wm["start"]); ok {
			wall.Start = start
		}
		if end, ok := decodePoint(wm["end"]); ok {
			wall.End = end
		}
		p.Walls = append(p.Walls, wall)
	}

	for _, v := range asSlice(m["doors"]) {
		dm, _ := v.(map[string]any)
		d := Door{}
		if w := numField(dm, "width"); w != nil {
			d.Width = *w
		}
		p.Doors = append(p.Doors, d)
	}

	for _, v := range asSlice(m["corridors"]) {
		cm, _ := v.(map[string]any)
		c := Corridor{}
		if w := numField(cm, "width"); w != nil {
			c.Width = *w
		}
		p.Corridors = append(p.Corridors, c)
	}

	if dm, ok := m["dimensions"].(map[string]any); ok {
		p.Dimensions = &Dimensions{
			TotalArea: numField(dm, "total_area"),
			Height:    numField(dm, "height"),
		}
	}

	if sm, ok := m["structure"].(map[string]any); ok {
		s := &Structure{}
		s.Type, _ = sm["type"].(string)
		if f := numField(sm, "floors"); f != nil {
			n := int(*f)
			s.Floors = &n
		}
		p.Structure = s
	}

	return p
}

func decodePoint(v any) (Point, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return Point{}, false
	}
	x := numField(m, "x")
	y := numField(m, "y")
	if x == nil || y == nil {
		return Point{}, false
	}
	return Point{X: *x, Y: *y}, true
}

func asSlice(v any) []any {
	s, _ := v.([]any)
	return s
}

func numField(m map[string]any, key string) *float64 {
	if m == nil {
		return nil
	}
	f, ok := AsNumber(m[key])
	if !ok {
		return nil
	}
	return &f
}

// AsNumber converts the numeric types that show up in decoded JSON and in
// hand-built test payloads. The second return is false for anything else.
func AsNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case int32:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint64:
		return float64(t), true
	}
	return 0, false
}

package graph

import (
	"strings"
	"testing"
)

func resultHas(r ValidationResult, substr string) (errFound, warnFound bool) {
	for _, e := range r.Errors {
		if strings.Contains(e.Message, substr) {
			errFound = true
		}
	}
	for _, w := range r.Warnings {
		if strings.Contains(w.Message, substr) {
			warnFound = true
		}
	}
	return errFound, warnFound
}

func TestValidateAll_ValidGraph(t *testing.T) {
	r := ValidateAll(buildShelf())
	if !r.OK() || len(r.Warnings) != 0 {
		t.Errorf("unexpected findings: %+v", r)
	}
}

func TestValidateAll_Dimensions(t *testing.T) {
	tests := []struct {
		name   string
		data   NodeData
		substr string
	}{
		{"zero board", BoardData{Dimensions: Vec3{0, 10, 10}}, "board dimension X"},
		{"negative board", BoardData{Dimensions: Vec3{10, 10, -1}}, "board dimension Z"},
		{"flat dowel", DowelData{Diameter: 8, Length: 0}, "dowel length"},
		{"thin panel", PanelData{Outline: []Vec2{{0, 0}, {1, 0}, {0, 1}}}, "panel thickness"},
		{"panel with two points", PanelData{Outline: []Vec2{{0, 0}, {1, 0}}, Thickness: 6}, "at least 3"},
		{"collinear panel", PanelData{Outline: []Vec2{{0, 0}, {1, 0}, {2, 0}}, Thickness: 6}, "zero area"},
		{"repeated point", PanelData{Outline: []Vec2{{0, 0}, {0, 0}, {1, 0}, {0, 1}}, Thickness: 6}, "repeats point"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := buildShelf()
			g.MustLookup("shelf").Data = tt.data
			if errFound, _ := resultHas(ValidateAll(g), tt.substr); !errFound {
				t.Errorf("expected error containing %q", tt.substr)
			}
		})
	}
}

func TestValidateAll_DuplicateJoinReversed(t *testing.T) {
	g := buildShelf()
	orig := g.Get(NewNodeID("butt-joint/1")).Data.(JoinData)
	dupID := NewNodeID("butt-joint/2")
	g.AddNode(&Node{ID: dupID, Kind: NodeJoin, Data: JoinData{
		Kind: JoinButt, PartA: orig.PartB, FaceA: orig.FaceB, PartB: orig.PartA, FaceB: orig.FaceA,
	}})
	asm := g.MustLookup("shelf-unit")
	asm.Children = append(asm.Children, dupID)

	if errFound, _ := resultHas(ValidateAll(g), "duplicate join"); !errFound {
		t.Error("reversed join should be a duplicate")
	}
}

func TestValidateAll_FastenerTooLong(t *testing.T) {
	g := buildShelf()
	screwID := NewNodeID("screw/1")
	g.AddNode(&Node{ID: screwID, Kind: NodeFastener, Data: FastenerData{Kind: FastenerScrew, Length: 80, JoinRef: NewNodeID("butt-joint/1")}})
	j := g.Get(NewNodeID("butt-joint/1"))
	jd := j.Data.(JoinData)
	jd.Fasteners = []NodeID{screwID}
	j.Data = jd

	// side top (18) + shelf left (500) leaves room for 80mm.
	if _, warn := resultHas(ValidateAll(g), "exceeds combined"); warn {
		t.Error("80mm screw should fit")
	}

	jd.FaceB = FaceTop
	j.Data = jd
	if _, warn := resultHas(ValidateAll(g), "exceeds combined"); !warn {
		t.Error("80mm screw through two 18mm faces should warn")
	}
}

func TestValidateAll_EndGrain(t *testing.T) {
	g := buildShelf()
	j := g.Get(NewNodeID("butt-joint/1"))
	jd := j.Data.(JoinData)
	jd.FaceA, jd.FaceB = FaceLeft, FaceRight
	j.Data = jd

	if _, warn := resultHas(ValidateAll(g), "end-grain"); !warn {
		t.Error("left/right faces of X-grain boards are end grain")
	}
}

func TestIsEndGrainFace(t *testing.T) {
	tests := []struct {
		grain Axis
		face  FaceID
		want  bool
	}{
		{AxisX, FaceLeft, true},
		{AxisX, FaceTop, false},
		{AxisY, FaceBack, true},
		{AxisZ, FaceBottom, true},
		{AxisZ, FaceFront, false},
	}
	for _, tt := range tests {
		if got := isEndGrainFace(tt.grain, tt.face); got != tt.want {
			t.Errorf("isEndGrainFace(%s, %s) = %v, want %v", tt.grain, tt.face, got, tt.want)
		}
	}
}

func TestOutlineArea(t *testing.T) {
	sq := []Vec2{{0, 0}, {2, 0}, {2, 2}, {0, 2}}
	if a := outlineArea(sq); a != 4 {
		t.Errorf("area = %v, want 4", a)
	}
	if a := outlineArea([]Vec2{{0, 0}, {0, 2}, {2, 2}, {2, 0}}); a != -4 {
		t.Errorf("clockwise area = %v, want -4", a)
	}
}

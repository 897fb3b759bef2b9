package core

import "testing"

func TestAABB_Hit(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name     string
		ray      Ray
		expected bool
	}{
		{"straight through", NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1)), true},
		{"diagonal through", NewRay(NewVec3(-5, -5, -5), NewVec3(1, 1, 1)), true},
		{"origin inside", NewRay(NewVec3(0, 0, 0), NewVec3(1, 0, 0)), true},
		{"parallel outside slab", NewRay(NewVec3(0, 2, -5), NewVec3(0, 0, 1)), false},
		{"pointing away", NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, -1)), false},
		{"passes beside", NewRay(NewVec3(3, 0, -5), NewVec3(0, 0.1, 1)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Hit(tt.ray); got != tt.expected {
				t.Errorf("Expected hit=%v, got %v", tt.expected, got)
			}
		})
	}
}

func TestAABB_FromPointsAndExpand(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(1, 0, 3), NewVec3(-1, 2, 0), NewVec3(0, -4, 1))
	if box.Min != NewVec3(-1, -4, 0) || box.Max != NewVec3(1, 2, 3) {
		t.Errorf("Unexpected bounds %v", box)
	}

	flat := NewAABBFromPoints(NewVec3(0, 0, 0), NewVec3(1, 1, 0)).Expand(0.5)
	if size := flat.Size(); size.Z != 1.0 {
		t.Errorf("Expected expanded depth 1.0, got %v", size.Z)
	}

	if NewAABBFromPoints() != (AABB{}) {
		t.Error("Expected empty AABB for no points")
	}
}

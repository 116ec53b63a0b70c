package math

import "testing"

func TestTransformDefaults(t *testing.T) {
	tr := TransformCreate()
	if tr.Position() != NewVec3Zero() || tr.Rotation() != NewQuatIdentity() || tr.Scale() != NewVec3One() {
		t.Errorf("TransformCreate: unexpected state %v %v %v", tr.Position(), tr.Rotation(), tr.Scale())
	}
	if !tr.IsDirty() {
		t.Error("a new transform must start dirty")
	}
	local := tr.Local()
	identity := NewMat4Identity()
	if local != identity {
		t.Errorf("Local: expected identity, got %v", local.Data)
	}
	if tr.IsDirty() {
		t.Error("Local must clear the dirty flag")
	}
}

func TestTransformOnChange(t *testing.T) {
	tr := TransformCreate()
	calls := 0
	var last *Transform
	tr.OnChange(func(changed *Transform) {
		calls++
		last = changed
	})

	mutations := []func(){
		func() { tr.SetPosition(NewVec3(1, 2, 3)) },
		func() { tr.Translate(NewVec3(1, 0, 0)) },
		func() { tr.SetRotation(NewQuatFromAxisAngle(NewVec3Up(), 0.3, false)) },
		func() { tr.Rotate(NewQuatFromAxisAngle(NewVec3Right(), 0.2, false)) },
		func() { tr.SetScale(NewVec3(2, 2, 2)) },
		func() { tr.ScaleBy(NewVec3(1, 0.5, 1)) },
		func() { tr.SetPositionRotation(NewVec3Zero(), NewQuatIdentity()) },
		func() { tr.SetPositionRotationScale(NewVec3One(), NewQuatIdentity(), NewVec3One()) },
		func() { tr.TranslateRotate(NewVec3Up(), NewQuatFromAxisAngle(NewVec3Back(), 0.1, false)) },
		func() { m := NewMat4Translation(NewVec3(4, 4, 4)); tr.SetFromMatrix(&m) },
		func() { tr.SetParent(nil) },
	}

	for i, mutate := range mutations {
		tr.Local()
		mutate()
		if calls != i+1 {
			t.Fatalf("mutation %d: expected %d notifications, got %d", i, i+1, calls)
		}
		if last != tr {
			t.Fatalf("mutation %d: callback received the wrong transform", i)
		}
		if !tr.IsDirty() {
			t.Fatalf("mutation %d: transform not marked dirty", i)
		}
	}

	if tr.Position() != NewVec3(4, 4, 4) {
		t.Errorf("SetFromMatrix: expected position (4,4,4), got %v", tr.Position())
	}

	tr.OnChange(nil)
	tr.SetPosition(NewVec3Zero())
	if calls != len(mutations) {
		t.Errorf("OnChange(nil): expected no further notifications, got %d", calls-len(mutations))
	}
}

func TestTransformOnChangeReplacesSubscriber(t *testing.T) {
	tr := TransformCreate()
	first, second := 0, 0
	tr.OnChange(func(*Transform) { first++ })
	tr.OnChange(func(*Transform) { second++ })
	tr.Translate(NewVec3One())
	if first != 0 || second != 1 {
		t.Errorf("expected only the latest subscriber to fire, got first=%d second=%d", first, second)
	}
}

func TestTransformLocalIsCached(t *testing.T) {
	p := NewVec3(1, -2, 3)
	q := NewQuatFromAxisAngle(NewVec3(0, 0.6, 0.8), 0.7, false)
	s := NewVec3(1, 2, -1)
	tr := TransformFromPositionRotationScale(p, q, s)

	want := NewMat4Compose(p, q, s)
	got := tr.Local()
	assertMat4Close(t, "Local", &got, &want, 0)

	tr.SetPosition(NewVec3Zero())
	got = tr.Local()
	want.SetPosition(NewVec3Zero())
	assertMat4Close(t, "Local after SetPosition", &got, &want, 0)
}

func TestTransformRotateStaysUnit(t *testing.T) {
	tr := TransformCreate()
	step := NewQuatFromAxisAngle(NewVec3(1, 1, 0).Normalized(), 0.01, false)
	for i := 0; i < 10000; i++ {
		tr.Rotate(step)
	}
	assertFloatClose(t, "rotation length", tr.Rotation().Length(), 1, 1e-12)
}

func TestTransformWorld(t *testing.T) {
	parent := TransformFromPositionRotation(NewVec3(10, 0, 0), NewQuatFromAxisAngle(NewVec3Up(), K_HALF_PI, false))
	child := TransformFromPosition(NewVec3(1, 0, 0))
	child.SetParent(parent)

	if child.Parent() != parent {
		t.Fatal("SetParent: parent not recorded")
	}

	world := child.World()
	origin := NewVec3Zero()
	origin.TransformPoint(&world)
	// +X in the parent frame is -Z in world, offset by the parent position.
	if !origin.Equals(NewVec3(10, 0, -1), testTolerance) {
		t.Errorf("World: expected (10,0,-1), got %v", origin)
	}

	parent.SetPosition(NewVec3(0, 5, 0))
	world = child.World()
	if p := world.Position(); !p.Equals(NewVec3(0, 5, -1), testTolerance) {
		t.Errorf("World after parent move: expected (0,5,-1), got %v", p)
	}

	child.SetParent(nil)
	world = child.World()
	local := child.Local()
	if world != local {
		t.Errorf("World without parent: expected local matrix, got %v", world.Data)
	}

	var missing *Transform
	identity := NewMat4Identity()
	if w := missing.World(); w != identity {
		t.Errorf("nil World: expected identity, got %v", w.Data)
	}
}

func TestTransformFromMatrix(t *testing.T) {
	p := NewVec3(3, 2, 1)
	q := NewQuatFromAxisAngle(NewVec3Right(), 0.4, false)
	s := NewVec3(-2, 1, 1)
	mt := NewMat4Compose(p, q, s)

	tr := TransformFromMatrix(&mt)
	local := tr.Local()
	assertMat4Close(t, "TransformFromMatrix", &local, &mt, 1e-9)
	if tr.Rotation().W < 0 {
		t.Errorf("TransformFromMatrix: rotation not canonical: %v", tr.Rotation())
	}
}

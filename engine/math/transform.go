package math

func newTransform(position Vec3, rotation Quaternion, scale Vec3) *Transform {
	t := &Transform{
		position: position,
		rotation: rotation,
		scale:    scale,
		isDirty:  true,
		local:    NewMat4Identity(),
	}
	return t
}

func TransformCreate() *Transform {
	return newTransform(NewVec3Zero(), NewQuatIdentity(), NewVec3One())
}

func TransformFromPosition(position Vec3) *Transform {
	return newTransform(position, NewQuatIdentity(), NewVec3One())
}

func TransformFromRotation(rotation Quaternion) *Transform {
	return newTransform(NewVec3Zero(), rotation, NewVec3One())
}

func TransformFromPositionRotation(position Vec3, rotation Quaternion) *Transform {
	return newTransform(position, rotation, NewVec3One())
}

func TransformFromPositionRotationScale(position Vec3, rotation Quaternion, scale Vec3) *Transform {
	return newTransform(position, rotation, scale)
}

// TransformFromMatrix decomposes m into a new transform.
func TransformFromMatrix(m *Mat4) *Transform {
	p, r, s := m.Decompose()
	return newTransform(p, r, s)
}

// OnChange registers fn to be called after every mutation, replacing any
// previous subscriber. A nil fn unsubscribes.
func (t *Transform) OnChange(fn ChangeFunc) {
	t.onChange = fn
}

// changed marks the local matrix stale and notifies the subscriber.
func (t *Transform) changed() {
	t.isDirty = true
	if t.onChange != nil {
		t.onChange(t)
	}
}

func (t *Transform) Position() Vec3 {
	return t.position
}

func (t *Transform) Rotation() Quaternion {
	return t.rotation
}

func (t *Transform) Scale() Vec3 {
	return t.scale
}

func (t *Transform) Parent() *Transform {
	return t.parent
}

func (t *Transform) IsDirty() bool {
	return t.isDirty
}

func (t *Transform) SetPosition(position Vec3) {
	t.position = position
	t.changed()
}

func (t *Transform) Translate(translation Vec3) {
	t.position.Add(translation)
	t.changed()
}

func (t *Transform) SetRotation(rotation Quaternion) {
	t.rotation = rotation
	t.changed()
}

// Rotate applies rotation in the local frame and renormalizes.
func (t *Transform) Rotate(rotation Quaternion) {
	t.rotation.Multiply(rotation).Normalize()
	t.changed()
}

func (t *Transform) SetScale(scale Vec3) {
	t.scale = scale
	t.changed()
}

func (t *Transform) ScaleBy(scale Vec3) {
	t.scale.Mul(scale)
	t.changed()
}

func (t *Transform) SetPositionRotation(position Vec3, rotation Quaternion) {
	t.position = position
	t.rotation = rotation
	t.changed()
}

func (t *Transform) SetPositionRotationScale(position Vec3, rotation Quaternion, scale Vec3) {
	t.position = position
	t.rotation = rotation
	t.scale = scale
	t.changed()
}

func (t *Transform) TranslateRotate(translation Vec3, rotation Quaternion) {
	t.position.Add(translation)
	t.rotation.Multiply(rotation).Normalize()
	t.changed()
}

// SetFromMatrix replaces position, rotation and scale with the
// decomposition of m.
func (t *Transform) SetFromMatrix(m *Mat4) {
	m.DecomposeInto(&t.position, &t.rotation, &t.scale)
	t.changed()
}

// SetParent links t under parent; nil detaches it. The world matrix of t
// follows parent from then on.
func (t *Transform) SetParent(parent *Transform) {
	t.parent = parent
	t.changed()
}

// Local returns T·R·S, recomputing it only after a mutation.
func (t *Transform) Local() Mat4 {
	if t != nil {
		if t.isDirty {
			t.local.Compose(t.position, t.rotation, t.scale)
			t.isDirty = false
		}
		return t.local
	}
	return NewMat4Identity()
}

// World returns parent.World()·Local().
func (t *Transform) World() Mat4 {
	if t != nil {
		l := t.Local()
		if t.parent != nil {
			p := t.parent.World()
			return *p.Multiply(&l)
		}
		return l
	}
	return NewMat4Identity()
}

package plotspec

// UpsertSingleton registers a singleton dependency: at most one descriptor per
// distinct name. When a descriptor with name already exists its payload is
// replaced in place, keeping the position established by the first insert.
// Otherwise placement decides whether the descriptor is prepended (load-order
// priority) or appended. Unnamed descriptors cannot be deduplicated and are
// always appended.
func (s *Spec) UpsertSingleton(name string, payload any, placement Placement) *Spec {
	if s == nil {
		return nil
	}
	if name == "" {
		s.Dependencies = append(s.Dependencies, Dependency{Payload: payload})
		return s
	}

	for i := range s.Dependencies {
		if s.Dependencies[i].Name == name {
			s.Dependencies[i].Payload = payload
			return s
		}
	}

	descriptor := Dependency{Name: name, Payload: payload}
	if placement == PlacementPrepend {
		s.Dependencies = append([]Dependency{descriptor}, s.Dependencies...)
		return s
	}
	s.Dependencies = append(s.Dependencies, descriptor)
	return s
}

// AppendIfAbsent registers an additive dependency, skipping the insert when a
// descriptor with name is already attached. Unnamed descriptors are always
// appended.
func (s *Spec) AppendIfAbsent(name string, payload any) *Spec {
	if s == nil {
		return nil
	}
	if name != "" {
		for i := range s.Dependencies {
			if s.Dependencies[i].Name == name {
				return s
			}
		}
	}
	s.Dependencies = append(s.Dependencies, Dependency{Name: name, Payload: payload})
	return s
}

// DependencyByName returns the first descriptor registered under name.
func (s *Spec) DependencyByName(name string) (Dependency, bool) {
	if s == nil || name == "" {
		return Dependency{}, false
	}
	for _, dep := range s.Dependencies {
		if dep.Name == name {
			return dep, true
		}
	}
	return Dependency{}, false
}
